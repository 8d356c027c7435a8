// Package docs provides Swagger documentation for the Go Rating API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Go Rating API",
        "description": "Life Insurance Premium Rating and Quote Comparison API.\n\nThis API prices life insurance products:\n1. **Products** - Manage the product catalog and its fee schedules\n2. **Plans** - Manage rate plans (base premiums and multiplier tables)\n3. **Quotes** - Price a single plan or compare all payment frequencies",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/coverledger/go-rating"
        },
        "license": {
            "name": "MIT"
        },
        "version": "1.0.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/products": {
            "get": {
                "tags": ["Products"],
                "summary": "List all products",
                "operationId": "listProducts",
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/Product"}
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            },
            "post": {
                "tags": ["Products"],
                "summary": "Create a product",
                "operationId": "createProduct",
                "parameters": [
                    {
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Product"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/Product"}
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "409": {
                        "description": "Product code already exists",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/products/{product_code}": {
            "get": {
                "tags": ["Products"],
                "summary": "Get a product by code",
                "operationId": "getProduct",
                "parameters": [
                    {
                        "name": "product_code",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product code (e.g., term-life)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/Product"}
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            },
            "put": {
                "tags": ["Products"],
                "summary": "Update a product",
                "operationId": "updateProduct",
                "parameters": [
                    {
                        "name": "product_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/Product"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {"$ref": "#/definitions/Product"}
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "422": {
                        "description": "Invalid configuration",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            },
            "delete": {
                "tags": ["Products"],
                "summary": "Delete a product",
                "description": "Fails while the product still owns rate plans",
                "operationId": "deleteProduct",
                "parameters": [
                    {
                        "name": "product_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {
                        "description": "Product not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "409": {
                        "description": "Product still has rate plans",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/products/{product_code}/plans": {
            "get": {
                "tags": ["Plans"],
                "summary": "List rate plans for a product",
                "operationId": "listPlans",
                "parameters": [
                    {
                        "name": "product_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/RatePlan"}
                        }
                    },
                    "404": {
                        "description": "Product not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/plans": {
            "post": {
                "tags": ["Plans"],
                "summary": "Create a rate plan",
                "description": "Validates age band coverage and multiplier positivity before persisting",
                "operationId": "createPlan",
                "parameters": [
                    {
                        "name": "plan",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    },
                    "409": {
                        "description": "Plan code already exists",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "422": {
                        "description": "Invalid rate configuration",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/plans/{plan_code}": {
            "get": {
                "tags": ["Plans"],
                "summary": "Get a rate plan by code",
                "operationId": "getPlan",
                "parameters": [
                    {
                        "name": "plan_code",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Plan code (e.g., term-life-10)"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            },
            "put": {
                "tags": ["Plans"],
                "summary": "Update a rate plan",
                "operationId": "updatePlan",
                "parameters": [
                    {
                        "name": "plan_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "plan",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated",
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "422": {
                        "description": "Invalid rate configuration",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            },
            "delete": {
                "tags": ["Plans"],
                "summary": "Delete a rate plan",
                "description": "Fails while policies or applications still reference the plan",
                "operationId": "deletePlan",
                "parameters": [
                    {
                        "name": "plan_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {
                        "description": "Plan not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "409": {
                        "description": "Plan still referenced",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/plans/{plan_code}:disable": {
            "post": {
                "tags": ["Plans"],
                "summary": "Disable a rate plan",
                "description": "Disabled plans keep their configuration but stop quoting",
                "operationId": "disablePlan",
                "parameters": [
                    {
                        "name": "plan_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Disabled",
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/plans/{plan_code}:enable": {
            "post": {
                "tags": ["Plans"],
                "summary": "Enable a rate plan",
                "operationId": "enablePlan",
                "parameters": [
                    {
                        "name": "plan_code",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Enabled",
                        "schema": {"$ref": "#/definitions/RatePlan"}
                    },
                    "404": {
                        "description": "Plan not found",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/quotes/premium": {
            "post": {
                "tags": ["Quotes"],
                "summary": "Price one plan at one payment frequency",
                "description": "Returns the full premium breakdown: base premium, applicant multipliers, payment schedule, and fees",
                "operationId": "calculatePremium",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/QuoteRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Premium breakdown",
                        "schema": {"$ref": "#/definitions/PremiumBreakdown"}
                    },
                    "400": {
                        "description": "Invalid payload",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "404": {
                        "description": "Plan not found or inactive",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        },
        "/products/{product_id}/quotes": {
            "get": {
                "tags": ["Quotes"],
                "summary": "Compare payment frequency options for a product",
                "description": "Prices the best matching plan at every payment frequency and recommends the cheapest total",
                "operationId": "getPremiumQuotes",
                "parameters": [
                    {
                        "name": "product_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "term_years",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "coverage_amount",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "frequency",
                        "in": "query",
                        "type": "string",
                        "description": "Restrict the comparison to a single payment frequency"
                    },
                    {
                        "name": "age",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "gender",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "health_status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "occupation_risk",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Quote comparison",
                        "schema": {"$ref": "#/definitions/QuoteComparison"}
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    },
                    "404": {
                        "description": "Product not found or no matching plan",
                        "schema": {"$ref": "#/definitions/ProblemDetails"}
                    }
                }
            }
        }
    },
    "definitions": {
        "Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string", "example": "term-life"},
                "name": {"type": "string", "example": "Term Life"},
                "type": {"type": "string", "example": "life"},
                "description": {"type": "string"},
                "active": {"type": "boolean"},
                "fees": {"$ref": "#/definitions/FeeSchedule"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "FeeSchedule": {
            "type": "object",
            "properties": {
                "processing": {"type": "number", "example": 50},
                "policy_issuance": {"type": "number", "example": 25},
                "medical_checkup": {"type": "number", "example": 120},
                "admin_per_year": {"type": "number", "example": 15}
            }
        },
        "RatePlan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string", "example": "term-life-10"},
                "product_id": {"type": "string"},
                "term_years": {"type": "integer", "example": 10},
                "coverage_amount": {"type": "integer", "example": 250000},
                "active": {"type": "boolean"},
                "base_premiums": {"$ref": "#/definitions/BasePremiums"},
                "rates": {"$ref": "#/definitions/RateTable"}
            }
        },
        "BasePremiums": {
            "type": "object",
            "properties": {
                "lump_sum": {"type": "number"},
                "annual": {"type": "number", "example": 1200},
                "semi_annual": {"type": "number"},
                "quarterly": {"type": "number"},
                "monthly": {"type": "number", "example": 110}
            }
        },
        "RateTable": {
            "type": "object",
            "properties": {
                "age_bands": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AgeBand"}
                },
                "gender_male": {"type": "number"},
                "gender_female": {"type": "number"},
                "health_excellent": {"type": "number"},
                "health_good": {"type": "number"},
                "health_fair": {"type": "number"},
                "health_poor": {"type": "number"},
                "occupation_low": {"type": "number"},
                "occupation_medium": {"type": "number"},
                "occupation_high": {"type": "number"}
            }
        },
        "AgeBand": {
            "type": "object",
            "properties": {
                "min_age": {"type": "integer", "example": 18},
                "max_age": {"type": "integer", "example": 25},
                "factor": {"type": "number", "example": 0.9}
            }
        },
        "QuoteRequest": {
            "type": "object",
            "properties": {
                "plan_code": {"type": "string", "example": "term-life-10"},
                "payment_frequency": {"type": "string", "example": "monthly"},
                "age": {"type": "integer", "example": 30},
                "gender": {"type": "string", "example": "female"},
                "health_status": {"type": "string", "example": "good"},
                "occupation_risk": {"type": "string", "example": "low"}
            }
        },
        "FeeBreakdown": {
            "type": "object",
            "properties": {
                "one_time": {"type": "number", "example": 75},
                "medical": {"type": "number", "example": 120},
                "total_admin": {"type": "number", "example": 150},
                "grand_total": {"type": "number"}
            }
        },
        "PremiumBreakdown": {
            "type": "object",
            "properties": {
                "plan_code": {"type": "string"},
                "frequency": {"type": "string"},
                "base_premium": {"type": "number"},
                "multipliers": {"type": "object"},
                "premium": {"type": "number"},
                "premium_for_term": {"type": "number"},
                "payments": {"type": "integer"},
                "amount_per_payment": {"type": "number"},
                "fees": {"$ref": "#/definitions/FeeBreakdown"},
                "grand_total": {"type": "number"},
                "savings_vs_monthly": {"type": "number"},
                "savings_percentage": {"type": "number"},
                "recommended": {"type": "boolean"},
                "recommend_reason": {"type": "string"}
            }
        },
        "QuoteComparison": {
            "type": "object",
            "properties": {
                "product_id": {"type": "string"},
                "product_code": {"type": "string"},
                "product_name": {"type": "string"},
                "plan_code": {"type": "string"},
                "coverage_amount": {"type": "integer"},
                "term_years": {"type": "integer"},
                "payment_options": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/PremiumBreakdown"}
                }
            }
        },
        "ProblemDetails": {
            "type": "object",
            "description": "RFC 7807 Problem Details",
            "properties": {
                "type": {"type": "string", "example": "about:blank"},
                "title": {"type": "string", "example": "Not Found"},
                "status": {"type": "integer", "example": 404},
                "detail": {"type": "string", "example": "Resource not found"}
            }
        }
    },
    "tags": [
        {"name": "Products", "description": "Product catalog and fee schedules"},
        {"name": "Plans", "description": "Rate plan configuration"},
        {"name": "Quotes", "description": "Premium calculation and comparison"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Go Rating API",
	Description:      "Life Insurance Premium Rating and Quote Comparison API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
