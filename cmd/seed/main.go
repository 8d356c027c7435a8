package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coverledger/go-rating/internal/core"
	"github.com/coverledger/go-rating/internal/platform/config"
	"github.com/coverledger/go-rating/internal/platform/logging"
	"github.com/coverledger/go-rating/internal/store/dynamo"
	"github.com/coverledger/go-rating/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		productRepo core.ProductRepo
		planRepo    core.RatePlanRepo
		refs        core.ReferenceCounter
	)

	switch cfg.DBType {
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, dynamo.Config{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			log.Error("failed to connect to DynamoDB", "err", err)
			os.Exit(1)
		}
		if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
			log.Error("failed to ensure DynamoDB tables", "err", err)
			os.Exit(1)
		}
		productRepo = dynamo.NewProductRepo(client.DB)
		planRepo = dynamo.NewRatePlanRepo(client.DB)
		refs = dynamo.NewRefCounter(client.DB)

	default:
		client, err := mongo.NewClient(cfg)
		if err != nil {
			log.Error("failed to connect to MongoDB", "err", err)
			os.Exit(1)
		}
		defer client.Close(ctx)

		if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
			log.Error("failed to ensure MongoDB indexes", "err", err)
			os.Exit(1)
		}
		productRepo = mongo.NewProductRepo(client.DB, 5*time.Second)
		planRepo = mongo.NewRatePlanRepo(client.DB, 5*time.Second)
		refs = mongo.NewRefCounter(client.DB, 5*time.Second)
	}

	productSvc := core.NewProductService(productRepo, planRepo)
	planSvc := core.NewRatePlanService(productRepo, planRepo, refs)

	log.Info("seeding products and rate plans", "db", cfg.DBType)
	seed(ctx, log, productSvc, planSvc)
	log.Info("done seeding")
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seed(ctx context.Context, log *slog.Logger, products core.ProductService, plans core.RatePlanService) {
	standardRates := core.RateTable{
		AgeBands: []core.AgeBand{
			{MinAge: 18, MaxAge: 25, Factor: dec("0.90")},
			{MinAge: 26, MaxAge: 35, Factor: dec("1.00")},
			{MinAge: 36, MaxAge: 45, Factor: dec("1.30")},
			{MinAge: 46, MaxAge: 55, Factor: dec("1.80")},
			{MinAge: 56, MaxAge: 65, Factor: dec("2.50")},
		},
		GenderMale:   dec("1.10"),
		GenderFemale: dec("1.00"),

		HealthExcellent: dec("0.85"),
		HealthGood:      dec("1.00"),
		HealthFair:      dec("1.30"),
		HealthPoor:      dec("1.80"),

		OccupationLow:    dec("1.00"),
		OccupationMedium: dec("1.15"),
		OccupationHigh:   dec("1.40"),
	}

	termLife := core.Product{
		Code:   "term-life",
		Name:   "Term Life",
		Type:   core.ProductTypeLife,
		Active: true,
		Fees: core.FeeSchedule{
			Processing:     dec("50"),
			PolicyIssuance: dec("25"),
			MedicalCheckup: dec("120"),
			AdminPerYear:   dec("15"),
		},
	}
	wholeLife := core.Product{
		Code:   "whole-life",
		Name:   "Whole Life",
		Type:   core.ProductTypeLife,
		Active: true,
		Fees: core.FeeSchedule{
			Processing:     dec("75"),
			PolicyIssuance: dec("40"),
			MedicalCheckup: dec("150"),
			AdminPerYear:   dec("20"),
		},
	}

	productIDs := map[string]string{}
	for _, p := range []core.Product{termLife, wholeLife} {
		created, err := products.Create(ctx, p)
		if err != nil {
			if errors.Is(err, core.ErrConflict) {
				existing, getErr := products.Get(ctx, p.Code)
				if getErr != nil {
					log.Error("failed to load existing product", "code", p.Code, "err", getErr)
					continue
				}
				log.Info("product already seeded", "code", p.Code)
				productIDs[p.Code] = existing.ID
				continue
			}
			log.Error("failed to seed product", "code", p.Code, "err", err)
			continue
		}
		log.Info("seeded product", "code", created.Code, "id", created.ID)
		productIDs[p.Code] = created.ID
	}

	seedPlans := []core.RatePlan{
		{
			Code:           "term-life-10",
			ProductID:      productIDs["term-life"],
			Name:           "Term Life 10-Year",
			CoverageAmount: 250000,
			TermYears:      10,
			MinAge:         18,
			MaxAge:         65,
			Active:         true,
			Base: core.BasePremiums{
				LumpSum:    dec("10800"),
				Annual:     dec("1200"),
				SemiAnnual: dec("610"),
				Quarterly:  dec("310"),
				Monthly:    dec("110"),
			},
			Rates: standardRates,
		},
		{
			Code:           "term-life-20",
			ProductID:      productIDs["term-life"],
			Name:           "Term Life 20-Year",
			CoverageAmount: 500000,
			TermYears:      20,
			MinAge:         18,
			MaxAge:         65,
			Active:         true,
			Base: core.BasePremiums{
				Annual:  dec("1850"),
				Monthly: dec("165"),
			},
			Rates: standardRates,
		},
		{
			Code:                "whole-life-std",
			ProductID:           productIDs["whole-life"],
			Name:                "Whole Life Standard",
			CoverageAmount:      100000,
			TermYears:           30,
			MinAge:              18,
			MaxAge:              65,
			RequiresMedicalExam: true,
			Active:              true,
			Base: core.BasePremiums{
				Annual:  dec("2400"),
				Monthly: dec("215"),
			},
			Rates: standardRates,
		},
	}

	for _, p := range seedPlans {
		if p.ProductID == "" {
			log.Warn("skipping plan, owning product missing", "code", p.Code)
			continue
		}
		created, err := plans.Create(ctx, p)
		if err != nil {
			if errors.Is(err, core.ErrConflict) {
				log.Info("plan already seeded", "code", p.Code)
				continue
			}
			log.Error("failed to seed plan", "code", p.Code, "err", err)
			continue
		}
		log.Info("seeded plan", "code", created.Code, "id", created.ID)
	}
}
