package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	_ "github.com/coverledger/go-rating/docs"
	"github.com/coverledger/go-rating/internal/core"
	transporthttp "github.com/coverledger/go-rating/internal/http"
	"github.com/coverledger/go-rating/internal/http/handlers"
	"github.com/coverledger/go-rating/internal/http/health"
	"github.com/coverledger/go-rating/internal/jobs"
	"github.com/coverledger/go-rating/internal/middleware"
	"github.com/coverledger/go-rating/internal/platform/config"
	"github.com/coverledger/go-rating/internal/platform/logging"
	"github.com/coverledger/go-rating/internal/store/dynamo"
	"github.com/coverledger/go-rating/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	log.Info("starting go-rating API", "env", cfg.Env, "db", cfg.DBType)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		products core.ProductRepo
		plans    core.RatePlanRepo
		refs     core.ReferenceCounter
		pinger   health.Pinger
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
		products = dynamo.NewProductRepo(client.DB)
		plans = dynamo.NewRatePlanRepo(client.DB)
		refs = dynamo.NewRefCounter(client.DB)
		pinger = client

	case "mongo":
		client, err := mongo.NewClient(cfg)
		if err != nil {
			log.Error("failed to connect to MongoDB", "err", err)
			os.Exit(1)
		}
		defer client.Close(context.Background())

		if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
			log.Error("failed to ensure MongoDB indexes", "err", err)
			os.Exit(1)
		}
		opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
		products = mongo.NewProductRepo(client.DB, opTimeout)
		plans = mongo.NewRatePlanRepo(client.DB, opTimeout)
		refs = mongo.NewRefCounter(client.DB, opTimeout)
		pinger = client

	default:
		log.Error("unknown DB_TYPE", "db_type", cfg.DBType)
		os.Exit(1)
	}

	quoteSvc := core.NewQuoteService(products, plans)
	productSvc := core.NewProductService(products, plans)
	planSvc := core.NewRatePlanService(products, plans, refs)

	apiRouter := transporthttp.NewRouter(transporthttp.Deps{
		Mounts: []handlers.Mountable{
			handlers.NewQuoteHandler(quoteSvc, log),
			handlers.NewProductHandler(productSvc, log),
			handlers.NewRatePlanHandler(planSvc, log),
		},
	})

	rl := middleware.NewRateLimiter(cfg.RateLimitRPM, time.Minute)
	rl.StartWithContext(ctx)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(time.Duration(cfg.HTTPRequestTimeoutSec) * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
	r.Use(rl.Limit)
	r.Use(middleware.SimpleAPIKey(cfg.APIKey))

	r.Get("/swagger/doc.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "swagger doc unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(doc))
	})

	r.Mount("/api/v1", apiRouter)
	r.Mount("/", health.New(log, pinger, 2*time.Second))

	// Background re-validation of stored rate configuration
	auditWorker := jobs.NewConfigAuditWorker(
		products, plans,
		time.Duration(cfg.AuditIntervalSec)*time.Second,
		log,
	)
	go auditWorker.Start(ctx)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTPReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPWriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.HTTPIdleTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}

	log.Info("server stopped")
}
