package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	elasticService "monad-feedback/internal/elastic_search"
	"monad-feedback/internal/etl"
	"monad-feedback/internal/insights"
	"monad-feedback/internal/kafka"

	_ "github.com/lib/pq"
)

const cfgPath = "config/insights-config.yaml"

func main() {
	// Init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger := zapLogger.Sugar()
	defer func() { _ = zapLogger.Sync() }()

	// Parse config
	c, err := insights.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("Error parsing config: %v", err)
	}

	// Init DB
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatalf("Error connecting to DB: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := db.Ping(); err != nil {
		logger.Errorf("DB ping failed: %v", err)
	}

	// Init Kafka Consumer
	consumer := kafka.NewConsumer(kafka.Config{
		Brokers: c.CfgKafka.Brokers,
		Topic:   c.CfgKafka.Topic,
		GroupID: c.CfgKafka.GroupID,
	}, logger)
	defer consumer.Close()

	// Init insights repository и service через интерфейсы
	repo := insights.NewRepository(db, logger)
	if err := repo.InitSchema(context.Background()); err != nil {
		logger.Errorf("Failed to init schema: %v", err)
	}

	service := insights.NewService(repo, logger)

	// Start event processor
	go func() {
		consumer.Consume(context.Background(), func(ctx context.Context, event kafka.Event) error {
			return service.ProcessEvent(ctx, event)
		})
	}()

	// Init Elasticsearch and ETL pipeline
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{c.CfgES.URL},
	})
	if err != nil {
		logger.Fatalf("Error creating elasticsearch client: %v", err)
	}

	es := elasticService.NewService(esClient, logger, c.CfgES.Index)
	if err := es.EnsureIndex(context.Background()); err != nil {
		logger.Errorf("Failed to ensure index: %v", err)
	}

	pipeline := etl.NewPipeline(
		etl.NewPostgresExtractor(db, logger),
		etl.NewTransformer(logger),
		etl.NewElasticLoader(es, logger, db),
		logger,
		c.ETLInterval,
	)
	go pipeline.Run(context.Background())

	// Init HTTP server
	handler := insights.NewHandler(service, logger)
	r := mux.NewRouter()
	r.HandleFunc("/insights/categories/top", handler.GetTopCategories).Methods("GET")

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Infof("Starting insights service on %s", c.ServerPort)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
