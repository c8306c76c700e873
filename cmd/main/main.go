package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"monad-feedback/internal/anonymizer"
	"monad-feedback/internal/app"
	elasticService "monad-feedback/internal/elastic_search"
	handlers "monad-feedback/internal/handlers/feedback"
	"monad-feedback/internal/kafka"
	"monad-feedback/internal/middleware"
	"monad-feedback/internal/migration"
	"monad-feedback/internal/paymentgate"
	"monad-feedback/internal/storage"
	"monad-feedback/internal/views"

	_ "github.com/lib/pq"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init storage: postgres по умолчанию, redis и file - запасные бэкенды
	store, db := buildStorage(c, logger)
	if db != nil {
		defer db.Close()
	}

	// init kafka producer (события без кошельков, только категория и метка времени)
	producer := kafka.NewProducer(kafka.Config{
		Brokers: c.CfgKafka.Brokers,
		Topic:   c.CfgKafka.Topic,
	}, logger)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init payment gate
	gate := buildGate(c, logger)

	// init full-text search
	searcher := buildSearcher(c, logger)

	// init services
	anonymizerService := anonymizer.NewAnonymizer(store, producer, logger, anonymizer.Config{
		DelayMin:      c.CfgAnonymizer.DelayMin,
		DelayMax:      c.CfgAnonymizer.DelayMax,
		WindowStart:   c.CfgAnonymizer.WindowStart,
		PaymentAmount: paymentgate.FeedbackCostMON,
	})
	viewService := views.NewService(store, logger)
	migrationService := migration.NewService(store, producer, logger)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// init handlers
	feedbackHandlers := handlers.NewFeedbackHandler(
		logger, anonymizerService, viewService, migrationService, store, searcher,
	)

	// Ручки требующие оплаченного взноса
	paidRouter := r.PathPrefix("/api").Subrouter()
	paidRouter.Use(middleware.PaymentRequired(gate, logger))

	paidRouter.HandleFunc("/feedback-collection", feedbackHandlers.Submit).Methods("POST")

	// Ручки НЕ требующие оплаты
	openRouter := r.PathPrefix("/api").Subrouter()

	openRouter.HandleFunc("/feedback-collection", feedbackHandlers.GetCollection).Methods("GET")
	openRouter.HandleFunc("/feedback-collection/history/{wallet}", feedbackHandlers.GetUserHistory).Methods("GET")

	openRouter.HandleFunc("/admin/feedback", feedbackHandlers.AdminFeed).Methods("GET")
	openRouter.HandleFunc("/feedback/search", feedbackHandlers.Search).Methods("GET")

	openRouter.HandleFunc("/migrate", feedbackHandlers.Migrate).Methods("POST")
	openRouter.HandleFunc("/schema-upgrade", feedbackHandlers.UpgradeSchema).Methods("POST")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	// WriteTimeout держит запрос на всю случайную задержку анонимизации,
	// поэтому он обязан превышать delay_max
	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: c.CfgAnonymizer.DelayMax + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}

// buildStorage - выбирает бэкенд хранения. Postgres без DSN деградирует
// до файлового хранилища, чтобы сервис оставался рабочим без базы.
func buildStorage(c *app.Config, logger *zap.SugaredLogger) (storage.Storage, *sql.DB) {
	backend := c.StorageBackend
	if backend == "" || backend == "postgres" {
		dsn := c.DSN()
		if dsn == "" {
			logger.Warnw("Database is not configured, falling back to file storage")

			backend = "file"
		} else {
			db, err := sql.Open("postgres", dsn)
			if err != nil {
				logger.Fatalf("error to database start: %v", err)
			}

			db.SetMaxOpenConns(c.MaxOpenConns)
			if err := db.Ping(); err != nil {
				logger.Infof("Failed to get response to ping: %v", err)
			}

			postgresStorage := storage.NewPostgresStorage(db, logger)
			if err := postgresStorage.InitSchema(context.Background()); err != nil {
				logger.Errorf("Failed to init schema: %v", err)
			}

			return postgresStorage, db
		}
	}

	if backend == "redis" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: "",
			DB:       0, // стандартная БД
		})

		return storage.NewRedisStorage(redisClient, logger), nil
	}

	fileStorage, err := storage.NewFileStorage(c.FileStorageDir, logger)
	if err != nil {
		logger.Fatalf("error to init file storage: %v", err)
	}

	return fileStorage, nil
}

// buildSearcher - полнотекстовый поиск поверх индекса, который наполняет
// insights. Без адреса ES возвращает nil, и ручка поиска отвечает 503.
func buildSearcher(c *app.Config, logger *zap.SugaredLogger) handlers.Searcher {
	if c.CfgES.URL == "" {
		logger.Warnw("Elasticsearch is not configured, search is disabled")

		return nil
	}

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{c.CfgES.URL},
	})
	if err != nil {
		logger.Errorf("Error creating elasticsearch client, search is disabled: %v", err)

		return nil
	}

	return elasticService.NewService(esClient, logger, c.CfgES.Index)
}

// buildGate - шлюз проверки оплаты. Без адреса контракта в конфиге
// поднимается симуляция, пропускающая всех.
func buildGate(c *app.Config, logger *zap.SugaredLogger) paymentgate.Gate {
	if c.CfgChain.ContractAddress == "" {
		return paymentgate.NewSimulatedGate(logger)
	}

	contractGate, err := paymentgate.NewContractGate(c.CfgChain.RPCURL, c.CfgChain.ContractAddress, logger)
	if err != nil {
		logger.Errorf("Failed to connect to chain RPC, payments are simulated: %v", err)

		return paymentgate.NewSimulatedGate(logger)
	}

	if c.RedisAddr == "" {
		return contractGate
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: "",
		DB:       0,
	})

	return paymentgate.NewCachedGate(contractGate, redisClient, logger)
}
