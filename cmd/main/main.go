package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"melodia/internal/app"
	"melodia/internal/composition"
	elastic "melodia/internal/elastic_search"
	"melodia/internal/etl"
	"melodia/internal/feedback"
	handlersComposition "melodia/internal/handlers/composition"
	handlersFeedback "melodia/internal/handlers/feedback"
	handlersResource "melodia/internal/handlers/resource"
	handlersSearch "melodia/internal/handlers/search"
	handlersShare "melodia/internal/handlers/share"
	handlersUser "melodia/internal/handlers/user"
	"melodia/internal/kafka"
	"melodia/internal/middleware"
	"melodia/internal/notification"
	"melodia/internal/resource"
	"melodia/internal/session"
	"melodia/internal/share"
	"melodia/internal/user"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/lib/pq"
)

const (
	cfgPath         = "config/config.yaml"
	shutdownTimeout = 10 * time.Second
)

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// init db
	db, err := sql.Open("postgres", c.CfgDB.DSN())
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(c.MaxOpenConns)
	if err := app.Retry(ctx, "postgres", func() error { return db.PingContext(ctx) }, app.DefaultRetryOptions(), logger); err != nil {
		logger.Fatalf("database is unreachable: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.CfgRedis.Addr,
		Password: c.CfgRedis.Password,
		DB:       c.CfgRedis.DB,
	})
	defer redisClient.Close()

	// init kafka
	producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	defer producer.Close()

	// init elasticsearch
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: c.CfgES.Addresses})
	if err != nil {
		logger.Fatalf("error to create elasticsearch client: %v", err)
	}
	esService := elastic.NewService(esClient, logger, c.CfgES.Index)
	if err := app.Retry(ctx, "elasticsearch", func() error { return esService.EnsureIndex(ctx) }, app.DefaultRetryOptions(), logger); err != nil {
		logger.Fatalf("failed to prepare search index: %v", err)
	}

	// init repository
	userRepository := user.NewUserDBRepository(db, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration)
	resourceRepository := resource.NewResourceDBRepository(db, logger)
	compositionRepository := composition.NewCompositionDBRepository(db, logger)
	feedbackRepository := feedback.NewFeedbackDBRepository(db, logger)
	shareRepository := share.NewShareDBRepository(db, logger)
	notificationRepository := notification.NewRepository(db, logger)

	// init services
	shareService := share.NewService(shareRepository, resourceRepository, producer, logger)
	likeGuard := feedback.NewLikeGuard(redisClient, logger, c.LikeGuardTTL)
	feedbackService := feedback.NewService(feedbackRepository, shareService, resourceRepository, likeGuard, producer, logger)
	notificationService := notification.NewService(notificationRepository, logger)

	// init etl
	pipeline := etl.NewPipeline(
		etl.NewPostgresExtractor(db, logger),
		etl.NewTransformer(logger),
		etl.NewElasticLoader(esService, logger, db),
		logger,
		c.ETLInterval,
	)

	// init handlers
	userHandlers := handlersUser.NewUserHandler(logger, userRepository, sessionRepository)
	resourceHandlers := handlersResource.NewResourceHandler(logger, resourceRepository, shareService)
	compositionHandlers := handlersComposition.NewCompositionHandler(logger, compositionRepository)
	feedbackHandlers := handlersFeedback.NewFeedbackHandler(logger, feedbackService, resourceRepository)
	shareHandlers := handlersShare.NewShareHandler(logger, shareService)
	searchHandlers := handlersSearch.NewSearchHandler(logger, esService, feedbackRepository)
	notificationHandlers := notification.NewHandler(notificationService, logger)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Ручки НЕ требующие авторизации
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/register", userHandlers.Register).Methods("POST")
	noAuthRouter.HandleFunc("/login", userHandlers.Login).Methods("POST")

	// Ручки требующие авторизации
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, logger))

	authRouter.HandleFunc("/logout", userHandlers.Logout).Methods("POST")
	authRouter.HandleFunc("/user", userHandlers.Me).Methods("GET")
	authRouter.HandleFunc("/user", userHandlers.ChangeProfile).Methods("PUT")
	authRouter.HandleFunc("/users/{id}", userHandlers.Info).Methods("GET")

	authRouter.HandleFunc("/dashboard", resourceHandlers.Dashboard).Methods("GET")

	authRouter.HandleFunc("/notes", resourceHandlers.CreateNote).Methods("POST")
	authRouter.HandleFunc("/notes", resourceHandlers.ListNotes).Methods("GET")
	authRouter.HandleFunc("/notes/{id}", resourceHandlers.GetNote).Methods("GET")
	authRouter.HandleFunc("/notes/{id}", resourceHandlers.UpdateNote).Methods("PUT")
	authRouter.HandleFunc("/notes/{id}", resourceHandlers.DeleteNote).Methods("DELETE")

	authRouter.HandleFunc("/recordings", resourceHandlers.CreateRecording).Methods("POST")
	authRouter.HandleFunc("/recordings", resourceHandlers.ListRecordings).Methods("GET")
	authRouter.HandleFunc("/recordings/{id}", resourceHandlers.GetRecording).Methods("GET")
	authRouter.HandleFunc("/recordings/{id}", resourceHandlers.DeleteRecording).Methods("DELETE")
	authRouter.HandleFunc("/recordings/{id}/markers", feedbackHandlers.Markers).Methods("GET")

	authRouter.HandleFunc("/compositions", compositionHandlers.Create).Methods("POST")
	authRouter.HandleFunc("/compositions", compositionHandlers.List).Methods("GET")
	authRouter.HandleFunc("/compositions/{id}", compositionHandlers.Get).Methods("GET")
	authRouter.HandleFunc("/compositions/{id}", compositionHandlers.Update).Methods("PUT")
	authRouter.HandleFunc("/compositions/{id}", compositionHandlers.Delete).Methods("DELETE")
	authRouter.HandleFunc("/compositions/{id}/{kind:notes|recordings}/{resource_id}", compositionHandlers.AddMember).Methods("PUT")
	authRouter.HandleFunc("/compositions/{id}/{kind:notes|recordings}/{resource_id}", compositionHandlers.RemoveMember).Methods("DELETE")

	authRouter.HandleFunc("/feedback/search", searchHandlers.Search).Methods("GET")
	authRouter.HandleFunc("/{kind:notes|recordings}/{id}/feedback", feedbackHandlers.View).Methods("GET")
	authRouter.HandleFunc("/{kind:notes|recordings}/{id}/feedback", feedbackHandlers.Add).Methods("POST")
	authRouter.HandleFunc("/feedback/{id}", feedbackHandlers.Edit).Methods("PUT")
	authRouter.HandleFunc("/feedback/{id}", feedbackHandlers.Delete).Methods("DELETE")
	authRouter.HandleFunc("/feedback/{id}/like", feedbackHandlers.ToggleLike).Methods("POST")
	authRouter.HandleFunc("/feedback/{id}/resolve", feedbackHandlers.ToggleResolved).Methods("POST")

	authRouter.HandleFunc("/shares", shareHandlers.Create).Methods("POST")
	authRouter.HandleFunc("/shares/received", shareHandlers.Received).Methods("GET")
	authRouter.HandleFunc("/shares/{id}/accept", shareHandlers.Accept).Methods("POST")
	authRouter.HandleFunc("/shares/{id}", shareHandlers.Delete).Methods("DELETE")
	authRouter.HandleFunc("/{kind:notes|recordings}/{id}/shares", shareHandlers.ListByResource).Methods("GET")

	authRouter.HandleFunc("/notifications", notificationHandlers.List).Methods("GET")
	authRouter.HandleFunc("/notifications/{id}/read", notificationHandlers.MarkRead).Methods("POST")

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infow("starting server",
			"type", "START",
			"addr", c.ServerPort,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return pipeline.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Infow("shutting down server", "type", "STOP")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("server stopped with error: %v", err)
	}
}
