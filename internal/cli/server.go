package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"security-funnel-service/internal/app"
	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/config"
	"security-funnel-service/internal/infra/memory"
	redisstore "security-funnel-service/internal/infra/redis"
	"security-funnel-service/internal/logger"
	transport "security-funnel-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the funnel backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	// Leads live in redis; without an address the in-memory store keeps
	// local development working (records do not survive restarts).
	var leadStore app.LeadStore = memory.NewLeadStore()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		leadStore = redisstore.NewLeadStore(client)
		log.Info("using redis lead store", zap.String("addr", cfg.Redis.Addr))
	} else {
		log.Warn("redis not configured, leads held in memory only")
	}

	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	catalogs := memory.NewCatalogRepository(catalog.NewStaticLoader(), catalogTTL)

	feed := app.NewLeadFeed()
	leads := app.NewLeadService(leadStore, feed, log)

	adminUser := cfg.Admin.Username
	if adminUser == "" {
		adminUser = "admin"
	}
	router := transport.NewRouter(&transport.Container{
		Leads:    leads,
		Feed:     feed,
		Catalogs: catalogs,
		Admin:    transport.StaticCredentials(adminUser, cfg.Admin.Password),
		CORS: transport.CORSConfig{
			Origins: cfg.CORS.Origins,
			Methods: cfg.CORS.Methods,
			Headers: cfg.CORS.Headers,
		},
		Log: log,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting funnel service", zap.String("port", finalPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
