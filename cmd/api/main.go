package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"newsboard/internal/common/pagination"
	"newsboard/internal/config"
	pgRepo "newsboard/internal/infra/adapter/persistence/postgres"
	"newsboard/internal/infra/db"

	artUC "newsboard/internal/usecase/article"
	userUC "newsboard/internal/usecase/user"

	hhttp "newsboard/internal/handler/http"
	harticle "newsboard/internal/handler/http/article"
	hauth "newsboard/internal/handler/http/auth"
	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/respond"

	_ "newsboard/docs" // swagger docs
)

// @title           Newsboard API
// @version         1.0
// @description     記事投稿と閲覧のための REST API
// @description     ユーザー登録・JWT 認証・記事の CRUD を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT トークンによる認証。ヘッダーに "Bearer {token}" 形式で指定してください。

const securityPolicyPath = "config/security.yaml"

func main() {
	logger := initLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", slog.Any("error", err))
		os.Exit(1)
	}
	respond.SetMode(cfg.Env)

	policy, err := config.LoadSecurityPolicy(securityPolicyPath)
	if err != nil {
		logger.Error("security policy invalid", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, cfg, policy, version)

	runServer(logger, handler, cfg, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger, cfg *config.Config) *sql.DB {
	database := db.Open(cfg.DatabaseURL)
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(
	logger *slog.Logger,
	database *sql.DB,
	cfg *config.Config,
	policy config.SecurityPolicy,
	version string,
) http.Handler {
	userSvc := &userUC.Service{Repo: pgRepo.NewUserRepo(database), Policy: policy}
	artSvc := &artUC.Service{Repo: pgRepo.NewArticleRepo(database)}

	issuer := hauth.NewTokenIssuer(cfg.JWTSecret, policy.TokenTTL)
	paginationCfg := pagination.LoadFromEnv()

	mux := setupRoutes(database, version, userSvc, artSvc, issuer, paginationCfg, logger)
	return applyMiddleware(logger, mux)
}

// setupRoutes registers all HTTP routes (public and protected).
func setupRoutes(
	database *sql.DB,
	version string,
	userSvc *userUC.Service,
	artSvc *artUC.Service,
	issuer *hauth.TokenIssuer,
	paginationCfg pagination.Config,
	logger *slog.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	hauth.Register(mux, userSvc, issuer)
	harticle.Register(mux, artSvc, issuer, paginationCfg, logger)

	// ヘルスチェックエンドポイント（認証不要）
	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.HandleFunc("GET /live", hhttp.LiveHandler)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI（認証不要）
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// 未定義ルートは JSON の 404 を返す
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, r, respond.NotFound(
			fmt.Sprintf("cannot find %s on this server", r.URL.Path)))
	})

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost to innermost): Request ID → Recovery → Logging → Metrics
// → Body Limit → Input Validation.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Metrics()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.Config, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
