package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/changhyeonkim/memome/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/router"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/memome/go-api-server/internal/shared/validator"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the CLI; running it without a subcommand serves HTTP
func newRootCommand() *cobra.Command {
	var env string

	rootCmd := &cobra.Command{
		Use:           "memome-api",
		Short:         "memome API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(env)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(env)
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "local", "Environment (local|dev|prod)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(env)
			},
		},
		newMigrateCommand(&env),
	)

	return rootCmd
}

func newMigrateCommand(env *string) *cobra.Command {
	var recreate bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMigrate(*env, recreate); err != nil {
				slog.Error("마이그레이션 실패", "error", err)
				return err
			}
			return nil
		},
	}
	migrateCmd.Flags().BoolVar(&recreate, "recreate", false, "Drop every table before migrating (blocked in prod)")

	return migrateCmd
}

func runServe(env string) error {
	slog.Info("서버 초기화 시작", "env", env)

	if err := run(env); err != nil {
		slog.Error("서버 초기화 실패", "error", err)
		return err
	}

	slog.Info("서버 종료 완료", "env", env)
	return nil
}

func runMigrate(env string, recreate bool) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	if recreate {
		return database.Recreate(db.DB, cfg)
	}
	if err := database.AutoMigrate(db.DB); err != nil {
		return err
	}

	slog.Info("✅ 마이그레이션 완료!", "driver", cfg.Database.Driver)
	return nil
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공")

	// Connect to database
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("데이터베이스 종료 실패", "error", err)
		}
	}()

	// Setup server
	srv, err := setupServer(cfg, db)
	if err != nil {
		return err
	}

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, db *database.DB) (*bootstrap.Server, error) {
	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	// Setup application-specific routes
	router.Setup(ginEngine, cfg, db, boot.Registry())

	slog.Info("서버 설정 완료",
		"env", cfg.App.Env,
		"driver", cfg.Database.Driver,
	)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("서버 오류: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("종료 신호 수신됨", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("서버 종료 중...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("서버 강제 종료: %w", err)
		}
		return nil
	}
}
