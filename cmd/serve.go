package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "flowdesk.com/flowdesk/internal/configs"
	httpapi "flowdesk.com/flowdesk/internal/http"
	middleware "flowdesk.com/flowdesk/internal/http/middlewares"
	"flowdesk.com/flowdesk/internal/logging"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the flowdesk task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		logging.Init(cfg.LogFile)

		database := config.New(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		userRepo := repository.NewUserRepository(database)
		workspaceRepo := repository.NewWorkspaceRepository(database)
		boardRepo := repository.NewBoardRepository(database)
		listRepo := repository.NewListRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		tagRepo := repository.NewTagRepository(database)
		commentRepo := repository.NewCommentRepository(database)

		authService := services.NewAuthService(
			userRepo,
			cfg.JWTSecret,
			time.Duration(cfg.TokenTTLMinutes)*time.Minute,
		)
		inviteService := services.NewInviteService(
			workspaceRepo,
			cfg.JWTSecret,
			cfg.BaseURL,
			time.Duration(cfg.InviteTTLHours)*time.Hour,
		)
		workspaceService := services.NewWorkspaceService(workspaceRepo)
		boardService := services.NewBoardService(boardRepo)
		listService := services.NewListService(listRepo)
		taskService := services.NewTaskService(taskRepo, tagRepo, workspaceRepo, userRepo)
		graphService := services.NewTaskGraphService(taskRepo)
		tagService := services.NewTagService(tagRepo)
		commentService := services.NewCommentService(commentRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		e.HTTPErrorHandler = httpapi.ErrorHandler
		e.Use(middleware.RateLimiter(redisClient, cfg.RateLimit, time.Minute))

		handler := httpapi.NewHandler(
			authService,
			inviteService,
			workspaceService,
			boardService,
			listService,
			taskService,
			graphService,
			tagService,
			commentService,
		)
		gate := middleware.NewAccessGate(workspaceRepo, boardRepo, listRepo, taskRepo, tagRepo)

		httpapi.Register(e, handler, gate, middleware.Authenticate(authService, userRepo))

		go func() {
			logging.Logger.Infof("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				logging.Logger.Infof("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logging.Logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
