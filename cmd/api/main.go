package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sganguly/teacher-avatars/backend/internal/config"
	"github.com/sganguly/teacher-avatars/backend/internal/handler"
	sandboxHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/sandbox"
	speechHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/speech"
	avatarModel "github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	"github.com/sganguly/teacher-avatars/backend/internal/service/ai"
	"github.com/sganguly/teacher-avatars/backend/internal/service/fallback"
	sandboxService "github.com/sganguly/teacher-avatars/backend/internal/service/sandbox"
	"github.com/sganguly/teacher-avatars/backend/internal/service/session"
	speechService "github.com/sganguly/teacher-avatars/backend/internal/service/speech"
	turnService "github.com/sganguly/teacher-avatars/backend/internal/service/turn"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	avatars := avatarModel.NewMemoryStore(avatarModel.Seed())
	prompts := ai.NewPromptCache(avatars)
	fallbackSvc := fallback.NewService()

	// The model backend is optional: without credentials every turn is
	// answered from the offline knowledge base.
	var factory session.Factory
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing with offline fallback answers only")
		} else {
			factory = func(avatarType string) (session.ModelSession, error) {
				return aiSvc.NewSession(avatarType)
			}
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("Gemini credentials not configured, serving offline fallback answers")
	}

	store := session.NewStore(factory)
	turns := turnService.NewService(store, avatars, prompts, fallbackSvc, cfg.AI.Timeout)

	var ttsSvc speechHandler.Synthesizer
	if cfg.TTS.Enabled() {
		svc, err := speechService.NewService(ctx, cfg.TTS)
		if err != nil {
			log.Printf("warning: failed to initialize TTS service: %v", err)
		} else {
			ttsSvc = svc
			log.Println("TTS service initialized successfully")
		}
	} else {
		log.Println("TTS credentials not configured, skipping speech synthesis")
	}

	var execSvc sandboxHandler.Executor
	if cfg.Sandbox.Enabled() {
		execSvc = sandboxService.NewClient(cfg.Sandbox)
		log.Println("Sandbox service initialized successfully")
	} else {
		log.Println("JDoodle credentials not configured, skipping code execution")
	}

	router := handler.NewRouter(avatars, turns, ttsSvc, execSvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Teacher avatars backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
