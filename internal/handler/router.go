package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	avatarHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/avatar"
	chatHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/chat"
	sandboxHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/sandbox"
	speechHandler "github.com/sganguly/teacher-avatars/backend/internal/handler/speech"
	middlewarePkg "github.com/sganguly/teacher-avatars/backend/internal/middleware"
	avatarModel "github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	turnService "github.com/sganguly/teacher-avatars/backend/internal/service/turn"
	"github.com/sganguly/teacher-avatars/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. ttsSvc and execSvc may be nil
// when their credentials are not configured; the matching routes then answer
// 503 instead of disappearing.
func NewRouter(avatars avatarModel.Store, turns *turnService.Service, ttsSvc speechHandler.Synthesizer, execSvc sandboxHandler.Executor) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	var visitors atomic.Int64

	r.Route("/api", func(api chi.Router) {
		avatarHandler.New(avatars).RegisterRoutes(api)
		chatHandler.New(turns, avatars).RegisterRoutes(api)

		if ttsSvc != nil {
			speechHandler.New(ttsSvc).RegisterRoutes(api)
		} else {
			api.Post("/tts", unavailable("tts"))
		}

		if execSvc != nil {
			sandboxHandler.New(execSvc).RegisterRoutes(api)
		} else {
			api.Post("/execute", unavailable("code execution"))
		}

		// Process-local visitor counter; resets on restart.
		api.Get("/visitors", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]int64{"count": visitors.Load()})
		})
		api.Post("/visitors", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]int64{"count": visitors.Add(1)})
		})

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})
	})

	return r
}

func unavailable(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusServiceUnavailable, name+" service not configured")
	}
}
