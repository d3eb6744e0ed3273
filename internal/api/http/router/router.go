package router

import (
	"net/http"

	"github.com/dtroode/filesmanager-server/internal/api/http/handler"
	"github.com/dtroode/filesmanager-server/internal/api/http/middleware"
	"github.com/dtroode/filesmanager-server/internal/logger"
	"github.com/dtroode/filesmanager-server/internal/model"
)

// Services groups the service dependencies of the REST surface.
type Services struct {
	User    handler.UserService
	Session handler.SessionService
	Catalog handler.CatalogService
	Access  handler.AccessService
	Status  handler.StatusService
}

// Router builds the REST handler tree.
type Router struct {
	services       Services
	contextManager model.ContextManager
	logger         *logger.Logger
}

func New(services Services, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register returns the mux wrapped in recovery and logging middleware.
func (r *Router) Register() http.Handler {
	mux := http.NewServeMux()

	r.registerStatusRoutes(mux)
	r.registerUserRoutes(mux)
	r.registerFileRoutes(mux)

	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	return logging.Handle(recovery.Handle(mux))
}

func (r *Router) registerStatusRoutes(mux *http.ServeMux) {
	statusHandler := handler.NewStatus(r.services.Status, r.logger)

	mux.HandleFunc("GET /status", statusHandler.Status)
	mux.HandleFunc("GET /stats", statusHandler.Stats)
}

func (r *Router) registerUserRoutes(mux *http.ServeMux) {
	auth := r.authenticate()
	userHandler := handler.NewUser(r.services.User, r.contextManager, r.logger)
	sessionHandler := handler.NewSession(r.services.Session, r.logger)

	mux.HandleFunc("POST /users", userHandler.Register)
	mux.Handle("GET /users/me", auth(userHandler.Me))
	mux.HandleFunc("GET /connect", sessionHandler.Connect)
	mux.Handle("GET /disconnect", auth(sessionHandler.Disconnect))
}

func (r *Router) registerFileRoutes(mux *http.ServeMux) {
	auth := r.authenticate()
	fileHandler := handler.NewFile(r.services.Catalog, r.services.Access, r.contextManager, r.logger)

	mux.Handle("POST /files", auth(fileHandler.Create))
	mux.Handle("GET /files", auth(fileHandler.List))
	mux.Handle("GET /files/{id}", auth(fileHandler.Get))
	mux.Handle("PUT /files/{id}/publish", auth(fileHandler.Publish))
	mux.Handle("PUT /files/{id}/unpublish", auth(fileHandler.Unpublish))
	// Public content is readable without a token.
	mux.HandleFunc("GET /files/{id}/data", fileHandler.Data)
}

func (r *Router) authenticate() func(http.HandlerFunc) http.Handler {
	m := middleware.NewAuthenticate(r.services.Session, r.contextManager, r.logger)
	return func(h http.HandlerFunc) http.Handler {
		return m.Handle(h)
	}
}
