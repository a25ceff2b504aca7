package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/RrD-111/chat-api/auth"
	"github.com/RrD-111/chat-api/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	Guard    auth.IGuard
	Auth     services.IAuthService
	Users    services.IUserService
	Groups   services.IGroupService
	Messages services.IMessageService
	Log      *slog.Logger
}

// NewRouter wires the REST surface:
//
//	POST   /login                       issue a token
//	POST   /logout                      revoke the caller's token
//	POST   /users                       create account       (admin)
//	PUT    /users/{id}                  update account       (admin)
//	POST   /groups                      create group
//	GET    /groups                      list groups with members
//	DELETE /groups/{id}                 delete group         (member)
//	POST   /groups/{id}/members         add members          (member)
//	POST   /groups/{id}/messages        send message         (member)
//	POST   /messages/{id}/likes         like message         (member of the message's group)
func NewRouter(deps Deps) *mux.Router {
	authHandler := NewAuthHandler(deps.Auth)
	userHandler := NewUserHandler(deps.Users)
	groupHandler := NewGroupHandler(deps.Groups)
	messageHandler := NewMessageHandler(deps.Messages)

	r := mux.NewRouter()
	r.Use(requestLogging(deps.Log))

	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(authenticate(deps.Guard))

	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	protected.HandleFunc("/groups", groupHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/groups", groupHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/groups/{id:[0-9]+}", groupHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/groups/{id:[0-9]+}/members", groupHandler.AddMembers).Methods(http.MethodPost)
	protected.HandleFunc("/groups/{id:[0-9]+}/messages", messageHandler.Send).Methods(http.MethodPost)
	protected.HandleFunc("/messages/{id:[0-9]+}/likes", messageHandler.Like).Methods(http.MethodPost)

	admin := protected.NewRoute().Subrouter()
	admin.Use(requireAdmin(deps.Guard))
	admin.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPut)

	return r
}

// requestLogging tags every request with a short-lived id and logs method,
// path, and duration.
func requestLogging(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()

			next.ServeHTTP(w, r)

			log.Info("request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		})
	}
}
