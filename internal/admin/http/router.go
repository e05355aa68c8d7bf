package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/roleadmin/internal/admin/service"
	"github.com/aussiebroadwan/roleadmin/internal/admin/store"
	"github.com/aussiebroadwan/roleadmin/pkg/httpx"
	"github.com/aussiebroadwan/roleadmin/pkg/jwtx"
	"github.com/aussiebroadwan/roleadmin/pkg/slogx"

	_ "github.com/aussiebroadwan/roleadmin/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	ScopeRead  = "admin:read"
	ScopeWrite = "admin:write"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	Assignments *service.AssignmentService
	Resources   *service.ResourceService

	ReadLimit  httpx.RateLimitConfig
	WriteLimit httpx.RateLimitConfig
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		ReadLimit:    httpx.ReadLimit,
		WriteLimit:   httpx.WriteLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.SecureHeaders(false),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerRoles()
	r.registerResources()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Role Administration Service API
//	@version		0.1.0
//	@description	Manages users, roles and the resources each role grants.
//	@description
//	@description				Write operations answer 422 operation_failed with a localized reason when the service rejects them.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/roleadmin
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// read wraps h for endpoints needing admin:read. admin:write implies it.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeRead, ScopeWrite),
		httpx.RateLimitByUser(r.ReadLimit),
	)
}

func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(ScopeWrite),
		httpx.RateLimitByUser(r.WriteLimit),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Assignments: r.Assignments}

	r.Mux.Handle("GET /v1/users", r.read(h.HandleList))
	r.Mux.Handle("POST /v1/users", r.write(h.HandleCreate))
	r.Mux.Handle("PUT /v1/users/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/users", r.write(h.HandleDelete))
}

func (r *Router) registerRoles() {
	h := &RolesHandler{Assignments: r.Assignments}

	r.Mux.Handle("GET /v1/roles", r.read(h.HandleList))
	r.Mux.Handle("GET /v1/roles/lookup", r.read(h.HandleLookup))
	r.Mux.Handle("POST /v1/roles", r.write(h.HandleCreate))
	r.Mux.Handle("PUT /v1/roles/{id}/resources", r.write(h.HandleSetResources))
	r.Mux.Handle("DELETE /v1/roles", r.write(h.HandleDelete))
}

func (r *Router) registerResources() {
	h := &ResourcesHandler{Resources: r.Resources}

	r.Mux.Handle("GET /v1/resources", r.read(h.ServeHTTP))
}

func (r *Router) registerSystem() {
	// Probes are polled often, so they only get the IP limit.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.ReadLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(r.ReadLimit),
		),
	)
}
