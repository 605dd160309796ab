package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/opsdeskhq/opsdesk-access/internal/access/domain"
	"github.com/opsdeskhq/opsdesk-access/internal/access/service"
	"github.com/opsdeskhq/opsdesk-access/internal/access/store"
	"github.com/opsdeskhq/opsdesk-access/pkg/httpx"
	"github.com/opsdeskhq/opsdesk-access/pkg/jwtx"
	"github.com/opsdeskhq/opsdesk-access/pkg/slogx"

	_ "github.com/opsdeskhq/opsdesk-access/api/access" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier       jwtx.Verifier
	issuer         string
	serviceKeyHash string
	buildVersion   string
	startTime      time.Time
	logger         *slog.Logger

	store              store.Store
	ResolverService    *service.ResolverService
	GuardService       *service.GuardService
	UpgradeService     *service.UpgradeService
	OnboardingService  *service.OnboardingService
	AssignmentsService *service.AssignmentsService
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer, serviceKeyHash, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		verifier:       verifier,
		issuer:         issuer,
		serviceKeyHash: serviceKeyHash,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		store:          st,
		logger:         logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerGuard()
	r.registerRoles()
	r.registerRequests()
	r.registerAssignments()
	r.registerOnboarding()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OpsDesk Access Service API
//	@version		0.1.0
//	@description	Role-based access control for the OpsDesk platform: page guards, landing-route
//	@description	resolution, role upgrade requests with administrator review, and signup onboarding.
//	@description
//	@description				Session tokens are HS256 JWTs minted by the identity service. Role membership is
//	@description				never read from token claims; every decision queries live assignments.
//
//	@contact.name				OpsDesk Team
//	@contact.url				https://github.com/opsdeskhq/opsdesk-access
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
//	@description				JWT session token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	ServiceKeyAuth
//	@in							header
//	@name						X-Service-Key
//	@description				Pre-shared service key for machine-to-machine endpoints.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the session token and injects the user into the context.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.issuer, domain.LoginRoute)
}

// requireAdmin gates an endpoint on a live admin-role lookup. Same decision
// source as the page guard: the store, never token claims.
func (r *Router) requireAdmin() httpx.Middleware {
	check := func(ctx context.Context, userID, role string) (bool, error) {
		return r.store.Assignments().HasRole(ctx, userID, domain.Role(role))
	}
	return httpx.RequireRole(check, string(domain.RoleAdmin))
}

func (r *Router) registerGuard() {
	guardHandler := &GuardHandler{GuardService: r.GuardService}
	routeHandler := &RouteHandler{ResolverService: r.ResolverService}

	// Guard and route checks run on every page load - lenient rate limit
	r.Mux.Handle("GET /v1/guard/{role}",
		httpx.Chain(guardHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/route",
		httpx.Chain(routeHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRoles() {
	rolesHandler := &RolesHandler{}
	myRolesHandler := &MyRolesHandler{AssignmentsService: r.AssignmentsService}

	// GET /v1/roles - static catalogue, no authentication required
	r.Mux.Handle("GET /v1/roles",
		httpx.Chain(rolesHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /v1/me/roles",
		httpx.Chain(myRolesHandler,
			r.authn(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerRequests() {
	h := &RequestsHandler{UpgradeService: r.UpgradeService}

	// POST /v1/requests - strict rate limit (state-changing)
	r.Mux.Handle("POST /v1/requests",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			r.authn(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/requests",
		httpx.Chain(http.HandlerFunc(h.HandleListMine),
			r.authn(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Admin review queue and decision endpoint
	r.Mux.Handle("GET /v1/requests/pending",
		httpx.Chain(http.HandlerFunc(h.HandleListPending),
			r.authn(),
			r.requireAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/requests/{id}/review",
		httpx.Chain(http.HandlerFunc(h.HandleReview),
			r.authn(),
			r.requireAdmin(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAssignments() {
	h := &AssignmentsHandler{AssignmentsService: r.AssignmentsService}

	r.Mux.Handle("GET /v1/users/{id}/roles",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.authn(),
			r.requireAdmin(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/users/{id}/roles",
		httpx.Chain(http.HandlerFunc(h.HandleGrant),
			r.authn(),
			r.requireAdmin(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/users/{id}/roles/{role}",
		httpx.Chain(http.HandlerFunc(h.HandleRevoke),
			r.authn(),
			r.requireAdmin(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerOnboarding() {
	// POST /v1/onboard - service key only, strict rate limit by IP
	h := &OnboardHandler{OnboardingService: r.OnboardingService}
	r.Mux.Handle("POST /v1/onboard",
		httpx.Chain(h,
			httpx.RequireServiceKey(r.serviceKeyHash),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
