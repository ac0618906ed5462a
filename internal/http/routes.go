// Package httpx provides HTTP handlers, authorization gates, and routing for
// the savelife API.
package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/ports"
	"github.com/savelife/savelife-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Blogs     *service.BlogService
	Donations *service.DonationService
	Fundings  *service.FundingService
	Codec     ports.TokenCodec
	Logger    *slog.Logger // Logger for request and panic logging (optional)
}

// NewRouter creates and configures the HTTP router. Gates are composed per
// route: authentication always runs before any authorization gate so that
// role checks can rely on a principal being present.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authn := RequireAuth(services.Codec)
	adminOnly := Chain(authn, RequireRole(services.Auth, domainauth.RoleAdmin))
	selfOnly := Chain(authn, RequireSelf("email"))

	registerAuthRoutes(mux, &AuthHandlers{Svc: services.Auth})
	registerUserRoutes(mux, userRouteConfig{
		Handlers:  &UserHandlers{Svc: services.Users},
		AdminOnly: adminOnly,
		SelfOnly:  selfOnly,
	})
	registerBlogRoutes(mux, &BlogHandlers{Svc: services.Blogs}, authn)
	registerDonationRoutes(mux, &DonationHandlers{Svc: services.Donations}, authn)
	registerFundingRoutes(mux, &FundingHandlers{Svc: services.Fundings}, authn)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Chain(Recover(logger), Logging(logger))(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/token", h.IssueToken)
}

type userRouteConfig struct {
	Handlers  *UserHandlers
	AdminOnly Middleware
	SelfOnly  Middleware
}

func registerUserRoutes(mux *http.ServeMux, cfg userRouteConfig) {
	h := cfg.Handlers

	// Registration is open; everything else on the collection is admin work.
	mux.HandleFunc("POST /api/users", h.Register)
	mux.Handle("GET /api/users", cfg.AdminOnly(http.HandlerFunc(h.List)))
	mux.Handle("PATCH /api/users/{id}/role", cfg.AdminOnly(http.HandlerFunc(h.SetRole)))
	mux.Handle("DELETE /api/users/{id}", cfg.AdminOnly(http.HandlerFunc(h.Delete)))

	// Status probes answer only for the principal's own email.
	mux.Handle("GET /api/users/admin/{email}", cfg.SelfOnly(http.HandlerFunc(h.AdminStatus)))
	mux.Handle("GET /api/users/volunteer/{email}", cfg.SelfOnly(http.HandlerFunc(h.VolunteerStatus)))
}

func registerBlogRoutes(mux *http.ServeMux, h *BlogHandlers, authn Middleware) {
	mux.HandleFunc("GET /api/blogs", h.List)
	mux.Handle("POST /api/blogs", authn(http.HandlerFunc(h.Create)))
}

func registerDonationRoutes(mux *http.ServeMux, h *DonationHandlers, authn Middleware) {
	mux.HandleFunc("GET /api/donation-requests", h.List)
	mux.Handle("POST /api/donation-requests", authn(http.HandlerFunc(h.Create)))
	mux.Handle("PATCH /api/donation-requests/{id}/status", authn(http.HandlerFunc(h.SetStatus)))
}

func registerFundingRoutes(mux *http.ServeMux, h *FundingHandlers, authn Middleware) {
	mux.Handle("GET /api/fundings", authn(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/fundings", authn(http.HandlerFunc(h.Record)))
	mux.Handle("POST /api/fundings/payment-intent", authn(http.HandlerFunc(h.CreatePaymentIntent)))
}
