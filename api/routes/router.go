package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alquigo/alquigo-backend/api/controllers"
	"github.com/alquigo/alquigo-backend/api/middleware"
	"github.com/alquigo/alquigo-backend/internal/auth"
	cartsvc "github.com/alquigo/alquigo-backend/internal/cart"
	"github.com/alquigo/alquigo-backend/internal/catalog"
	checkoutsvc "github.com/alquigo/alquigo-backend/internal/checkout"
	"github.com/alquigo/alquigo-backend/internal/contracts"
	"github.com/alquigo/alquigo-backend/internal/transactions"
	"github.com/alquigo/alquigo-backend/pkg/auth/session"
	"github.com/alquigo/alquigo-backend/pkg/config"
	"github.com/alquigo/alquigo-backend/pkg/db"
	"github.com/alquigo/alquigo-backend/pkg/logger"
	"github.com/alquigo/alquigo-backend/pkg/metrics"
	"github.com/alquigo/alquigo-backend/pkg/redis"
)

// Params bundles everything the router mounts.
type Params struct {
	Config         *config.Config
	Logger         *logger.Logger
	DBPinger       db.Pinger
	RedisClient    *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler

	CatalogService      catalog.Service
	CartStore           cartsvc.Store
	AuthService         auth.Service
	RegisterService     auth.RegisterService
	CheckoutService     checkoutsvc.Service
	TransactionsService transactions.Service
	ContractsService    contracts.Service
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisClient))
	})

	if p.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", p.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, p.RedisClient, logg)).
				Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, p.RedisClient, logg)).
				Post("/register", controllers.AuthRegister(p.RegisterService, p.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, cfg.JWT, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogList(p.CatalogService, logg))
			r.Get("/products/{productId}", controllers.CatalogGet(p.CatalogService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionChecker, logg))

			r.Get("/session", controllers.Session(p.AuthService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(p.CartStore, logg))
				r.Delete("/", controllers.CartClear(p.CartStore, logg))
				r.Post("/items", controllers.CartAddItem(p.CartStore, p.CatalogService, logg))
				r.Patch("/items/{productId}/quantity", controllers.CartSetQuantity(p.CartStore, logg))
				r.Patch("/items/{productId}/duration", controllers.CartSetDuration(p.CartStore, logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(p.CartStore, logg))
			})

			r.Post("/checkout", controllers.Checkout(p.CheckoutService, p.AuthService, p.CartStore, logg))

			r.Route("/user", func(r chi.Router) {
				r.Get("/transactions", controllers.UserTransactions(p.TransactionsService, logg))
				r.Get("/contracts", controllers.UserContracts(p.ContractsService, logg))
			})
		})
	})

	return r
}
