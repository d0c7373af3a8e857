package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridian-erp/meridian-erp/internal/auth"
	"github.com/meridian-erp/meridian-erp/internal/customers"
	"github.com/meridian-erp/meridian-erp/internal/observability"
	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/sales"
	"github.com/meridian-erp/meridian-erp/internal/shared"
	"github.com/meridian-erp/meridian-erp/internal/suppliers"
	"github.com/meridian-erp/meridian-erp/jobs"
)

// RouterParams collects everything NewRouter wires together.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	Metrics        *observability.Metrics

	Auth      *auth.Handler
	Customers *customers.Handler
	Suppliers *suppliers.Handler
	Products  *products.Handler
	Sales     *sales.Handler
	Jobs      *jobs.Handler
}

func NewRouter(p RouterParams) chi.Router {
	r := chi.NewRouter()
	r.Use(MiddlewareStack(MiddlewareConfig{
		Logger:         p.Logger,
		Config:         p.Config,
		SessionManager: p.SessionManager,
		Metrics:        p.Metrics,
	})...)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if p.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}

	p.Auth.MountRoutes(r)
	p.Customers.MountRoutes(r, auth.RequireUser)
	p.Suppliers.MountRoutes(r, auth.RequireUser)
	p.Products.MountRoutes(r, auth.RequireUser)
	p.Sales.MountRoutes(r, auth.RequireUser)

	if p.Jobs != nil {
		r.Route("/jobs", func(r chi.Router) {
			p.Jobs.MountRoutes(r)
		})
	}

	return r
}
