package http

import (
	"net/http"

	_ "github.com/DRSN-tech/go-storefront/docs" // Регистрация спецификации swagger
	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	cfg    *cfg.HTTPConfig
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, cartUC usecase.CartUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	if r.cfg.RequestTimeout > 0 {
		r.router.Use(middleware.Timeout(r.cfg.RequestTimeout))
	}

	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(r.cfg.SwaggerURL),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger)
		registerProductRoutes(v1, prHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/batch", prHandler.getProductsInfo)
		pr.Get("/{productID}", prHandler.getProduct)
	})
	router.Get("/metadata", prHandler.getMetadata)
	router.Get("/services", prHandler.listServices)
	router.Post("/quote", prHandler.quote)
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/carts", func(cr chi.Router) {
		cr.Post("/", cartHandler.createCart)
		cr.Route("/{cartID}", func(c chi.Router) {
			c.Get("/", cartHandler.getCart)
			c.Get("/total", cartHandler.getTotal)
			c.Post("/items", cartHandler.addItem)
			c.Delete("/items", cartHandler.clearCart)
			c.Delete("/items/{productID}", cartHandler.removeItem)
			c.Put("/items/{productID}/addons/{addon}", cartHandler.setAddOn)
		})
	})
}
