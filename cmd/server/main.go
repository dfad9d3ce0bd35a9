package main

import (
	"net/http"

	"go.uber.org/zap"

	"mfgops-be/internal/cart"
	"mfgops-be/internal/company"
	"mfgops-be/internal/config"
	"mfgops-be/internal/db"
	"mfgops-be/internal/feedback"
	"mfgops-be/internal/inventory"
	"mfgops-be/internal/logger"
	"mfgops-be/internal/material"
	"mfgops-be/internal/middleware"
	"mfgops-be/internal/order"
	"mfgops-be/internal/process"
	"mfgops-be/internal/product"
	"mfgops-be/internal/respond"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	product   *product.Handler
	process   *process.Handler
	material  *material.Handler
	cart      *cart.Handler
	order     *order.Handler
	inventory *inventory.Handler
	company   *company.Handler
	feedback  *feedback.Handler
}

func setupRouter(h handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.AuthMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respond.Success(w, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Route("/product", h.product.Routes)
		r.Route("/process", h.process.Routes)
		r.Route("/inventory", func(r chi.Router) {
			h.inventory.Routes(r)
			h.process.MaterialUsageRoute(r)
			h.material.InventoryRoutes(r)
		})
		r.Route("/material-transactions", h.material.TransactionRoutes)
		r.Route("/order", h.order.Routes)
		r.Route("/cart", h.cart.Routes)
		r.Route("/company", h.company.Routes)
		r.Route("/feedback", h.feedback.Routes)
	})

	return r
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	processRepo := process.NewRepository(database)
	materialRepo := material.NewRepository(database)
	cartRepo := cart.NewRepository(database)
	orderRepo := order.NewRepository(database)
	inventoryRepo := inventory.NewRepository(database)
	companyRepo := company.NewRepository(database)
	feedbackRepo := feedback.NewRepository(database)

	h := handlers{
		product:  product.NewHandler(product.NewService(productRepo)),
		process:  process.NewHandler(process.NewService(processRepo)),
		material: material.NewHandler(material.NewService(materialRepo)),
		cart:     cart.NewHandler(cart.NewService(cartRepo)),
		order:    order.NewHandler(order.NewService(orderRepo, cartRepo)),
		inventory: inventory.NewHandler(inventory.NewService(
			inventoryRepo,
			orderRepo,
			processRepo,
			productRepo,
			inventory.PolicyFromString(cfg.ConsumeMode),
		)),
		company:  company.NewHandler(company.NewService(companyRepo)),
		feedback: feedback.NewHandler(feedback.NewService(feedbackRepo)),
	}

	r := setupRouter(h)

	log.Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
