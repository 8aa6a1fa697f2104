package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"ai_ecommerce_assistant/config"
	_ "ai_ecommerce_assistant/docs" // 导入 swagger 文档
	"ai_ecommerce_assistant/services"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, assistant *services.Assistant) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		HealthHandler(w, req, cfg, assistant)
	})

	// 业务接口统一走X-API-Key鉴权
	r.Route("/api", func(api chi.Router) {
		api.Use(APIKeyAuth(cfg))

		api.Post("/recommendations", func(w http.ResponseWriter, req *http.Request) {
			RecommendationsHandler(w, req, assistant)
		})

		api.Post("/search", func(w http.ResponseWriter, req *http.Request) {
			SearchHandler(w, req, assistant)
		})

		api.Post("/pricing", func(w http.ResponseWriter, req *http.Request) {
			PricingHandler(w, req, assistant)
		})

		api.Post("/content", func(w http.ResponseWriter, req *http.Request) {
			ContentHandler(w, req, assistant)
		})

		api.Post("/sentiment", func(w http.ResponseWriter, req *http.Request) {
			SentimentHandler(w, req, assistant)
		})

		api.Post("/inventory", func(w http.ResponseWriter, req *http.Request) {
			InventoryHandler(w, req, assistant)
		})

		api.Post("/support", func(w http.ResponseWriter, req *http.Request) {
			SupportHandler(w, req, assistant)
		})

		api.Post("/cart", func(w http.ResponseWriter, req *http.Request) {
			CartRecoveryHandler(w, req, assistant)
		})

		api.Post("/products", func(w http.ResponseWriter, req *http.Request) {
			SyncProductsHandler(w, req, cfg, assistant)
		})

		api.Get("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
			GetProductHandler(w, req, assistant)
		})

		api.Post("/purchases", func(w http.ResponseWriter, req *http.Request) {
			RecordPurchaseHandler(w, req, assistant)
		})

		api.Post("/carts", func(w http.ResponseWriter, req *http.Request) {
			SaveCartHandler(w, req, assistant)
		})

		api.Post("/faqs", func(w http.ResponseWriter, req *http.Request) {
			SaveFAQHandler(w, req, assistant)
		})
	})
}
