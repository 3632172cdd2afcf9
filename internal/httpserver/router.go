package httpserver

import (
	"context"
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
	productsvc "product-catalog/internal/service/product"
)

// ProductService is the product surface the handlers depend on.
type ProductService interface {
	List(ctx context.Context, f productrepo.ListFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in productsvc.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q string, skip, limit int64) ([]domain.Product, error)
}

// Deps carries the dependencies injected into the router.
type Deps struct {
	ProductSvc ProductService
	Verifier   TokenVerifier
}

// buildRouter wires middleware and routes for the API.
func buildRouter(logger zerolog.Logger, pinger Pinger, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil {
		return nil, errors.New("httpserver: product service is required")
	}
	if deps.Verifier == nil {
		return nil, errors.New("httpserver: token verifier is required")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		accessLogMiddleware(logger),
		metricsMiddleware(),
		cors.New(cors.Config{
			AllowOriginFunc:  func(string) bool { return true },
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}),
	)

	router.GET("/health", healthHandler(pinger, logger))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := &productHandlers{svc: deps.ProductSvc, logger: logger}

	api := router.Group("/api/products")
	{
		api.GET("", h.list)
		api.GET("/search", h.search)
		api.GET("/:id", h.get)

		authed := api.Group("")
		authed.Use(authMiddleware(deps.Verifier))
		{
			authed.POST("", h.create)
			authed.PUT("/:id", h.update)
			authed.DELETE("/:id", h.delete)
		}
	}

	return router, nil
}
