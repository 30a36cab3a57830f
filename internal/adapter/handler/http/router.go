package http

import (
	"github.com/gin-gonic/gin"
	"github.com/swark/arkpay/internal/adapter/config"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/:number", orderHandler.GetOrder)
			orders.POST("/:number/process", orderHandler.ProcessOrder)
		}

		api.POST("/reconcile", orderHandler.Reconcile)
		api.GET("/payments/:id/check", orderHandler.CheckPayment)
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
