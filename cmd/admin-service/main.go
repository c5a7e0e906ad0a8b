package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/abaixodezero/storefront/internal/admin"
	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/config"
	"github.com/abaixodezero/storefront/internal/httpx"
	"github.com/abaixodezero/storefront/internal/order"
	"github.com/abaixodezero/storefront/internal/store"
)

func main() {
	cfg := config.Load()

	st, err := store.Open(cfg.RedisURL, cfg.DataDir)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Printf("[admin] no ADMIN_PASSWORD or ADMIN_PASSWORD_HASH set, login disabled")
	}
	gate := admin.NewGate(cfg.AdminUser, cfg.AdminPasswordHash, cfg.AdminPassword)

	products := catalog.NewStoreRepo(st)
	orders := order.NewStoreRegistry(st)

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.POST("/login", loginHandler(gate))

	authed := r.Group("", admin.RequireAuth(gate))
	authed.GET("/products", listProductsHandler(products))
	authed.POST("/products", createProductHandler(products))
	authed.PUT("/products/:id", updateProductHandler(products))
	authed.DELETE("/products/:id", deleteProductHandler(products))
	authed.GET("/orders", listOrdersHandler(orders))
	authed.PUT("/orders/:id/status", updateOrderStatusHandler(orders))
	authed.DELETE("/orders/:id", deleteOrderHandler(orders))

	log.Printf("admin-service listening on %s", cfg.AdminSvcAddr)
	log.Fatal(r.Run(cfg.AdminSvcAddr))
}
