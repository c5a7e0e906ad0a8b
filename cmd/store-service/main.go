package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/abaixodezero/storefront/internal/cart"
	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/checkout"
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

	products := catalog.NewStoreRepo(st)
	engine := cart.New(st)
	orders := order.NewStoreRegistry(st)
	svc := &checkout.Service{
		Cart:        engine,
		Orders:      orders,
		Products:    products,
		RelayNumber: cfg.WhatsAppNumber,
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(200, "ok") })
	r.GET("/products", listProductsHandler(products))
	r.GET("/products/:id", getProductHandler(products))
	r.GET("/cart", getCartHandler(engine))
	r.POST("/cart/items", addCartItemHandler(engine, products))
	r.PUT("/cart/items/:id", updateCartItemHandler(engine, products))
	r.DELETE("/cart/items/:id", removeCartItemHandler(engine))
	r.DELETE("/cart", clearCartHandler(engine))
	r.POST("/checkout", checkoutHandler(svc))

	log.Printf("store-service listening on %s", cfg.StoreSvcAddr)
	log.Fatal(r.Run(cfg.StoreSvcAddr))
}
