package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/abaixodezero/storefront/internal/cart"
	"github.com/abaixodezero/storefront/internal/catalog"
	"github.com/abaixodezero/storefront/internal/checkout"
	"github.com/abaixodezero/storefront/internal/inventory"
	"github.com/abaixodezero/storefront/internal/order"
)

type cartResponse struct {
	Items     []cart.Line     `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

func cartJSON(c *gin.Context, code int, engine *cart.Engine) {
	lines, err := engine.Items(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := cartResponse{Items: lines, Total: decimal.Zero}
	if resp.Items == nil {
		resp.Items = []cart.Line{}
	}
	for _, l := range lines {
		resp.ItemCount += l.Quantity
		resp.Total = resp.Total.Add(l.Total())
	}
	c.JSON(code, resp)
}

func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := catalog.Query{Q: c.Query("q"), Category: c.Query("category")}
		items, err := repo.List(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if items == nil {
			items = []catalog.Product{}
		}
		c.JSON(http.StatusOK, catalog.ListResponse{Q: q.Q, Category: q.Category, Items: items})
	}
}

func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func getCartHandler(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartJSON(c, http.StatusOK, engine)
	}
}

func addCartItemHandler(engine *cart.Engine, repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}
		ctx := c.Request.Context()
		p, err := repo.GetByID(ctx, req.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		lines, err := engine.Items(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if inventory.IsOutOfStock(*p, lines) {
			c.JSON(http.StatusConflict, gin.H{"error": "out of stock"})
			return
		}
		if err := engine.Add(ctx, *p, req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cartJSON(c, http.StatusOK, engine)
	}
}

func updateCartItemHandler(engine *cart.Engine, repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx := c.Request.Context()
		qty := req.Quantity
		// The engine does not re-cap on absolute updates; clamp against
		// live stock here, where the original UI clamp lived.
		if qty > 0 {
			if p, err := repo.GetByID(ctx, c.Param("id")); err == nil && p.Stock > 0 && qty > p.Stock {
				qty = p.Stock
			}
		}
		if err := engine.SetQuantity(ctx, c.Param("id"), qty); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cartJSON(c, http.StatusOK, engine)
	}
}

func removeCartItemHandler(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.Remove(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cartJSON(c, http.StatusOK, engine)
	}
}

func clearCartHandler(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := engine.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		cartJSON(c, http.StatusOK, engine)
	}
}

func checkoutHandler(svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		res, err := svc.Submit(c.Request.Context(), in)
		var verr *order.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "category": verr.Category})
		case errors.Is(err, order.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusCreated, res)
		}
	}
}
