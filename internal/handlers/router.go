package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the item endpoints onto the public router.
func RegisterRoutes(router *gin.Engine, h *ItemHandler) {
	items := router.Group("/api/items")
	{
		items.GET("", h.ListItems)
		items.POST("", h.CreateItem)
		items.GET("/:id", h.GetItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)
	}
}
