package feedback

import (
	"go-people/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	feedback := r.Group("/feedback")
	feedback.Use(middleware.Identity())
	{
		feedback.POST("", handler.Create)
		feedback.GET("", handler.List)
		feedback.GET("/search", handler.Search)
		feedback.GET("/employee/:employeeId", handler.ListForEmployee)
		feedback.GET("/employee/:employeeId/public", handler.ListPublicForEmployee)
		feedback.GET("/giver/:giverId", handler.ListGivenBy)
		feedback.GET("/:id", handler.GetByID)
		feedback.PUT("/:id", handler.Update)
		feedback.DELETE("/:id", handler.Archive)
		feedback.POST("/:id/enhance", handler.Enhance)
	}
}
