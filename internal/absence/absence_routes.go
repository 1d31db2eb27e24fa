package absence

import (
	"go-people/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	requests := r.Group("/absence-requests")
	requests.Use(middleware.Identity())
	{
		submit := requests.Group("")
		submit.Use(middleware.RateLimitByEmployee(rate.Limit(1), 5))
		if rdb != nil {
			submit.Use(middleware.Idempotency(rdb))
		}
		submit.POST("", handler.Submit)

		requests.GET("", handler.List)
		requests.GET("/current", handler.ListCurrent)
		requests.GET("/upcoming", handler.ListUpcoming)
		requests.GET("/stats/pending-count", handler.PendingCount)
		requests.GET("/employee/:employeeId", handler.ListByEmployee)
		requests.GET("/employee/:employeeId/pending", handler.ListPendingByEmployee)
		requests.GET("/employee/:employeeId/on-leave", handler.IsOnLeave)
		requests.GET("/manager/:managerId/pending", handler.ListPendingForManager)
		requests.GET("/department/:department/pending", handler.ListPendingByDepartment)
		requests.GET("/:id", handler.GetByID)
		requests.PUT("/:id", handler.Update)
		requests.DELETE("/:id", handler.Cancel)
		requests.POST("/:id/approve", handler.Approve)
		requests.POST("/:id/reject", handler.Reject)
	}
}
