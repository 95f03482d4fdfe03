package timerecord

import (
	"github.com/pedrodese/Check-Time/internal/middleware"
	"github.com/pedrodese/Check-Time/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	records := r.Group("/time-records")
	records.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		records.POST("",
			middleware.RoleMiddleware(user.RoleEmployee),
			middleware.Idempotency(rdb),
			h.Create,
		)
		records.GET("/my-records", middleware.RoleMiddleware(user.RoleEmployee), h.MyRecords)
		records.GET("", middleware.RoleMiddleware(user.RoleAdmin), h.GetAll)
	}
}
