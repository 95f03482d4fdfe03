package user

import (
	"github.com/pedrodese/Check-Time/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	users := r.Group("/users")

	// Open bootstrap endpoint; refuses once an admin exists.
	users.POST("/first-admin", h.CreateFirstAdmin)

	authed := users.Group("")
	authed.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		authed.GET("/profile", h.Profile)

		admin := authed.Group("")
		admin.Use(middleware.RoleMiddleware(RoleAdmin))
		{
			admin.POST("", h.Create)
			admin.GET("", h.GetAll)
			admin.GET("/:id", h.GetByID)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
