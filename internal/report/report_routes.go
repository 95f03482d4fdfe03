package report

import (
	"github.com/pedrodese/Check-Time/internal/middleware"
	"github.com/pedrodese/Check-Time/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(), middleware.ExtractUserID(), middleware.RoleMiddleware(user.RoleAdmin))
	{
		reports.GET("/generate", h.Generate)
	}
}
