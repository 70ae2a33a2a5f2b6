package routes

import (
	"addiswheels-backend/handlers/notifications"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func NotificationsRoutes(r *gin.Engine) {
	notificationsGroup := r.Group("/notifications")
	notificationsGroup.Use(middleware.JWTAuth())
	{
		notificationsGroup.GET("", notifications.GetNotifications)
		notificationsGroup.GET("/unread-count", notifications.GetUnreadCount)
		notificationsGroup.PATCH("/:id/read", notifications.MarkRead)
		notificationsGroup.POST("/read-all", notifications.MarkAllRead)
	}
}
