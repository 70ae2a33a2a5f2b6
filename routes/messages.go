package routes

import (
	"addiswheels-backend/handlers/messages"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func MessagesRoutes(r *gin.Engine) {
	messagesGroup := r.Group("/messages")
	messagesGroup.Use(middleware.JWTAuth())
	{
		messagesGroup.POST("", messages.CreateMessage)
		messagesGroup.GET("/conversations", messages.GetConversations)
		messagesGroup.GET("/thread", messages.GetThread)
		messagesGroup.POST("/mark-read", messages.MarkRead)
		messagesGroup.GET("/unread-count", messages.GetUnreadCount)
	}
}
