package routes

import (
	"addiswheels-backend/handlers/subscriptions"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	r.GET("/subscriptions/plans", subscriptions.GetPlans)

	subscriptionsGroup := r.Group("/subscriptions")
	subscriptionsGroup.Use(middleware.JWTAuth())
	{
		subscriptionsGroup.POST("/submit", subscriptions.Submit)
		subscriptionsGroup.GET("", subscriptions.GetMySubscriptions)
		subscriptionsGroup.GET("/active", subscriptions.GetActive)
	}

	adminGroup := r.Group("/admin/subscriptions")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", subscriptions.AdminGetSubscriptions)
		adminGroup.POST("/:id/approve", subscriptions.Approve)
		adminGroup.POST("/:id/reject", subscriptions.Reject)
	}
}
