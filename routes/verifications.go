package routes

import (
	"addiswheels-backend/handlers/verifications"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func VerificationsRoutes(r *gin.Engine) {
	verificationsGroup := r.Group("/verifications")
	verificationsGroup.Use(middleware.JWTAuth())
	{
		verificationsGroup.POST("/submit", verifications.Submit)
		verificationsGroup.GET("/status", verifications.GetStatus)
	}

	adminGroup := r.Group("/admin/verifications")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", verifications.AdminGetPending)
		adminGroup.POST("/:id/approve", verifications.Approve)
		adminGroup.POST("/:id/reject", verifications.Reject)
	}
}
