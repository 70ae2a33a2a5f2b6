package routes

import (
	"addiswheels-backend/handlers/payments"
	"addiswheels-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.JWTAuth())
	{
		paymentsGroup.POST("/submit", payments.Submit)
		paymentsGroup.GET("", payments.GetMyPayments)
	}

	adminGroup := r.Group("/admin/payments")
	adminGroup.Use(middleware.AdminAuth())
	{
		adminGroup.GET("", payments.AdminGetPayments)
		adminGroup.POST("/:id/approve", payments.Approve)
		adminGroup.POST("/:id/reject", payments.Reject)
	}
}
