package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ReachoutToAll/controllers"
	"github.com/ReachoutToAll/initializers"
	"github.com/ReachoutToAll/middlewares"
	"github.com/ReachoutToAll/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitPushNotificationService()
	services.InitEmailService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	router.GET("/ping", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.Ping)
	router.POST("/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.OperatorLogin)

	// public site reads
	router.GET("/soul-count", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.GetSoulCount)
	router.GET("/events", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.GetEvents)
	router.GET("/sermons", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.GetSermons)
	router.GET("/documents", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.GetDocuments)

	// public site submissions
	router.POST("/volunteers", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitVolunteerApplication)
	router.POST("/prayer-requests", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitPrayerRequest)

	router.Static("/static", "./static")

	// Password reset endpoints
	router.POST("/auth/forgot-password", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.ForgotPassword)
	router.POST("/auth/verify-reset-code", middlewares.RateLimitMiddleware(5, 5, getKey), controllers.VerifyResetCode)
	router.POST("/auth/reset-password", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.ResetPassword)

	auth := router.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{

		// operator routes
		auth.GET("/operators/me", controllers.GetOperatorProfile)
		auth.POST("/logout", controllers.OperatorLogout)
		auth.POST("/operators/push-token", controllers.StorePushToken)

		// notification routes
		auth.GET("/notifications", controllers.GetOperatorNotifications)
		auth.PATCH("/notifications/:notification_id/read", controllers.MarkNotificationRead)

		// dashboard routes
		auth.GET("/admin/dashboard", controllers.GetDashboard)

		auth.POST("/admin/events", controllers.CreateEvent)
		auth.PUT("/admin/events/:event_id", controllers.UpdateEvent)
		auth.DELETE("/admin/events/:event_id", controllers.DeleteEvent)

		auth.POST("/admin/sermons", controllers.CreateSermon)
		auth.PUT("/admin/sermons/:sermon_id", controllers.UpdateSermon)
		auth.DELETE("/admin/sermons/:sermon_id", controllers.DeleteSermon)

		auth.POST("/admin/documents", controllers.CreateDocument)
		auth.PUT("/admin/documents/:document_id", controllers.UpdateDocument)
		auth.DELETE("/admin/documents/:document_id", controllers.DeleteDocument)

		auth.GET("/admin/volunteers", controllers.GetVolunteers)
		auth.DELETE("/admin/volunteers/:volunteer_id", controllers.DeleteVolunteer)

		auth.GET("/admin/prayer-requests", controllers.GetPrayerRequests)
		auth.DELETE("/admin/prayer-requests/:prayer_request_id", controllers.DeletePrayerRequest)

		auth.PATCH("/admin/soul-count", controllers.UpdateSoulCount)

		//admin only routes
		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		admin.Use(middlewares.RateLimitMiddleware(5, 5, getKey))
		{
			admin.POST("/operators", controllers.OperatorSignup)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
