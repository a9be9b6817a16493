package api

import (
	"net/http"

	analyticsDelivery "statusbar-backend/internal/analytics/delivery"
	"statusbar-backend/internal/auth/delivery"
	notesDelivery "statusbar-backend/internal/notes/delivery"
	profileDelivery "statusbar-backend/internal/profile/delivery"
	scheduleDelivery "statusbar-backend/internal/schedule/delivery"
	taskDelivery "statusbar-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	taskHandler := taskDelivery.NewTaskHandler(h.taskUsecase)
	scheduleHandler := scheduleDelivery.NewScheduleHandler(h.scheduleUsecase)
	profileHandler := profileDelivery.NewProfileHandler(h.profileUsecase)
	analyticsHandler := analyticsDelivery.NewAnalyticsHandler(h.analyticsUsecase)
	notesHandler := notesDelivery.NewNotesHandler(h.notesUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/undo", taskHandler.UndoDelete)
			tasks.DELETE("/undo", taskHandler.DismissUndo)
			tasks.DELETE("/completed", taskHandler.ClearCompleted)
			tasks.POST("/decompose", taskHandler.Decompose)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/toggle", taskHandler.ToggleCompletion)
			tasks.POST("/:id/time", taskHandler.LogTime)
		}

		// Schedule routes (protected)
		schedule := api.Group("/schedule")
		schedule.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			schedule.GET("", scheduleHandler.GetSchedule)
			schedule.POST("/generate", scheduleHandler.Generate)
			schedule.PUT("/reorder", scheduleHandler.Reorder)
			schedule.GET("/next", scheduleHandler.Next)
			schedule.GET("/export", scheduleHandler.Export)
		}

		// Profile routes (protected)
		profile := api.Group("/profile")
		profile.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
			profile.PUT("/pomodoro", profileHandler.UpdatePomodoro)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			analytics.GET("", analyticsHandler.GetReport)
		}

		// Notes routes (protected)
		notes := api.Group("/notes")
		notes.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			notes.GET("", notesHandler.GetNotes)
			notes.PUT("", notesHandler.SaveNotes)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", GetOllamaSettings)
			settings.PUT("/ollama", UpdateOllamaSettings)
			settings.POST("/ollama/test", TestOllamaConnection)
		}
	}
}
