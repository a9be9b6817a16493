package main

import (
	"log"
	"os"

	api "statusbar-backend/cmd/api"
	analyticsUsecase "statusbar-backend/internal/analytics/usecase"
	authdomain "statusbar-backend/internal/auth/domain"
	authRepo "statusbar-backend/internal/auth/repository"
	authUsecase "statusbar-backend/internal/auth/usecase"
	notesdomain "statusbar-backend/internal/notes/domain"
	notesRepo "statusbar-backend/internal/notes/repository"
	notesUsecase "statusbar-backend/internal/notes/usecase"
	profiledomain "statusbar-backend/internal/profile/domain"
	profileRepo "statusbar-backend/internal/profile/repository"
	profileUsecase "statusbar-backend/internal/profile/usecase"
	scheduledomain "statusbar-backend/internal/schedule/domain"
	scheduleRepo "statusbar-backend/internal/schedule/repository"
	scheduleUsecase "statusbar-backend/internal/schedule/usecase"
	taskdomain "statusbar-backend/internal/task/domain"
	taskRepo "statusbar-backend/internal/task/repository"
	taskUsecase "statusbar-backend/internal/task/usecase"
	"statusbar-backend/pkg/config"
	"statusbar-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &taskdomain.Task{}, &scheduledomain.ScheduleSlot{}, &profiledomain.UserProfile{}, &notesdomain.Note{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	scheduleRepository := scheduleRepo.NewGormScheduleRepository(db)
	profileRepository := profileRepo.NewGormProfileRepository(db)
	noteRepository := notesRepo.NewGormNoteRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	profileUsecaseInstance := profileUsecase.NewProfileUsecase(profileRepository)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)
	scheduleUsecaseInstance := scheduleUsecase.NewScheduleUsecase(scheduleRepository, taskRepository, profileUsecaseInstance)
	analyticsUsecaseInstance := analyticsUsecase.NewAnalyticsUsecase(taskRepository, scheduleRepository)
	notesUsecaseInstance := notesUsecase.NewNotesUsecase(noteRepository)

	// Initialize HTTP handler (cross-usecase wiring happens inside)
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, scheduleUsecaseInstance, profileUsecaseInstance, analyticsUsecaseInstance, notesUsecaseInstance, cfg)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Printf("Server starting on port %s", port)
	if err := handler.Start(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
