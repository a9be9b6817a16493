package api

import (
	"log"
	"time"

	analyticsUsecasePkg "statusbar-backend/internal/analytics/usecase"
	authUsecasePkg "statusbar-backend/internal/auth/usecase"
	notesUsecasePkg "statusbar-backend/internal/notes/usecase"
	profileUsecasePkg "statusbar-backend/internal/profile/usecase"
	scheduleUsecasePkg "statusbar-backend/internal/schedule/usecase"
	taskUsecasePkg "statusbar-backend/internal/task/usecase"
	"statusbar-backend/pkg/ai"
	"statusbar-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	taskUsecase      taskUsecasePkg.TaskUsecase
	scheduleUsecase  scheduleUsecasePkg.ScheduleUsecase
	profileUsecase   profileUsecasePkg.ProfileUsecase
	analyticsUsecase analyticsUsecasePkg.AnalyticsUsecase
	notesUsecase     notesUsecasePkg.NotesUsecase
	config           *config.Config
}

// progressionAdapter adapts ProfileUsecase to TaskUsecase.ProgressionSink
type progressionAdapter struct {
	profileUc profileUsecasePkg.ProfileUsecase
}

func (a *progressionAdapter) OnCompletionToggled(userID string, completed bool, at time.Time) error {
	_, err := a.profileUc.ApplyCompletionDelta(userID, completed, at)
	return err
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, scheduleUc scheduleUsecasePkg.ScheduleUsecase, profileUc profileUsecasePkg.ProfileUsecase, analyticsUc analyticsUsecasePkg.AnalyticsUsecase, notesUc notesUsecasePkg.NotesUsecase, cfg *config.Config) *Handler {
	// Initialize runtime config for settings API
	InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: GetRuntimeOllamaBaseURL,
		GetOllamaModel:   GetRuntimeOllamaModel,
	}
	aiService, err := ai.NewSchedulerServiceWithDynamicConfig(aiCfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized with provider: %s (dynamic config enabled)", cfg.AIProvider)
	}

	// Wire the AI oracle into the scheduling and decomposition paths
	if aiService != nil {
		taskUc.SetOracle(aiService)
		scheduleUc.SetOracle(aiService)
	}

	// Task mutations cascade into the schedule and progression
	taskUc.SetScheduleCascade(scheduleUc)
	taskUc.SetProgression(&progressionAdapter{profileUc: profileUc})

	// New registrations start with a default profile
	authUc.SetProfileInitializer(profileUc.InitProfile)

	return &Handler{
		authUsecase:      authUc,
		taskUsecase:      taskUc,
		scheduleUsecase:  scheduleUc,
		profileUsecase:   profileUc,
		analyticsUsecase: analyticsUc,
		notesUsecase:     notesUc,
		config:           cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h)

	return r.Run(addr)
}
