package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shinyyama/companion-backend/internal/completion"
	"github.com/shinyyama/companion-backend/internal/config"
	"github.com/shinyyama/companion-backend/internal/dify"
	"github.com/shinyyama/companion-backend/internal/handler"
	appmw "github.com/shinyyama/companion-backend/internal/middleware"
	"github.com/shinyyama/companion-backend/internal/repository"
	"github.com/shinyyama/companion-backend/internal/service"
	"github.com/shinyyama/companion-backend/internal/wechat"
	"gorm.io/gorm"
)

type Server struct {
	e           *echo.Echo
	userRepo    repository.UserRepository
	growthRepo  repository.UserGrowthRepository
	taskRepo    repository.UserTaskRepository
	chatRepo    repository.ChatMessageRepository
	diaryRepo   repository.DiaryRepository
	summaryRepo repository.DailySummaryRepository
	summarySvc  service.SummaryService
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(appmw.RequestID)

	userRepo := repository.NewUserRepository(db)
	growthRepo := repository.NewUserGrowthRepository(db)
	taskRepo := repository.NewUserTaskRepository(db)
	chatRepo := repository.NewChatMessageRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)
	summaryRepo := repository.NewDailySummaryRepository(db)

	workflow := dify.NewClient(cfg.DifyBaseURL, cfg.DifyAPIKey, nil)
	completer := completion.NewClient(cfg.CompletionBaseURL, cfg.CompletionAPIKey, cfg.CompletionModel, nil)
	identity := wechat.NewClient(cfg.WeChatAppID, cfg.WeChatAppSecret, nil)

	userSvc := service.NewUserService(userRepo, growthRepo, taskRepo, identity)
	growthSvc := service.NewGrowthService(growthRepo, taskRepo)
	chatSvc := service.NewChatService(userRepo, chatRepo, workflow)
	diarySvc := service.NewDiaryService(diaryRepo, chatRepo, workflow)
	summarySvc := service.NewSummaryService(userRepo, chatRepo, summaryRepo, completer)
	tarotSvc := service.NewTarotService()

	userHandler := handler.NewUserHandler(userSvc, growthSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	diaryHandler := handler.NewDiaryHandler(diarySvc)
	tarotHandler := handler.NewTarotHandler(tarotSvc)
	summaryHandler := handler.NewSummaryHandler(summarySvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api/v1")
	api.POST("/users", userHandler.Create)
	api.PUT("/users/:userId", userHandler.Update)
	api.GET("/users/:userId/status", userHandler.GetStatus)
	api.GET("/users/:userId/growth", userHandler.GetGrowth)
	api.POST("/users/:userId/growth/:taskType", userHandler.AdvanceTask)
	api.POST("/users/:userId/tasks/:taskType/complete", userHandler.CompleteTask)
	api.POST("/users/:userId/tasks/:taskType/claim", userHandler.ClaimTaskPoints)
	api.POST("/users/login", userHandler.Login)

	api.POST("/chat", chatHandler.Send)
	api.GET("/chat/history", chatHandler.History)
	api.POST("/chat/set_agent_name", chatHandler.SetAgentName)
	api.GET("/chat/agent_name", chatHandler.GetAgentName)

	api.GET("/diary", diaryHandler.List)
	api.GET("/diary/recent", diaryHandler.Recent)

	api.GET("/tarot/random", tarotHandler.Random)

	api.POST("/daily-summary", summaryHandler.Generate)

	return &Server{
		e:           e,
		userRepo:    userRepo,
		growthRepo:  growthRepo,
		taskRepo:    taskRepo,
		chatRepo:    chatRepo,
		diaryRepo:   diaryRepo,
		summaryRepo: summaryRepo,
		summarySvc:  summarySvc,
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// SummaryService exposes the summary service for the cron wiring.
func (s *Server) SummaryService() service.SummaryService {
	return s.summarySvc
}

// SetDB injects the connection into every repository once the database
// comes up; the server can begin listening before the DB is reachable.
func (s *Server) SetDB(db *gorm.DB) {
	s.userRepo.SetDB(db)
	s.growthRepo.SetDB(db)
	s.taskRepo.SetDB(db)
	s.chatRepo.SetDB(db)
	s.diaryRepo.SetDB(db)
	s.summaryRepo.SetDB(db)
}
