package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"scratchbook/docs"
	v1 "scratchbook/internal/api/handler/v1"
	"scratchbook/internal/api/middleware"
	"scratchbook/internal/config"
	"scratchbook/internal/repository"
	"scratchbook/internal/repository/dao"
	"scratchbook/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	if conf.API.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	tracker := s.initTrackerService(db)
	s.MountHandlers(
		v1.NewGameHandler(tracker),
		v1.NewTicketHandler(tracker),
		v1.NewSettingsHandler(tracker),
	)

	return s
}

func (s *Server) initTrackerService(db *gorm.DB) *service.TrackerService {
	store := repository.NewStore(dao.NewGameDAO(db), dao.NewTicketDAO(db))

	return service.NewTrackerService(store)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(gameHandler *v1.GameHandler, ticketHandler *v1.TicketHandler, settingsHandler *v1.SettingsHandler) {
	const basePath = "/api/v1"

	games := s.Router.Group(basePath)
	{
		games.GET("/overview", gameHandler.HandleGetOverview)
		games.POST("/games", gameHandler.HandleCreateGame)
		games.GET("/games/:gameID", gameHandler.HandleGetGameDetail)
		games.DELETE("/games/:gameID", gameHandler.HandleDeleteGame)
	}

	tickets := s.Router.Group(basePath)
	{
		tickets.POST("/games/:gameID/tickets", ticketHandler.HandleAddTickets)
		tickets.PUT("/tickets/:ticketID", ticketHandler.HandleUpdateTicket)
		tickets.DELETE("/tickets/:ticketID", ticketHandler.HandleDeleteTicket)
	}

	settings := s.Router.Group(basePath)
	{
		settings.GET("/summary", settingsHandler.HandleGetSummary)
		settings.POST("/reset", settingsHandler.HandleResetAll)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Scratchbook API"
	docs.SwaggerInfo.Description = "Scratch-lottery expense and winnings tracker."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
