package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"meetingbot/config"
	"meetingbot/controllers"
	"meetingbot/routes"
	"meetingbot/services"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	loc, err := time.LoadLocation(config.GetCalendarTimezone())
	if err != nil {
		log.Fatalf("Invalid CALENDAR_TIMEZONE: %v", err)
	}

	store, err := services.NewCredentialStore()
	if err != nil {
		log.Fatalf("Failed to set up credential store: %v", err)
	}

	llm, err := services.NewLanguageModel()
	if err != nil {
		log.Fatalf("Failed to set up language model client: %v", err)
	}

	oauthCfg := services.NewGoogleOAuthConfig()
	gateway := services.NewGoogleCalendarGateway(oauthCfg, config.GetCalendarID(), config.GetCalendarTimezone())
	prompts := services.NewPromptService(config.GetSystemMessageFile())
	chatLog := services.NewChatLogger(config.GetChatLogFile())

	chat := services.NewChatService(
		llm,
		services.NewRegexMeetingExtractor(loc),
		store,
		gateway,
		prompts,
		chatLog,
	)

	router := routes.SetupRouter(
		controllers.NewChatController(chat),
		controllers.NewGoogleLoginController(
			services.NewGoogleAuthService(oauthCfg, store),
			config.AllowCalendarOwnerLogin(),
		),
	)

	// CORS: the chat front end may be served from anywhere
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(os.Stdout))

	port := ":" + config.GetPort()
	log.Printf("Server starting on port %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
