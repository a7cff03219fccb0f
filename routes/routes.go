package routes

import (
	"github.com/gin-gonic/gin"

	"meetingbot/controllers"
	"meetingbot/middlewares"
)

func SetupRouter(chat *controllers.ChatController, login *controllers.GoogleLoginController) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.RequestID())

	// chat
	r.GET("/chat", chat.Index)
	r.POST("/chat/message", chat.Message)

	// calendar-owner login (feature-flagged inside the controller)
	google := r.Group("/connect/google")
	google.GET("/", login.View)
	google.GET("/execute", login.Execute)
	google.GET("/authorized_redirect_uri", login.Callback)

	return r
}
