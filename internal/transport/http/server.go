package http

import (
	"github.com/gin-gonic/gin"

	"kosovai-backend/internal/bootstrap"
	"kosovai-backend/internal/transport/http/handler"
	"kosovai-backend/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(app.AuthService, app.Config.Auth.CookieName)
	chatHandler := handler.NewChatHandler(app.ChatService)
	auditHandler := handler.NewAuditHandler(app.LoginEvents)

	router.GET("/healthz", healthHandler.Check)

	router.GET("/", authHandler.IndexPage)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	authed := router.Group("/", middleware.SessionAuth(app.Config.Auth.JWTSecret, app.Config.Auth.CookieName))
	authed.POST("/chat", chatHandler.Chat)
	authed.GET("/logins", auditHandler.RecentLogins)

	return router
}
