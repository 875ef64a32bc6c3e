package api

import (
	"net/http"
	"strings"

	"sms-dashboard/internal/config"
	"sms-dashboard/internal/gateway"
	"sms-dashboard/internal/ws"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the dashboard routes onto a gin engine.
func NewRouter(cfg *config.Config, client *gateway.Client, hub *ws.Hub) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(cfg.AllowedOrigins))

	authHandler := NewAuthHandler(client)
	contactHandler := NewContactHandler(client, hub)
	dashboardHandler := NewDashboardHandler(client, hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWs(c.Writer, c.Request)
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/session", authHandler.Session)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/logout", authHandler.Logout)
		}

		apiGroup.GET("/contacts", contactHandler.GetContacts)
		apiGroup.GET("/contacts/export", contactHandler.ExportContacts)
		apiGroup.GET("/contacts/:id", contactHandler.GetContact)
		apiGroup.POST("/contacts/upload", contactHandler.UploadContacts)

		apiGroup.GET("/messages", dashboardHandler.GetMessages)
		apiGroup.POST("/messages", dashboardHandler.SendMessage)
		apiGroup.POST("/messages/preview", dashboardHandler.Preview)
	}

	return r
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	allowed := map[string]bool{}
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			allowed[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowed["*"]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
