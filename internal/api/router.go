package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/config"
	"github.com/qa-forum-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.CORSOrigin))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(cfg.Session.Name, store))

	// Handlers
	accountHandler := NewAccountHandler(services, log)
	questionHandler := NewQuestionHandler(services, log)
	answerHandler := NewAnswerHandler(services, log)
	tagHandler := NewTagHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Public
	router.POST("/register", accountHandler.Register)
	router.POST("/login", accountHandler.Login)
	router.GET("/questions", questionHandler.GetQuestions)
	router.GET("/tags", tagHandler.GetTags)
	router.GET("/answers", answerHandler.GetAnswers)
	router.GET("/data", questionHandler.GetData)
	router.GET("/posts/question/:id", questionHandler.ViewQuestion)
	router.POST("/editquestion", questionHandler.EditQuestion)
	router.POST("/editanswer", answerHandler.EditAnswer)
	router.POST("/updateanswer", answerHandler.UpdateAnswer)

	// Session-cookie authenticated
	auth := router.Group("", requireSession)
	{
		auth.POST("/logout", accountHandler.Logout)
		auth.GET("/userprofile", accountHandler.GetProfile)
		auth.POST("/userprofile", accountHandler.ViewProfile)
		auth.POST("/deleteaccount", accountHandler.DeleteAccount)
		auth.POST("/questions", questionHandler.AddQuestion)
		auth.POST("/updatequestion", questionHandler.UpdateQuestion)
		auth.POST("/deletequestion", questionHandler.DeleteQuestion)
		auth.POST("/useranswers", questionHandler.UserAnswers)
		auth.POST("/vote", questionHandler.Vote)
		auth.POST("/comments", questionHandler.AddComment)
		auth.POST("/answers", answerHandler.AddAnswer)
		auth.POST("/deleteanswer", answerHandler.DeleteAnswer)
		auth.POST("/edittag", tagHandler.EditTag)
		auth.POST("/updatetag", tagHandler.UpdateTag)
		auth.POST("/deletetag", tagHandler.DeleteTag)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "qa-forum-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS. Credentials are allowed because the session
// cookie rides along on cross-origin requests from the UI, so the origin
// must be explicit rather than a wildcard.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
