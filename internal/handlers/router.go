package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler served by the API
type Handlers struct {
	Root          *RootHandler
	Sentences     *SentenceHandler
	Statistics    *StatisticsHandler
	Contributions *ContributionHandler
	AI            *AIHandler
	Proxy         *ProxyHandler
}

// NewRouter builds the gin engine with open CORS and all routes registered
func NewRouter(h *Handlers) *gin.Engine {
	useParamNames()
	router := gin.Default()

	// Any origin and any requested header are echoed back so credentialed
	// requests work; browsers do not expand "*" when credentials are allowed
	router.Use(allowRequestedHeaders())
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", h.Root.GetInfo)
	router.GET("/health", h.Root.Health)

	api := router.Group("/api")
	{
		sentences := api.Group("/sentences")
		{
			sentences.GET("/random", h.Sentences.GetRandomSentences)
			sentences.GET("/category/:category", h.Sentences.GetSentencesByCategory)
			sentences.GET("/category-simple/:category", h.Sentences.GetSentencesByCategory)
			sentences.GET("/difficulty/:level", h.Sentences.GetSentencesByDifficulty)
		}

		api.GET("/statistics", h.Statistics.GetStatistics)
		api.GET("/contributors/top", h.Statistics.GetTopContributors)

		// Moderation is unauthenticated in the mock
		contributions := api.Group("/contributions")
		{
			contributions.POST("", h.Contributions.SubmitContribution)
			contributions.GET("", h.Contributions.GetContributions)
			contributions.GET("/:id", h.Contributions.GetContribution)
			contributions.PATCH("/:id/approval", h.Contributions.ModerateContribution)
		}

		ai := api.Group("/ai")
		{
			ai.GET("/random-phrase", h.AI.GetRandomPhrase)
			ai.GET("/gemini-phrase", h.AI.GetRandomPhrase)
		}

		api.GET("/proxy-audio", h.Proxy.ProxyAudio)
	}

	return router
}

// allowRequestedHeaders answers a preflight with the headers it asked for
func allowRequestedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		c.Next()
	}
}
