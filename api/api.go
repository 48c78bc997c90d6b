package api

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"decisionengine/internal/domain"
	"decisionengine/internal/repository"
	"decisionengine/internal/service"
)

type ApiHandler struct {
	Logger            *zap.SugaredLogger
	ProfileRepository repository.ProfileRepository
	AnalyzeService    service.AnalyzeService
	WatchlistService  service.WatchlistService
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to the rational decision engine"})
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"status": "ok"})
	})

	router.GET("/api/profiles", m.listProfiles)
	router.POST("/api/profiles", m.createProfile)
	router.GET("/api/profiles/:id", m.getProfile)
	router.PATCH("/api/profiles/:id", m.updateProfileTickers)
	router.DELETE("/api/profiles/:id", m.deleteProfile)
	router.POST("/api/profiles/:id/check-watchlist", m.checkWatchlist)

	router.GET("/api/analyze", m.analyze)

	return router
}

// returnErrorJson maps the error taxonomy onto status codes: validation
// failures are the client's fault, unknown ids are 404, everything else
// is a 500.
func (m ApiHandler) returnErrorJson(err error, c *gin.Context) {
	var validationErr domain.ValidationError
	var notFoundErr domain.NotFoundError

	code := 500
	switch {
	case errors.As(err, &validationErr):
		code = 400
	case errors.As(err, &notFoundErr):
		code = 404
	}
	if code == 500 {
		m.Logger.Errorw("request failed", "error", err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
