package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) analyze(c *gin.Context) {
	result, err := m.AnalyzeService.Analyze(c.Request.Context(), c.Query("ticker"), c.Query("thesis"))
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, result)
}
