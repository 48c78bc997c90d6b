package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) checkWatchlist(c *gin.Context) {
	id, err := parseProfileID(c)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}

	result, err := m.WatchlistService.CheckWatchlist(c.Request.Context(), id)
	if err != nil {
		m.returnErrorJson(err, c)
		return
	}
	c.JSON(200, result)
}
