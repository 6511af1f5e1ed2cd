// Package stream contains the active stream page and the callbacks the bot
// uses to report streams starting and stopping
package stream

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Add(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var s model.Stream
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":    "error",
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind stream body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := s.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":    "error",
			"error":     "Streamer field can't be empty",
			"requestID": requestID,
		})
		return
	}

	d.Streams.Add(s)

	zap.L().Info("Stream started", zap.String("streamer", s.Streamer), zap.String("requestID", requestID))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
