package stream

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stopBody struct {
	Streamer string `json:"streamer"`
}

// Stop removes the streamer's entry. Stopping a streamer that isn't listed
// still succeeds.
func Stop(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data stopBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":    "error",
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind stream body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Streamer == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":    "error",
			"error":     "Streamer field can't be empty",
			"requestID": requestID,
		})
		return
	}

	removed := d.Streams.Remove(data.Streamer)
	if removed {
		zap.L().Info("Stream stopped", zap.String("streamer", data.Streamer), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"removed": removed,
	})
}
