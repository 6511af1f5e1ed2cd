package auth

import (
	"errors"
	"net/http"

	"github.com/PowerNightVS/discord-web/discord"
	"github.com/PowerNightVS/discord-web/internal"
	"github.com/PowerNightVS/discord-web/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Callback finishes the login Discord redirected back to. A missing code
// sends the user home, any failure talking to Discord is a plain 400.
func Callback(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	profile, err := d.Discord.Authenticate(c.Request.Context(), code)
	if err != nil {
		zap.L().Error("Discord login failed", zap.Error(err), zap.String("requestID", requestID))

		if errors.Is(err, discord.ErrUserInfo) {
			c.String(http.StatusBadRequest, "Failed to fetch user info")
			return
		}

		c.String(http.StatusBadRequest, "Failed to get access token")
		return
	}

	if err := middleware.SaveSession(c, d.Sessions, profile); err != nil {
		c.String(http.StatusInternalServerError, "Internal server error")

		zap.L().Error("Failed to save session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	zap.L().Info("User logged in", zap.String("userID", profile.ID), zap.String("requestID", requestID))
	c.Redirect(http.StatusFound, "/dashboard")
}
