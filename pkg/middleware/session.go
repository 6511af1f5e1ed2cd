package middleware

import (
	"net/http"

	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/PowerNightVS/discord-web/pkg/security"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionCookie = "session"
	profileKey    = "profile"
)

// RequireSession lets the request through only with a valid session cookie,
// otherwise the browser is sent to loginPath
func RequireSession(s *security.Sessions, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		p, err := s.Parse(token)
		if err != nil {
			zap.L().Debug("Rejected session cookie", zap.Error(err), zap.String("requestID", c.GetString("requestID")))

			ClearSession(c, s)
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(profileKey, p)
		c.Set("userID", p.ID)
		c.Next()
	}
}

// Profile returns the profile stored by RequireSession
func Profile(c *gin.Context) *model.Profile {
	p, _ := c.MustGet(profileKey).(*model.Profile)
	return p
}

// SaveSession issues a session token for p and stores it in the cookie
func SaveSession(c *gin.Context, s *security.Sessions, p *model.Profile) error {
	token, err := s.Issue(p)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(s.MaxAge().Seconds()), "/", "", s.Secure(), true)
	return nil
}

func ClearSession(c *gin.Context, s *security.Sessions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", s.Secure(), true)
}
