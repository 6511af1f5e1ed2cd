// Package discordtest provides a fake Discord REST API for tests
package discordtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/PowerNightVS/discord-web/internal/model"
)

const (
	AccessToken = "test-access-token"
	BotToken    = "test-bot-token"
)

// Server answers the token, user and guild endpoints. Status fields
// default to 200 and can be changed before each request.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	TokenStatus int
	OmitToken   bool
	UserStatus  int
	User        model.Profile
	GuildStatus int
	Guilds      []model.Guild

	lastTokenForm url.Values
	lastGuildAuth string
	tokenCalls    int
	guildCalls    int
}

func NewServer() *Server {
	s := &Server{
		TokenStatus: http.StatusOK,
		UserStatus:  http.StatusOK,
		GuildStatus: http.StatusOK,
		User:        model.Profile{ID: "80351110224678912", Username: "nelly", GlobalName: "Nelly"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", method(http.MethodPost, s.token))
	mux.HandleFunc("/users/@me", method(http.MethodGet, s.me))
	mux.HandleFunc("/users/@me/guilds", method(http.MethodGet, s.guilds))

	s.Server = httptest.NewServer(mux)
	return s
}

// method restricts h to one HTTP method, mirroring Go 1.22
// "METHOD /path" mux patterns (GET also accepts HEAD).
func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m && !(m == http.MethodGet && r.Method == http.MethodHead) {
			w.Header().Set("Allow", m)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokenCalls++
	r.ParseForm()
	s.lastTokenForm = r.PostForm

	if s.TokenStatus != http.StatusOK {
		writeJSON(w, s.TokenStatus, map[string]string{"error": "invalid_grant"})
		return
	}

	body := map[string]any{
		"token_type": "Bearer",
		"expires_in": 604800,
		"scope":      "identify guilds",
	}
	if !s.OmitToken {
		body["access_token"] = AccessToken
	}

	writeJSON(w, http.StatusOK, body)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+AccessToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "401: Unauthorized"})
		return
	}

	if s.UserStatus != http.StatusOK {
		writeJSON(w, s.UserStatus, map[string]string{"message": "error"})
		return
	}

	writeJSON(w, http.StatusOK, s.User)
}

func (s *Server) guilds(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.guildCalls++
	s.lastGuildAuth = r.Header.Get("Authorization")

	if s.lastGuildAuth != "Bot "+BotToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "401: Unauthorized"})
		return
	}

	if s.GuildStatus != http.StatusOK {
		writeJSON(w, s.GuildStatus, map[string]string{"message": "error"})
		return
	}

	guilds := s.Guilds
	if guilds == nil {
		guilds = []model.Guild{}
	}

	writeJSON(w, http.StatusOK, guilds)
}

// Set changes the fake's state while holding its lock
func (s *Server) Set(fn func(s *Server)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s)
}

// TokenForm returns the form of the last token request
func (s *Server) TokenForm() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastTokenForm
}

// GuildAuth returns the Authorization header of the last guild request
func (s *Server) GuildAuth() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastGuildAuth
}

func (s *Server) TokenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tokenCalls
}

func (s *Server) GuildCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.guildCalls
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
