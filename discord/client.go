// Package discord talks to Discord's REST API: the OAuth2 code flow for
// users and the bot-authenticated guild list
package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/oauth2"
)

var ErrNoBotToken = errors.New("no bot token configured")

// StatusError is returned when Discord answers with an unexpected status code
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discord %s returned status %d", e.Endpoint, e.StatusCode)
}

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
	BotToken     string
	APIBase      string // Without trailing slash, e.g. https://discord.com/api
	Timeout      time.Duration
}

type Client struct {
	oauth    *oauth2.Config
	http     *http.Client
	apiBase  string
	clientID string
	botToken string
}

func New(cfg Config) *Client {
	base := strings.TrimRight(cfg.APIBase, "/")

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + "/oauth2/authorize",
				TokenURL:  base + "/oauth2/token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		http:     &http.Client{Timeout: cfg.Timeout},
		apiBase:  base,
		clientID: cfg.ClientID,
		botToken: cfg.BotToken,
	}
}

// HasBotToken reports whether server-to-server calls can be made
func (c *Client) HasBotToken() bool {
	return c.botToken != ""
}

// InviteLink returns the URL used to add the bot to a server
func (c *Client) InviteLink() string {
	v := url.Values{}
	v.Set("client_id", c.clientID)
	v.Set("scope", "bot applications.commands")
	v.Set("permissions", strconv.FormatInt(int64(discordgo.PermissionAdministrator), 10))

	return discordgo.EndpointDiscord + "oauth2/authorize?" + v.Encode()
}

func (c *Client) getJSON(ctx context.Context, endpoint string, setAuth func(*http.Request), out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request, %w", err)
	}

	setAuth(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response, %w", endpoint, err)
	}

	return nil
}
