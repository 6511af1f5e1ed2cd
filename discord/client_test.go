package discord_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/PowerNightVS/discord-web/discord"
	"github.com/PowerNightVS/discord-web/discord/discordtest"
	"github.com/PowerNightVS/discord-web/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, botToken string) (*discord.Client, *discordtest.Server) {
	t.Helper()

	fake := discordtest.NewServer()
	t.Cleanup(fake.Close)

	c := discord.New(discord.Config{
		ClientID:     "123",
		ClientSecret: "shh",
		RedirectURI:  "http://localhost:8080/callback",
		Scopes:       []string{"identify", "guilds"},
		BotToken:     botToken,
		APIBase:      fake.URL + "/",
		Timeout:      2 * time.Second,
	})

	return c, fake
}

func TestAuthURL(t *testing.T) {
	c, fake := newClient(t, "")

	u, err := url.Parse(c.AuthURL())
	require.NoError(t, err)

	assert.Equal(t, fake.URL+"/oauth2/authorize", u.Scheme+"://"+u.Host+u.Path)

	q := u.Query()
	assert.Equal(t, "123", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "identify guilds", q.Get("scope"))
	assert.False(t, q.Has("state"))
}

func TestInviteLink(t *testing.T) {
	c, _ := newClient(t, "")

	u, err := url.Parse(c.InviteLink())
	require.NoError(t, err)

	assert.Equal(t, "discord.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)
	assert.Equal(t, "123", u.Query().Get("client_id"))
	assert.Equal(t, "bot applications.commands", u.Query().Get("scope"))
	assert.Equal(t, "8", u.Query().Get("permissions"))
}

func TestAuthenticate_Success(t *testing.T) {
	c, fake := newClient(t, "")

	p, err := c.Authenticate(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, "80351110224678912", p.ID)
	assert.Equal(t, "nelly", p.Username)

	form := fake.TokenForm()
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.Equal(t, "good-code", form.Get("code"))
	assert.Equal(t, "123", form.Get("client_id"))
	assert.Equal(t, "shh", form.Get("client_secret"))
	assert.Equal(t, "http://localhost:8080/callback", form.Get("redirect_uri"))
}

func TestAuthenticate_TokenEndpointRejects(t *testing.T) {
	c, fake := newClient(t, "")
	fake.Set(func(s *discordtest.Server) { s.TokenStatus = http.StatusBadRequest })

	_, err := c.Authenticate(context.Background(), "bad-code")

	var sErr *discord.StatusError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusBadRequest, sErr.StatusCode)
	assert.NotErrorIs(t, err, discord.ErrUserInfo)
}

func TestAuthenticate_MissingAccessToken(t *testing.T) {
	c, fake := newClient(t, "")
	fake.Set(func(s *discordtest.Server) { s.OmitToken = true })

	_, err := c.Authenticate(context.Background(), "code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")
	assert.NotErrorIs(t, err, discord.ErrUserInfo)
}

func TestAuthenticate_UserEndpointFails(t *testing.T) {
	c, fake := newClient(t, "")
	fake.Set(func(s *discordtest.Server) { s.UserStatus = http.StatusInternalServerError })

	_, err := c.Authenticate(context.Background(), "code")

	assert.ErrorIs(t, err, discord.ErrUserInfo)

	var sErr *discord.StatusError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, "/users/@me", sErr.Endpoint)
	assert.Equal(t, http.StatusInternalServerError, sErr.StatusCode)
}

func TestAuthenticate_IncompleteProfile(t *testing.T) {
	c, fake := newClient(t, "")
	fake.Set(func(s *discordtest.Server) { s.User = model.Profile{Username: "no-id"} })

	_, err := c.Authenticate(context.Background(), "code")
	assert.ErrorIs(t, err, discord.ErrUserInfo)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestBotGuilds(t *testing.T) {
	c, fake := newClient(t, discordtest.BotToken)

	members := 42
	fake.Set(func(s *discordtest.Server) {
		s.Guilds = []model.Guild{
			{ID: "1", Name: "Lounge", Icon: "abc", ApproximateMemberCount: &members, Description: "chill"},
			{ID: "2", Name: "Quiet"},
		}
	})

	guilds, err := c.BotGuilds(context.Background())
	require.NoError(t, err)
	require.Len(t, guilds, 2)

	assert.Equal(t, "Bot "+discordtest.BotToken, fake.GuildAuth())
	assert.Equal(t, "42", guilds[0].MemberCount())
	assert.Equal(t, "chill", guilds[0].Description)
	assert.Equal(t, "Unknown", guilds[1].MemberCount())
	assert.Equal(t, model.DefaultGuildIcon, guilds[1].IconURL())
}

func TestBotGuilds_Non200(t *testing.T) {
	c, fake := newClient(t, discordtest.BotToken)
	fake.Set(func(s *discordtest.Server) { s.GuildStatus = http.StatusServiceUnavailable })

	_, err := c.BotGuilds(context.Background())

	var sErr *discord.StatusError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusServiceUnavailable, sErr.StatusCode)
}

func TestBotGuilds_NoToken(t *testing.T) {
	c, fake := newClient(t, "")

	assert.False(t, c.HasBotToken())

	_, err := c.BotGuilds(context.Background())
	assert.ErrorIs(t, err, discord.ErrNoBotToken)
	assert.Zero(t, fake.GuildCalls())
}
