package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/PowerNightVS/discord-web/internal/model"
	"golang.org/x/oauth2"
)

// ErrUserInfo wraps every failure after the token exchange succeeded
var ErrUserInfo = errors.New("user info fetch failed")

// AuthURL is where the browser is sent to approve the login. No state
// parameter is attached.
func (c *Client) AuthURL() string {
	return c.oauth.AuthCodeURL("")
}

// Exchange trades an authorization code for an access token
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			return nil, &StatusError{Endpoint: "/oauth2/token", StatusCode: rErr.Response.StatusCode}
		}

		return nil, fmt.Errorf("token exchange failed, %w", err)
	}

	return tok, nil
}

// FetchProfile returns the user the token belongs to
func (c *Client) FetchProfile(ctx context.Context, tok *oauth2.Token) (*model.Profile, error) {
	var p model.Profile

	err := c.getJSON(ctx, "/users/@me", tok.SetAuthHeader, &p)
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile, %w", err)
	}

	return &p, nil
}

// Authenticate runs the whole callback side of the code flow
func (c *Client) Authenticate(ctx context.Context, code string) (*model.Profile, error) {
	tok, err := c.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	p, err := c.FetchProfile(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("%w, %w", ErrUserInfo, err)
	}

	return p, nil
}
