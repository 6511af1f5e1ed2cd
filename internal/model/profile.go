// Package model defines the records passed between Discord, the session
// cookie, the templates and the database
package model

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Profile is the subset of Discord's /users/@me response kept in the session
type Profile struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	GlobalName    string `json:"global_name,omitempty"`
	Discriminator string `json:"discriminator,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Email         string `json:"email,omitempty"` // Only present with the email scope
	Locale        string `json:"locale,omitempty"`
}

// Validate makes sure Discord returned enough to identify the user
func (p *Profile) Validate() error {
	if p.ID == "" {
		return errors.New("profile has no id")
	}

	if p.Username == "" {
		return errors.New("profile has no username")
	}

	return nil
}

// DisplayName prefers the newer global display name over the unique username
func (p *Profile) DisplayName() string {
	if p.GlobalName != "" {
		return p.GlobalName
	}

	return p.Username
}

// AvatarURL returns the CDN URL of the user's avatar or an empty string
// if they never uploaded one
func (p *Profile) AvatarURL() string {
	if p.Avatar == "" {
		return ""
	}

	return discordgo.EndpointUserAvatar(p.ID, p.Avatar)
}
