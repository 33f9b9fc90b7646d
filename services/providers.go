package services

import (
	"item-catalog/infra"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// Provider describes one OAuth identity provider: where to send the user,
// how to turn a code into a token, and how to read the profile it returns.
// All provider differences live in this table; the login flow itself is
// provider-agnostic.
type Provider struct {
	Name       string
	Config     *oauth2.Config
	ProfileURL string
	// Facebook retrieves the access token with a GET on the token endpoint;
	// the others POST.
	TokenViaGet bool
	Mapping     ProfileMapping
}

// ProfileMapping names the profile fields a provider uses for each part of
// the normalized identity. IDField doubles as the stable key for synthesized
// placeholder emails; GitHub has no exposed numeric id here, so its login
// name serves as the stable key.
type ProfileMapping struct {
	IDField       string
	EmailField    string
	UsernameField string
	PictureField  string
	LinkField     string
	// LinkFormat builds the profile link from the id when the profile
	// carries no link field (facebook).
	LinkFormat string
}

func NewProviderRegistry(cfg *infra.Config) map[string]*Provider {
	callback := func(name string) string {
		return cfg.BaseURL + "/login/" + name + "/authorized"
	}

	return map[string]*Provider{
		"google": {
			Name: "google",
			Config: &oauth2.Config{
				ClientID:     cfg.Google.ID,
				ClientSecret: cfg.Google.Secret,
				Endpoint:     endpoints.Google,
				RedirectURL:  callback("google"),
				Scopes:       []string{"email", "profile"},
			},
			ProfileURL: "https://www.googleapis.com/oauth2/v1/userinfo",
			Mapping: ProfileMapping{
				IDField:       "id",
				EmailField:    "email",
				UsernameField: "name",
				PictureField:  "picture",
				LinkField:     "link",
			},
		},
		"github": {
			Name: "github",
			Config: &oauth2.Config{
				ClientID:     cfg.GitHub.ID,
				ClientSecret: cfg.GitHub.Secret,
				Endpoint:     endpoints.GitHub,
				RedirectURL:  callback("github"),
				Scopes:       []string{"user:email"},
			},
			ProfileURL: "https://api.github.com/user",
			Mapping: ProfileMapping{
				IDField:       "login",
				EmailField:    "email",
				UsernameField: "name",
				PictureField:  "avatar_url",
				LinkField:     "html_url",
			},
		},
		"facebook": {
			Name: "facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.Facebook.ID,
				ClientSecret: cfg.Facebook.Secret,
				Endpoint:     endpoints.Facebook,
				RedirectURL:  callback("facebook"),
				Scopes:       []string{"email"},
			},
			ProfileURL:  "https://graph.facebook.com/me",
			TokenViaGet: true,
			Mapping: ProfileMapping{
				IDField:       "id",
				EmailField:    "email",
				UsernameField: "name",
				PictureField:  "picture",
				LinkFormat:    "https://facebook.com/%s",
			},
		},
	}
}
