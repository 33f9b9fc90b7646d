package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"item-catalog/constants"
	"item-catalog/models"
	"item-catalog/repositories"

	"golang.org/x/oauth2"
)

// Identity is the normalized record produced from any provider's profile.
type Identity struct {
	Provider string
	Email    string
	Username string
	Picture  string
	Link     string
	Token    string
}

type IAuthService interface {
	Provider(name string) (*Provider, bool)
	AuthCodeURL(providerName string, state string) (string, error)
	Authenticate(ctx context.Context, providerName string, code string) (*Identity, *models.User, error)
}

type AuthService struct {
	providers  map[string]*Provider
	repository repositories.IUserRepository
	client     *http.Client
}

func NewAuthService(providers map[string]*Provider, repository repositories.IUserRepository) IAuthService {
	return &AuthService{
		providers:  providers,
		repository: repository,
		// Provider outages must fail the login, not hang the request.
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *AuthService) Provider(name string) (*Provider, bool) {
	p, ok := s.providers[name]
	return p, ok
}

func (s *AuthService) AuthCodeURL(providerName string, state string) (string, error) {
	p, ok := s.providers[providerName]
	if !ok {
		return "", ErrNotFound
	}
	return p.Config.AuthCodeURL(state), nil
}

// Authenticate exchanges the callback code for a token, fetches and
// normalizes the profile, and upserts the local user. The session is only
// written by the caller after this returns without error, so a failed
// exchange can never half-populate it.
func (s *AuthService) Authenticate(ctx context.Context, providerName string, code string) (*Identity, *models.User, error) {
	p, ok := s.providers[providerName]
	if !ok {
		return nil, nil, fmt.Errorf("%w: unknown provider %q", ErrAuthExchange, providerName)
	}

	token, err := s.exchange(ctx, p, code)
	if err != nil {
		return nil, nil, err
	}

	profile, err := s.fetchProfile(ctx, p, token)
	if err != nil {
		return nil, nil, err
	}

	identity := normalizeIdentity(p, profile, token)

	user, err := s.repository.FindOrCreate(ctx, models.User{
		Name:    identity.Username,
		Email:   identity.Email,
		Picture: identity.Picture,
	})
	if err != nil {
		return nil, nil, err
	}

	return &identity, user, nil
}

func (s *AuthService) exchange(ctx context.Context, p *Provider, code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty authorization code", ErrAuthExchange)
	}

	if p.TokenViaGet {
		return s.exchangeViaGet(ctx, p, code)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: provider returned no access token", ErrAuthExchange)
	}
	return token.AccessToken, nil
}

// exchangeViaGet retrieves the access token with a GET on the token
// endpoint, the retrieval style facebook uses.
func (s *AuthService) exchangeViaGet(ctx context.Context, p *Provider, code string) (string, error) {
	query := url.Values{}
	query.Set("client_id", p.Config.ClientID)
	query.Set("client_secret", p.Config.ClientSecret)
	query.Set("redirect_uri", p.Config.RedirectURL)
	query.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.Config.Endpoint.TokenURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned %d", ErrAuthExchange, resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: provider returned no access token", ErrAuthExchange)
	}
	return body.AccessToken, nil
}

func (s *AuthService) fetchProfile(ctx context.Context, p *Provider, token string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ProfileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: profile endpoint returned %d", ErrAuthExchange, resp.StatusCode)
	}

	var profile map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthExchange, err)
	}
	return profile, nil
}

// normalizeIdentity applies the provider's field mapping and substitutes the
// documented defaults for anything the profile withholds. A missing or empty
// email becomes {provider}-{id}@users.item-catalog so every login yields a
// usable unique key.
func normalizeIdentity(p *Provider, profile map[string]any, token string) Identity {
	m := p.Mapping

	id := profileString(profile, m.IDField)
	email := profileString(profile, m.EmailField)
	if email == "" {
		email = fmt.Sprintf("%s-%s@%s", p.Name, id, constants.PlaceholderEmailDomain)
	}

	picture := profileString(profile, m.PictureField)
	if picture == "" {
		picture = constants.DefaultPicture
	}

	link := ""
	if m.LinkFormat != "" {
		link = fmt.Sprintf(m.LinkFormat, id)
	} else {
		link = profileString(profile, m.LinkField)
	}
	if link == "" {
		link = constants.DefaultProfileLink
	}

	return Identity{
		Provider: p.Name,
		Email:    email,
		Username: profileString(profile, m.UsernameField),
		Picture:  picture,
		Link:     link,
		Token:    token,
	}
}

// profileString reads a field as a string. Numeric ids are formatted without
// an exponent, and facebook-style nested pictures ({"data":{"url":...}}) are
// unwrapped.
func profileString(profile map[string]any, field string) string {
	if field == "" {
		return ""
	}
	switch v := profile[field].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case map[string]any:
		if data, ok := v["data"].(map[string]any); ok {
			if u, ok := data["url"].(string); ok {
				return u
			}
		}
		return ""
	default:
		return ""
	}
}

// GenerateState produces the per-login anti-forgery token stored in the
// session and verified on the provider callback.
func GenerateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
