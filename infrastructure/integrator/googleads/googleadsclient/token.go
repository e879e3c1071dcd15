package googleadsclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken exchanges the configured refresh token for a fresh access
// token. The exchange runs on every spend request; tokens are never cached.
func (c *GoogleAdsClient) GetAccessToken() (string, error) {
	params := url.Values{}
	params.Set("client_id", c.cfg.GoogleAds.ClientID)
	params.Set("client_secret", c.cfg.GoogleAds.ClientSecret)
	params.Set("grant_type", "refresh_token")
	params.Set("refresh_token", c.cfg.GoogleAds.RefreshToken)

	resp, err := c.httpClient.Post(
		c.cfg.GoogleAds.TokenURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return "", errors.Wrap(err, "requesting Google OAuth token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "reading Google OAuth response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("Google OAuth token exchange failed with status %s: %s", resp.Status, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", errors.Wrap(err, "decoding Google OAuth response")
	}

	if token.AccessToken == "" {
		return "", errors.New("Google OAuth response carried an empty access token")
	}

	return token.AccessToken, nil
}
