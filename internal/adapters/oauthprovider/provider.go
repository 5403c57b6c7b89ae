// Package oauthprovider implements the external identity provider adapters.
// Each provider runs the standard authorization-code flow via golang.org/x/oauth2
// and resolves the (provider, externalID, displayName) triple the core needs.
package oauthprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/newskeeper/newskeeper_backend/internal/apperrors"
)

func exchangeCode(ctx context.Context, cfg *oauth2.Config, code string) (*oauth2.Token, error) {
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w: %w", apperrors.ErrUpstream, err)
	}
	return token, nil
}

// fetchProfile GETs a provider profile endpoint with the token-bearing client
// and decodes the JSON body into out.
func fetchProfile(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, profileURL string, out any) error {
	client := cfg.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("profile request failed: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("profile endpoint returned %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode profile response: %w: %w", apperrors.ErrUpstream, err)
	}
	return nil
}
