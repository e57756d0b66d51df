package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/davitran/clipshare/config"
	"github.com/davitran/clipshare/utils"
)

// AuthorizationService wraps the external identity provider. It answers one
// question per request: which user, if any, does this session token belong
// to. Every failure path reads as "no identity" to the caller.
type AuthorizationService struct {
	ServiceURL string
	secretKey  string
	cache      *RedisClient
	cacheTTL   time.Duration
	httpClient *http.Client
}

func InitAuthorizationService(cfg *config.EnvConfig, cache *RedisClient) *AuthorizationService {
	return &AuthorizationService{
		ServiceURL: cfg.Identity.ServiceURL,
		secretKey:  cfg.JWT.SecretKey,
		cache:      cache,
		cacheTTL:   time.Duration(cfg.Identity.CacheTTL) * time.Second,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// ResolveUser validates the session token against the identity provider and
// returns the user id it belongs to. Verdicts are cached under a token
// digest so hot sessions skip the provider round trip; the cache is
// best-effort and its absence or failure changes nothing but latency.
func (s *AuthorizationService) ResolveUser(ctx context.Context, token string) (string, error) {
	cacheKey := "identity:" + utils.TokenDigest(token)

	if s.cache != nil {
		var userID string
		if err := s.cache.Get(ctx, cacheKey, &userID); err == nil && userID != "" {
			return userID, nil
		}
	}

	if err := s.checkSessionToken(ctx, token); err != nil {
		return "", err
	}

	parsedToken, err := utils.ParseToken(token, s.secretKey)
	if err != nil || !parsedToken.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session token claims")
	}

	userID, err := utils.UserIDFromClaims(claims)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, userID, s.cacheTTL)
	}

	return userID, nil
}

func (s *AuthorizationService) checkSessionToken(ctx context.Context, token string) error {
	url := fmt.Sprintf("%s/api/v1/session/validate", s.ServiceURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("identity provider rejected token: %s", string(raw))
	}

	return nil
}
