package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davitran/clipshare/utils"
)

const (
	HomePath   = "/home"
	SignInPath = "/sign-in"
)

// IdentityResolver maps a session token to a user id. Implemented by
// infra.AuthorizationService; faked in tests.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

// GateDecision is the outcome of the access gate for one request.
type GateDecision int

const (
	Allow GateDecision = iota
	RedirectSignIn
	RedirectHome
)

// Decide applies the gate's decision table in order, first match wins:
//  1. signed-in users are bounced off public pages back to home, except on
//     home itself (exact-path check, otherwise home would redirect-loop);
//  2. signed-out users are bounced off protected routes to sign-in;
//  3. signed-out API requests outside the public API list go to sign-in too.
//
// Pure function of its inputs, safe under arbitrary concurrency.
func Decide(identityPresent bool, class RouteClass, path string) GateDecision {
	if identityPresent && class == PublicPage && path != HomePath {
		return RedirectHome
	}
	if !identityPresent {
		if class == Protected {
			return RedirectSignIn
		}
		if strings.HasPrefix(path, "/api") && class != PublicAPI {
			return RedirectSignIn
		}
	}
	return Allow
}

// AccessGate is the mandatory per-request authorization gate. It resolves the
// caller's identity, classifies the path, and either passes the request
// through (injecting user_id for handlers) or redirects. An identity lookup
// failure is treated as identity absent.
func AccessGate(resolver IdentityResolver, classifier *RouteClassifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userID := ""
		if token := utils.ExtractToken(c); token != "" {
			if id, err := resolver.ResolveUser(ctx, token); err == nil {
				userID = id
			}
		}

		path := c.Request.URL.Path
		switch Decide(userID != "", classifier.Classify(path), path) {
		case RedirectHome:
			c.Redirect(http.StatusTemporaryRedirect, HomePath)
			c.Abort()
		case RedirectSignIn:
			c.Redirect(http.StatusTemporaryRedirect, SignInPath)
			c.Abort()
		default:
			if userID != "" {
				c.Set("user_id", userID)
			}
			c.Next()
		}
	}
}
