package middlewares

import "strings"

// RouteClass is the access category of a request path.
type RouteClass int

const (
	// PublicPage paths are reachable without identity and matched exactly.
	PublicPage RouteClass = iota
	// PublicAPI paths are reachable without identity and matched by prefix.
	PublicAPI
	// Protected is the fallthrough for everything else.
	Protected
)

func (c RouteClass) String() string {
	switch c {
	case PublicPage:
		return "public-page"
	case PublicAPI:
		return "public-api"
	default:
		return "protected"
	}
}

// RouteClassifier categorizes request paths against two fixed allow-lists
// enumerated at process start. Classification is pure: no side effects, no
// error conditions, unmatched input always falls through to Protected.
type RouteClassifier struct {
	publicPages       map[string]struct{}
	publicAPIPrefixes []string
}

func NewRouteClassifier(publicPages []string, publicAPIPrefixes []string) *RouteClassifier {
	pages := make(map[string]struct{}, len(publicPages))
	for _, p := range publicPages {
		pages[p] = struct{}{}
	}
	return &RouteClassifier{
		publicPages:       pages,
		publicAPIPrefixes: publicAPIPrefixes,
	}
}

// DefaultRouteClassifier carries the service's allow-lists. The home page is
// nominally public here so signed-out visitors can be bounced by the gate
// rather than the router; the gate special-cases it.
func DefaultRouteClassifier() *RouteClassifier {
	return NewRouteClassifier(
		[]string{"/", "/sign-in", "/sign-up", "/home"},
		[]string{"/api/videos", "/health"},
	)
}

func (rc *RouteClassifier) Classify(path string) RouteClass {
	if _, ok := rc.publicPages[path]; ok {
		return PublicPage
	}
	for _, prefix := range rc.publicAPIPrefixes {
		if strings.HasPrefix(path, prefix) {
			return PublicAPI
		}
	}
	return Protected
}
