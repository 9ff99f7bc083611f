package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// OriginChecker accepts websocket upgrades from the configured origins.
// An empty list or "*" allows any origin.
type OriginChecker struct {
	allowedOrigins []string
}

func NewOriginChecker(allowedOrigins []string) *OriginChecker {
	return &OriginChecker{
		allowedOrigins: lo.FilterMap(allowedOrigins, func(origin string, _ int) (string, bool) {
			origin = strings.TrimRight(strings.TrimSpace(origin), "/")

			return strings.ToLower(origin), origin != ""
		}),
	}
}

func (c *OriginChecker) AllowsAny() bool {
	return len(c.allowedOrigins) == 0 || lo.Contains(c.allowedOrigins, "*")
}

func (c *OriginChecker) Allowed(origin string) bool {
	if c.AllowsAny() {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	return lo.Contains(c.allowedOrigins, strings.ToLower(parsed.Scheme+"://"+parsed.Host))
}

// Check is used as websocket.Upgrader.CheckOrigin. Requests without an
// Origin header do not come from a browser and are let through.
func (c *OriginChecker) Check(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	return c.Allowed(origin)
}
