package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// CatalogPathPrefix is the only route family shared caches may keep
const CatalogPathPrefix = "/api/v1/categories"

// HeaderConfig tunes the response headers set by SecurityHeaders
type HeaderConfig struct {
	// HSTSMaxAge is advertised in Strict-Transport-Security; zero omits it
	HSTSMaxAge time.Duration
	// CatalogMaxAge lets anonymous catalogue reads be cached; zero marks every
	// response private
	CatalogMaxAge time.Duration
}

// SecurityHeaders hardens JSON responses. A response is cacheable only when it
// is an anonymous GET under the catalogue routes; anything that names a
// shopper is private and varies on the shopper header.
func SecurityHeaders(cfg HeaderConfig) echo.MiddlewareFunc {
	var hsts, shared string
	if cfg.HSTSMaxAge > 0 {
		hsts = fmt.Sprintf("max-age=%d; includeSubDomains", int64(cfg.HSTSMaxAge.Seconds()))
	}
	if cfg.CatalogMaxAge > 0 {
		shared = fmt.Sprintf("public, max-age=%d", int64(cfg.CatalogMaxAge.Seconds()))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderXContentTypeOptions, "nosniff")
			h.Set(echo.HeaderXFrameOptions, "DENY")
			// the API never serves documents, so nothing may load from it
			h.Set(echo.HeaderContentSecurityPolicy, "default-src 'none'; frame-ancestors 'none'")
			h.Set(echo.HeaderReferrerPolicy, "no-referrer")
			if hsts != "" {
				h.Set(echo.HeaderStrictTransportSecurity, hsts)
			}

			h.Add(echo.HeaderVary, UserIDHeader)
			if shared != "" && cacheable(c.Request()) {
				h.Set(echo.HeaderCacheControl, shared)
			} else {
				h.Set(echo.HeaderCacheControl, "private, no-store")
			}

			return next(c)
		}
	}
}

func cacheable(r *http.Request) bool {
	if r.Method != http.MethodGet || strings.TrimSpace(r.Header.Get(UserIDHeader)) != "" {
		return false
	}
	return r.URL.Path == CatalogPathPrefix || strings.HasPrefix(r.URL.Path, CatalogPathPrefix+"/")
}
