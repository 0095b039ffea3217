package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig returns CORS middleware for the JSON API, restricted to domain when set
func CORSConfig(domain string) echo.MiddlewareFunc {
	if domain == "" {
		// Fallback to localhost for development
		return middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"http://localhost:8080", "http://localhost:3000"},
			AllowMethods: []string{echo.GET, echo.HEAD, echo.OPTIONS},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			MaxAge:       86400, // 24 hours
		})
	}

	allowedOrigins := []string{
		"https://" + domain,
	}

	// Only allow HTTP for explicit non-production domains
	if strings.Contains(domain, "localhost") || strings.Contains(domain, "127.0.0.1") {
		allowedOrigins = append(allowedOrigins, "http://"+domain)
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{echo.GET, echo.HEAD, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400, // 24 hours
	})
}

// ContentSecurityPolicy builds the policy for the gallery pages. Thumbnails come from the
// Drive host, which redirects to googleusercontent.com.
func ContentSecurityPolicy(domain, driveHost string) string {
	frameAncestors := "'self'"
	if domain != "" && !strings.Contains(domain, "localhost") {
		frameAncestors = "https://" + domain
	}
	return strings.Join([]string{
		"default-src 'none'",
		"script-src 'self'",
		"style-src 'self'",
		"img-src 'self' https://" + driveHost + " https://*.googleusercontent.com",
		"base-uri 'none'",
		"form-action 'self'",
		"frame-ancestors " + frameAncestors,
	}, "; ")
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(domain, driveHost string) echo.MiddlewareFunc {
	csp := ContentSecurityPolicy(domain, driveHost)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Content-Security-Policy", csp)
			h.Set("Permissions-Policy",
				"geolocation=(), microphone=(), camera=(), payment=(), usb=(), magnetometer=(), gyroscope=()")

			// HSTS - only for HTTPS requests
			proto := c.Request().Header.Get("X-Forwarded-Proto")
			if proto == "https" || c.Request().TLS != nil {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
			}

			return next(c)
		}
	}
}
