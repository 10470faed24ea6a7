package middleware

import (
	"strings"

	"go-studio-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the Next.js frontend can reach the API.
//
// SECURITY: strict about allowed origins:
// - Production: only the configured frontend domain (and its www variant)
// - Development: localhost origins
// - Vercel previews: only brightforge-* prefixed subdomains
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	isProduction := cfg.IsProduction()

	productionOrigins := map[string]bool{
		cfg.FrontendURL:                     true,
		"https://www.brightforgestudio.com": true,
		"https://brightforgestudio.com":     true,
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:3001": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		if productionOrigins[origin] {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Vercel preview deployments, with strict subdomain validation so
		// malicious-brightforge.vercel.app style origins stay blocked.
		if !isAllowed && strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".vercel.app")
			if strings.HasPrefix(subdomain, "brightforge") {
				isAllowed = true
			}
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
