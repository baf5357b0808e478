package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JLSed/ShoeFreak-Seller/internal/auth"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ctxAccountID = "accountID"
	ctxSessionID = "sessionID"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}

// SellerRequired resolves the bearer token through the seller gate.
// Anything but AUTHENTICATED_SELLER gets a 401; the gate has already
// torn the session down by then.
func SellerRequired(gate *auth.Gate, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ParseSessionToken(token, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		state, accountID := gate.Check(c.Request.Context(), claims.SessionID)
		if state != auth.StateAuthenticatedSeller {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ctxAccountID, accountID)
		c.Set(ctxSessionID, claims.SessionID)
		c.Next()
	}
}

// PublicOnly rejects requests that already carry a live seller session.
// Mirrors the login/signup screens redirecting away for signed-in
// sellers.
func PublicOnly(gate *auth.Gate, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if claims, err := auth.ParseSessionToken(token, jwtSecret); err == nil {
				if state, _ := gate.Check(c.Request.Context(), claims.SessionID); state == auth.StateAuthenticatedSeller {
					c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Already signed in"})
					return
				}
			}
		}
		c.Next()
	}
}

func currentAccountID(c *gin.Context) string {
	return c.GetString(ctxAccountID)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
