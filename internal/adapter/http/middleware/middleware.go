package middleware

import (
	"net/http"
	"time"

	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"
	"event-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// Header carrying the caller's tenant identity. Authentication happens
	// upstream (API gateway); this subsystem trusts the header it is handed.
	HeaderTenantID = "X-Tenant-Id"

	// Context keys
	CtxTenantID      = "tenant_id"
	CtxOperatorActor = "operator_actor"

	// Role required for dead-letter admin actions.
	roleOperator = "operator"
)

// TenantContext resolves the caller's tenant id from the request header
// and stores it in the gin context for handlers downstream.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderTenantID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing "+HeaderTenantID+" header"))
			c.Abort()
			return
		}
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("malformed "+HeaderTenantID+" header"))
			c.Abort()
			return
		}
		c.Set(CtxTenantID, tenantID)
		c.Next()
	}
}

// OperatorAuth validates the operator bearer token guarding dead-letter
// actions. The actor from the token is stored in the context so resolution
// records carry who acted.
func OperatorAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}
		if claims.Role != roleOperator {
			log.Warn().
				Str("actor", claims.Actor).
				Str("role", claims.Role).
				Msg("non-operator token on admin route")
			response.Error(c, apperror.ErrOperatorRequired())
			c.Abort()
			return
		}

		c.Set(CtxOperatorActor, claims.Actor)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
