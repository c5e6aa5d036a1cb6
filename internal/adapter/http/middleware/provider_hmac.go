package middleware

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"time"

	"event-relay/internal/core/ports"
	"event-relay/pkg/apperror"
	"event-relay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Headers the provider attaches to inbound pushes.
const (
	HeaderProviderSignature = "X-Provider-Signature"
	HeaderProviderTimestamp = "X-Provider-Timestamp"
)

// ProviderHMAC verifies inbound provider signatures before the ingestion
// gate sees the request. The signature is HMAC-SHA256 over
// "<timestamp>.<body>" with the shared provider secret; the timestamp must
// fall inside the drift window. Rejections are 400s: a provider that
// cannot sign correctly gets no dedup side effects.
func ProviderHMAC(secret string, sigSvc ports.SignatureService, maxDrift time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader(HeaderProviderSignature)
		timestampStr := c.GetHeader(HeaderProviderTimestamp)

		if signature == "" || timestampStr == "" {
			response.Error(c, apperror.ErrInvalidProviderSignature())
			c.Abort()
			return
		}

		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}
		now := time.Now().Unix()
		if math.Abs(float64(now-timestamp)) > maxDrift.Seconds() {
			response.Error(c, apperror.ErrTimestampExpired())
			c.Abort()
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		if !sigSvc.Verify(secret, timestamp, bodyBytes, signature) {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("inbound push with invalid signature rejected")
			response.Error(c, apperror.ErrInvalidProviderSignature())
			c.Abort()
			return
		}

		c.Next()
	}
}
