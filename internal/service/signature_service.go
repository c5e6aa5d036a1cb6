package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
// The digest is computed over "<timestamp>.<payload>" so a signature binds
// both content and time, letting receivers reject replayed deliveries.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 over timestamp and payload using secret.
// Returns lowercase hex-encoded signature. Deterministic: identical inputs
// always produce the identical signature.
func (s *HMACSignatureService) Sign(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against HMAC-SHA256(secret, timestamp.payload).
// Uses constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(secret string, timestamp int64, payload []byte, signature string) bool {
	expected := s.Sign(secret, timestamp, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
