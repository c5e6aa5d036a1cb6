package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"event-relay/internal/core/ports"
	"event-relay/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- TenantContext ---

func TestTenantContext_MissingHeader(t *testing.T) {
	router := gin.New()
	router.GET("/test", TenantContext(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantContext_MalformedHeader(t *testing.T) {
	router := gin.New()
	router.GET("/test", TenantContext(), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderTenantID, "not-a-uuid")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTenantContext_Valid(t *testing.T) {
	tenantID := uuid.New()

	router := gin.New()
	router.GET("/test", TenantContext(), func(c *gin.Context) {
		got, ok := c.Get(CtxTenantID)
		require.True(t, ok)
		assert.Equal(t, tenantID, got.(uuid.UUID))
		c.JSON(200, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderTenantID, tenantID.String())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- OperatorAuth ---

func setupOperatorRouter(tokenSvc ports.TokenService) *gin.Engine {
	router := gin.New()
	router.GET("/admin", OperatorAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		actor, _ := c.Get(CtxOperatorActor)
		c.JSON(200, gin.H{"actor": actor})
	})
	return router
}

func TestOperatorAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := setupOperatorRouter(mocks.NewMockTokenService(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestOperatorAuth_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("token is expired"))

	router := setupOperatorRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "SEC_003", errorCode(t, w))
}

func TestOperatorAuth_WrongRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("viewer-token").Return(&ports.TokenClaims{
		Actor: "bob",
		Role:  "viewer",
	}, nil)

	router := setupOperatorRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SEC_004", errorCode(t, w))
}

func TestOperatorAuth_ValidOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	tokenSvc.EXPECT().Validate("op-token").Return(&ports.TokenClaims{
		Actor: "alice",
		Role:  "operator",
	}, nil)

	router := setupOperatorRouter(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer op-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["actor"])
}

// --- ProviderHMAC ---

const testProviderSecret = "provider_shared_secret"

func setupProviderRouter(sigSvc ports.SignatureService) *gin.Engine {
	router := gin.New()
	router.POST("/inbound", ProviderHMAC(testProviderSecret, sigSvc, 5*time.Minute, zerolog.Nop()), func(c *gin.Context) {
		// The middleware must leave the body readable for the handler.
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(500, err.Error())
			return
		}
		c.String(200, string(b))
	})
	return router
}

func TestProviderHMAC_MissingHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := setupProviderRouter(mocks.NewMockSignatureService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/inbound", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))
}

func TestProviderHMAC_StaleTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := setupProviderRouter(mocks.NewMockSignatureService(ctrl))

	stale := time.Now().Add(-10 * time.Minute).Unix()
	req := httptest.NewRequest(http.MethodPost, "/inbound", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(HeaderProviderSignature, "sig")
	req.Header.Set(HeaderProviderTimestamp, strconv.FormatInt(stale, 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SEC_002", errorCode(t, w))
}

func TestProviderHMAC_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte(`{"id":"evt_1"}`)
	ts := time.Now().Unix()

	sigSvc := mocks.NewMockSignatureService(ctrl)
	sigSvc.EXPECT().Verify(testProviderSecret, ts, body, "forged").Return(false)

	router := setupProviderRouter(sigSvc)

	req := httptest.NewRequest(http.MethodPost, "/inbound", bytes.NewReader(body))
	req.Header.Set(HeaderProviderSignature, "forged")
	req.Header.Set(HeaderProviderTimestamp, strconv.FormatInt(ts, 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SEC_001", errorCode(t, w))
}

func TestProviderHMAC_ValidSignaturePassesBodyThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := []byte(`{"id":"evt_1"}`)
	ts := time.Now().Unix()

	sigSvc := mocks.NewMockSignatureService(ctrl)
	sigSvc.EXPECT().Verify(testProviderSecret, ts, body, "valid-sig").Return(true)

	router := setupProviderRouter(sigSvc)

	req := httptest.NewRequest(http.MethodPost, "/inbound", bytes.NewReader(body))
	req.Header.Set(HeaderProviderSignature, "valid-sig")
	req.Header.Set(HeaderProviderTimestamp, strconv.FormatInt(ts, 10))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(body), w.Body.String())
}
