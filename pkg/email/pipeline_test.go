package email

// Full-pipeline tests: a real router, usecase, and mailer wired together,
// with only the Resend endpoint faked. Lives in this package so the service
// can be pointed at the test server.

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go-edc-backend/config"
	v1 "go-edc-backend/internal/delivery/http/v1"
	"go-edc-backend/internal/usecase"
	"go-edc-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pipelineRouter(mailer *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(mailer),
		Validator: validation.NewContactValidator(),
		Config: &config.Config{
			ContactRateLimit:         1000,
			ContactRateWindowSeconds: 60,
		},
	})
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const janePayload = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"interest": "site-selection",
	"message": "Looking to relocate our manufacturing facility to the area."
}`

func TestPipelineDeliversEmail(t *testing.T) {
	var sends int64
	var subject string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&sends, 1)
		var req struct {
			Subject string `json:"subject"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)
		subject = req.Subject
		w.WriteHeader(http.StatusOK)
	}))
	defer provider.Close()

	mailer := &Service{
		apiKey:  "re_test_key",
		from:    "Watauga EDC Website <noreply@wataugaedc.org>",
		to:      "info@wataugaedc.org",
		baseURL: provider.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}

	w := postJSON(pipelineRouter(mailer), janePayload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, int64(1), atomic.LoadInt64(&sends))
	assert.Equal(t, "[EDC Contact] Site Selection — Jane Doe", subject)
}

func TestPipelineUnconfiguredMailerStillSucceeds(t *testing.T) {
	var sends int64
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&sends, 1)
	}))
	defer provider.Close()

	mailer := &Service{
		apiKey:  "", // no credential
		from:    "Watauga EDC Website <noreply@wataugaedc.org>",
		to:      "info@wataugaedc.org",
		baseURL: provider.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}

	w := postJSON(pipelineRouter(mailer), janePayload)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, int64(0), atomic.LoadInt64(&sends))
}

func TestPipelineProviderFailureReturnsGenericError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"domain not verified: wataugaedc.org"}`))
	}))
	defer provider.Close()

	mailer := &Service{
		apiKey:  "re_test_key",
		from:    "Watauga EDC Website <noreply@wataugaedc.org>",
		to:      "info@wataugaedc.org",
		baseURL: provider.URL,
		client:  &http.Client{Timeout: 2 * time.Second},
	}

	w := postJSON(pipelineRouter(mailer), janePayload)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send email"}`, w.Body.String())
	// The provider's raw error body never reaches the client.
	assert.NotContains(t, w.Body.String(), "domain not verified")
}
