package formclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-edc-backend/internal/domain"
	"go-edc-backend/pkg/formclient"

	"github.com/stretchr/testify/assert"
)

func validSubmission() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Interest: domain.InterestSiteSelection,
		Message:  "Looking to relocate our manufacturing facility to the area.",
	}
}

func countingServer(status int, calls *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(calls, 1)
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"success":true}`))
		} else {
			_, _ = w.Write([]byte(`{"error":"Failed to send message"}`))
		}
	}))
}

func TestSubmitInvalidInputMakesNoNetworkCall(t *testing.T) {
	var calls int64
	server := countingServer(http.StatusOK, &calls)
	defer server.Close()

	c := formclient.New(server.URL + "/api/contact")

	req := validSubmission()
	req.Message = "short"

	err := c.Submit(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, formclient.StateIdle, c.State())
	assert.Equal(t, "Message must be at least 10 characters", c.FieldErrors()["message"])
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func TestSubmitSuccessIsTerminal(t *testing.T) {
	var calls int64
	server := countingServer(http.StatusOK, &calls)
	defer server.Close()

	c := formclient.New(server.URL + "/api/contact")

	err := c.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, formclient.StateSuccess, c.State())
	assert.Empty(t, c.FieldErrors())
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	// No transition out of success: the confirmation view has no retry path.
	err = c.Submit(context.Background(), validSubmission())
	assert.ErrorIs(t, err, formclient.ErrAlreadySubmitted)
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestSubmitServerErrorAllowsResubmission(t *testing.T) {
	var calls int64
	server := countingServer(http.StatusInternalServerError, &calls)
	defer server.Close()

	c := formclient.New(server.URL + "/api/contact")

	err := c.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, formclient.StateError, c.State())
	assert.Equal(t, "Something went wrong. Please try again or email us directly.", c.ErrorMessage())

	// The user edits and tries again; the prior error is cleared.
	err = c.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, formclient.StateError, c.State())
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestSubmitTransportErrorSetsErrorState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	c := formclient.New(server.URL + "/api/contact")

	err := c.Submit(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, formclient.StateError, c.State())
	assert.NotEmpty(t, c.ErrorMessage())
}

func TestSubmitValidationRecoveryThenSuccess(t *testing.T) {
	var calls int64
	server := countingServer(http.StatusOK, &calls)
	defer server.Close()

	c := formclient.New(server.URL + "/api/contact")

	bad := validSubmission()
	bad.Name = "J"
	assert.NoError(t, c.Submit(context.Background(), bad))
	assert.Equal(t, formclient.StateIdle, c.State())
	assert.Contains(t, c.FieldErrors(), "name")

	assert.NoError(t, c.Submit(context.Background(), validSubmission()))
	assert.Equal(t, formclient.StateSuccess, c.State())
	assert.Empty(t, c.FieldErrors())
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}
