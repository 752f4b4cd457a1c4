package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpay/shared/failure"
	"rentpay/transport/http/response"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusAccepted, map[string]string{"transfer_reference": "0xfeed"})

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"data": map[string]any{"transfer_reference": "0xfeed"}}, decode(t, recorder))
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
		kind    string
	}{
		{
			name:    "declined signature",
			err:     fmt.Errorf("%w: wallet closed", failure.ErrUserRejectedSignature),
			code:    http.StatusPaymentRequired,
			message: "user rejected signature: wallet closed",
			kind:    "user_rejected_signature",
		},
		{
			name:    "short balance",
			err:     failure.ErrInsufficientBalance,
			code:    http.StatusPaymentRequired,
			message: "insufficient balance",
			kind:    "insufficient_balance",
		},
		{
			name:    "validation",
			err:     failure.BadRequestFromString("Reason must be at most 500 characters"),
			code:    http.StatusBadRequest,
			message: "Reason must be at most 500 characters",
		},
		{
			name:    "infrastructure error is hidden",
			err:     errors.New("dial tcp 10.0.0.7:5432: connection refused"),
			code:    http.StatusInternalServerError,
			message: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)

			body := decode(t, recorder)
			assert.Equal(t, tt.message, body["error"])

			if tt.kind == "" {
				assert.NotContains(t, body, "code")
			} else {
				assert.Equal(t, tt.kind, body["code"])
			}
		})
	}
}

func TestCannedResponses(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	recorder = httptest.NewRecorder()
	response.WithPreparingShutdown(recorder)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "SERVER PREPARING TO SHUT DOWN", decode(t, recorder)["message"])
}
