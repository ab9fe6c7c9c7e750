//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"groundio/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "response is not JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that error.message contains expectedErrorMsg.
// It returns the decoded body so callers can inspect detail.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) httperr.Response {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var res httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "error response is not JSON: %s", w.Body.String())

	if expectedErrorMsg != "" {
		assert.Contains(t, res.Error.Message, expectedErrorMsg)
	}
	return res
}

// AssertErrorDetail checks the status and the exact detail string.
func AssertErrorDetail(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedDetail string) {
	t.Helper()

	res := AssertErrorResponse(t, w, expectedStatus, "")
	assert.Equal(t, expectedDetail, res.Detail)
}
