//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"yacht-charter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response with the detail decoded as field errors.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail errs.FieldErrors `json:"detail"`
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target
// when target is non-nil.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()
	if !assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains
// expectedMsg. An empty expectedMsg only checks the envelope.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()
	body := decodeError(t, w)
	assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	if expectedMsg != "" {
		assert.Contains(t, body.Error.Message, expectedMsg)
	}
}

// AssertFieldErrors expects a 422 whose detail names exactly the given fields.
func AssertFieldErrors(t *testing.T, w *httptest.ResponseRecorder, fields ...string) {
	t.Helper()
	body := decodeError(t, w)
	assert.Equalf(t, http.StatusUnprocessableEntity, w.Code, "response: %s", w.Body.String())

	got := make([]string, 0, len(body.Detail))
	for _, fe := range body.Detail {
		got = append(got, fe.Field)
	}
	assert.ElementsMatch(t, fields, got)
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String())
	return body
}
