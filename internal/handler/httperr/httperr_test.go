//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"groundio/internal/handler/httperr"
	"groundio/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "validation", err: errs.Mark(errs.New("bad date"), errs.ErrDomainValidation), status: http.StatusBadRequest, msg: "Invalid request"},
		{name: "wrapped not found", err: errs.Wrap(errs.ErrVenueNotFound, "load venue"), status: http.StatusNotFound, msg: "Venue not found"},
		{name: "slot taken", err: errs.Mark(errs.New("held"), errs.ErrSlotUnavailable), status: http.StatusConflict, msg: "Time slot unavailable"},
		{name: "review not allowed", err: errs.ErrReviewNotAllowed, status: http.StatusUnprocessableEntity, msg: "Booking is not eligible for review"},
		{name: "merchant only", err: errs.ErrMerchantOnly, status: http.StatusForbidden, msg: "Merchant account required"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func abort(t *testing.T, err error) (int, httperr.Response, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithDomainError(c, err)

	var resp httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, c.Errors, 1)
	return rec.Code, resp, raw
}

func TestAbortWithDomainError(t *testing.T) {
	t.Run("hint becomes detail", func(t *testing.T) {
		code, resp, _ := abort(t, errs.WithHint(errs.ErrReviewNotAllowed, "only completed bookings can be reviewed"))
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, "only completed bookings can be reviewed", resp.Detail)
	})

	t.Run("validation exposes the broken rule", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("slot is in the past"), errs.ErrDomainValidation), "submit booking")
		code, resp, _ := abort(t, err)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid request", resp.Error.Message)
		assert.Equal(t, "slot is in the past", resp.Detail)
	})

	t.Run("server errors carry no detail", func(t *testing.T) {
		code, _, raw := abort(t, errs.WithHint(errors.New("pool exhausted"), "db"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.NotContains(t, raw, "detail")
	})
}

func TestAbortWithErrorRequiresError(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusBadRequest, nil, "x", nil) })
}
