//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	t.Run("encode then decode keeps microseconds", func(t *testing.T) {
		gotAt, gotID, err := DecodeAfterCursor(EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.True(t, at.Equal(gotAt))
		assert.Equal(t, id, gotID)
	})

	t.Run("nil cursor is the first page", func(t *testing.T) {
		var c *Cursor
		k, err := c.Keyset()
		require.NoError(t, err)
		assert.Nil(t, k)
	})

	bad := []string{
		"",
		"%%%",
		base64.URLEncoding.EncodeToString([]byte("v2:1-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:notanumber-" + id.String())),
		base64.URLEncoding.EncodeToString([]byte("v1:123")),
	}
	for _, s := range bad {
		_, _, err := DecodeAfterCursor(s)
		assert.Error(t, err, "cursor %q", s)
	}

	_, err := (&Cursor{After: "%%%"}).Keyset()
	assert.ErrorIs(t, err, ErrInvalidCursor)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-3))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
