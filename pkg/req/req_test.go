package req

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	UserID string `json:"user_id"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"user_id":"u1"}`))
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode[payload](strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = Decode[payload](nil)
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode[payload](strings.NewReader(`{"user_id":`))
	assert.Error(t, err)
}
