package slotapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"slot_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/api/")
}

func TestSpin_Success(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/spin", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"user_id":"u1"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"result":{"message":"✨ ビッグウィン！ ✨","code":"BW-1-ABCDEF-10","type":"bigWin",
			"symbols":[{"name":"bar","src":"b"},{"name":"bar","src":"b"},{"name":"bell","src":"c"}]}}`)
	})

	res := c.Spin(context.Background(), "u1")
	assert.Equal(t, model.OutcomeBigWin, res.Type)
	assert.Equal(t, "BW-1-ABCDEF-10", res.Code)
	require.Len(t, res.Symbols, 3)
	assert.Equal(t, "bell", res.Symbols[2].Name)
}

func TestSpin_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"already played", http.StatusForbidden,
			`{"message":"You have already played.","result":{"message":"ゲームは終了しました。","code":null,"type":"played"}}`,
			"You have already played."},
		{"error field", http.StatusNotFound, `{"error":"User not found"}`, "User not found"},
		{"empty json", http.StatusInternalServerError, `{}`, MsgSpinFailed},
		{"not json", http.StatusBadGateway, `<html>`, MsgTransportError},
		{"empty body", http.StatusInternalServerError, ``, MsgTransportError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			res := c.Spin(context.Background(), "u1")
			assert.Equal(t, model.RoundResult{Message: tt.want, Type: model.OutcomeError}, res)
		})
	}
}

func TestSpin_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := New(srv.URL)
	srv.Close()

	res := c.Spin(context.Background(), "u1")
	assert.Equal(t, model.RoundResult{Message: MsgTransportError, Type: model.OutcomeError}, res)
}

func TestSpin_MalformedSuccessBody(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})
	res := c.Spin(context.Background(), "u1")
	assert.Equal(t, model.RoundResult{Message: MsgTransportError, Type: model.OutcomeError}, res)
}

func TestHasPlayed(t *testing.T) {
	c := serve(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/played":
			_, _ = io.WriteString(w, `{"user":{"user_id":"played","slot_type":"A","played_at":"2024-05-01T09:30:00Z"}}`)
		case "/api/users/fresh":
			_, _ = io.WriteString(w, `{"user":{"user_id":"fresh","slot_type":"A","played_at":null}}`)
		case "/api/users/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"User not found"}`)
		}
	})
	ctx := context.Background()

	assert.True(t, c.HasPlayed(ctx, "played"))
	assert.False(t, c.HasPlayed(ctx, "fresh"))
	assert.False(t, c.HasPlayed(ctx, "ghost"))
	assert.False(t, c.HasPlayed(ctx, "broken"))
}
