package line

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSignature(t *testing.T) {
	body := []byte(`{"events":[]}`)
	sig := Sign("secret", body)

	assert.True(t, ValidateSignature("secret", body, sig))
	assert.False(t, ValidateSignature("other", body, sig))
	assert.False(t, ValidateSignature("secret", []byte(`{}`), sig))
	assert.False(t, ValidateSignature("secret", body, ""))
}

func TestParseWebhook(t *testing.T) {
	body := []byte(`{"destination":"x","events":[
		{"type":"message","replyToken":"rt","source":{"type":"user","userId":"U1"},"message":{"id":"1","type":"text","text":"hi"}},
		{"type":"follow","replyToken":"rt2","source":{"type":"user","userId":"U2"}}
	]}`)

	req, err := ParseWebhook(body)
	require.NoError(t, err)
	require.Len(t, req.Events, 2)
	assert.True(t, req.Events[0].IsText())
	assert.Equal(t, "U1", req.Events[0].Source.UserID)
	assert.Equal(t, "hi", req.Events[0].Message.Text)
	assert.False(t, req.Events[1].IsText())

	_, err = ParseWebhook([]byte(`{`))
	assert.Error(t, err)
}

func TestClientReply(t *testing.T) {
	var (
		gotAuth    string
		gotPayload replyPayload
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = jsoniter.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("token").(*Client)
	c.ReplyURL = srv.URL

	require.NoError(t, c.Reply(context.Background(), "rt", "こんにちは"))
	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "rt", gotPayload.ReplyToken)
	require.Len(t, gotPayload.Messages, 1)
	assert.Equal(t, textMessage{Type: "text", Text: "こんにちは"}, gotPayload.Messages[0])
}

func TestClientReply_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid reply token", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("token").(*Client)
	c.ReplyURL = srv.URL

	err := c.Reply(context.Background(), "rt", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNewClient_NoopWithoutToken(t *testing.T) {
	r := NewClient("  ")
	assert.IsType(t, Noop{}, r)
	assert.NoError(t, r.Reply(context.Background(), "rt", "x"))
}
