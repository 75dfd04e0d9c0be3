package line

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const DefaultReplyURL = "https://api.line.me/v2/bot/message/reply"

// Replier отправляет ответ на событие по replyToken
type Replier interface {
	Reply(ctx context.Context, replyToken, text string) error
}

// Noop используется, когда токен канала не задан
type Noop struct{}

func (Noop) Reply(context.Context, string, string) error { return nil }

type Client struct {
	ReplyURL    string
	AccessToken string
	Client      *http.Client
}

func NewClient(accessToken string) Replier {
	if strings.TrimSpace(accessToken) == "" {
		return Noop{}
	}
	return &Client{
		ReplyURL:    DefaultReplyURL,
		AccessToken: accessToken,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyPayload struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []textMessage `json:"messages"`
}

func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	body, err := jsoniter.Marshal(replyPayload{
		ReplyToken: replyToken,
		Messages:   []textMessage{{Type: MessageTypeText, Text: text}},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ReplyURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("line reply: status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
