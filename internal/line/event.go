package line

import (
	jsoniter "github.com/json-iterator/go"
)

const (
	EventTypeMessage = "message"
	MessageTypeText  = "text"
)

type WebhookRequest struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

type Event struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Source     EventSource  `json:"source"`
	Message    EventMessage `json:"message"`
}

type EventSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type EventMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsText - только текстовые сообщения получают ответ
func (e Event) IsText() bool {
	return e.Type == EventTypeMessage && e.Message.Type == MessageTypeText
}

func ParseWebhook(body []byte) (*WebhookRequest, error) {
	var req WebhookRequest
	if err := jsoniter.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
