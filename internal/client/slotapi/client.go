package slotapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	slotdto "slot_game/internal/api/dto/slot"
	userdto "slot_game/internal/api/dto/user"
	"slot_game/internal/converter"
	"slot_game/internal/model"
	"slot_game/pkg/logger"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

const (
	MsgTransportError = "通信エラーが発生しました。"
	MsgSpinFailed     = "スピンに失敗しました。"
)

// Client - клиент сетевого варианта. Ошибки не возвращаются наружу:
// Spin отдаёт результат с типом error, HasPlayed считает пользователя не игравшим.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// New - baseURL вида http://host:5000/api
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Spin(ctx context.Context, userID string) model.RoundResult {
	body, err := jsoniter.Marshal(slotdto.SpinRequest{UserID: userID})
	if err != nil {
		return errorResult(MsgTransportError)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/spin", bytes.NewReader(body))
	if err != nil {
		return errorResult(MsgTransportError)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Warn("slotapi: spin request", zap.String("user_id", userID), zap.Error(err))
		return errorResult(MsgTransportError)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorResult(MsgTransportError)
	}

	// Пустое тело или не-JSON считается сбоем связи при любом статусе
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Warn("slotapi: empty spin response", zap.Int("status", resp.StatusCode))
		return errorResult(MsgTransportError)
	}
	var payload slotdto.SpinResponse
	if err = jsoniter.Unmarshal(data, &payload); err != nil {
		logger.Warn("slotapi: decode spin response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return errorResult(MsgTransportError)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := MsgSpinFailed
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
		return errorResult(msg)
	}

	return converter.ToRoundResult(payload.Result)
}

// HasPlayed - true, только если сервер вернул пользователя с непустым played_at
func (c *Client) HasPlayed(ctx context.Context, userID string) bool {
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(userID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		logger.Warn("slotapi: user status", zap.String("user_id", userID), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var payload userdto.UserResponse
	if err = jsoniter.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return false
	}
	return payload.User.PlayedAt != nil
}

func (c *Client) httpClient() *http.Client {
	if c.Client == nil {
		return &http.Client{Timeout: 10 * time.Second}
	}
	return c.Client
}

func errorResult(msg string) model.RoundResult {
	return model.RoundResult{
		Message: msg,
		Type:    model.OutcomeError,
	}
}
