package converter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"slot_game/internal/api/dto/user"
	"slot_game/internal/model"

	jsoniter "github.com/json-iterator/go"
)

var ErrInvalidPlayedAt = errors.New("played_at must be null or an ISO-8601 datetime")

// Форматы, которые принимаются в played_at. Без зоны время считается UTC.
var playedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func ToUserDTO(u model.SlotUser) user.User {
	out := user.User{
		UserID:   u.UserID,
		SlotType: string(u.SlotType),
	}
	if u.PlayedAt != nil {
		s := FormatTime(*u.PlayedAt)
		out.PlayedAt = &s
	}
	return out
}

func ToUsersResponse(users []model.SlotUser) user.UsersResponse {
	result := make([]user.User, len(users))
	for i, u := range users {
		result[i] = ToUserDTO(u)
	}
	return user.UsersResponse{Users: result}
}

// ToUserUpdate: отсутствующий played_at не меняется, null или "" сбрасывают его
func ToUserUpdate(req user.UpdateUserRequest) (model.UserUpdate, error) {
	var upd model.UserUpdate

	if req.SlotType != nil && *req.SlotType != "" {
		st := model.SlotType(*req.SlotType)
		upd.SlotType = &st
	}

	if !req.PlayedAt.Set {
		return upd, nil
	}
	upd.PlayedAtSet = true
	raw := bytes.TrimSpace(req.PlayedAt.Raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return upd, nil
	}

	var s string
	if err := jsoniter.Unmarshal(raw, &s); err != nil {
		return upd, ErrInvalidPlayedAt
	}
	if strings.TrimSpace(s) == "" {
		return upd, nil
	}
	t, err := ParsePlayedAt(s)
	if err != nil {
		return upd, err
	}
	upd.PlayedAt = &t
	return upd, nil
}

func ParsePlayedAt(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range playedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPlayedAt, s)
}
