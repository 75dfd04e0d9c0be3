package model

import (
	"time"
)

type SlotType string

const (
	SlotTypeA SlotType = "A" // высокая вероятность выигрыша
	SlotTypeB SlotType = "B" // низкая вероятность выигрыша
)

func (t SlotType) Valid() bool {
	return t == SlotTypeA || t == SlotTypeB
}

type SlotUser struct {
	ID        int
	UserID    string
	SlotType  SlotType
	PlayedAt  *time.Time
	CreatedAt time.Time
}

func (u *SlotUser) HasPlayed() bool {
	return u.PlayedAt != nil
}

// UserUpdate - частичное обновление пользователя.
// PlayedAtSet отличает отсутствующее поле от явного null.
type UserUpdate struct {
	SlotType    *SlotType
	PlayedAtSet bool
	PlayedAt    *time.Time
}
