package model

import "time"

type WinRecord struct {
	ID        int
	UserID    string
	WinType   Outcome
	Code      string // пусто для проигрыша
	Timestamp time.Time
}

type CodeVerification struct {
	Valid   bool
	Message string
	WinType Outcome
}
