package redeem

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	PrefixJackpot  = "JP"
	PrefixBigWin   = "BW"
	PrefixSmallWin = "SW"

	// Длина случайной части кода
	randomLen = 6
	// Минимальное количество сегментов: префикс, время, случайная часть, чексумма
	minParts = 4

	separator = "-"
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// StampFunc форматирует момент выпуска кода во второй сегмент
type StampFunc func(t time.Time) string

// Base36Millis - миллисекунды unix-времени в base36
func Base36Millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 36)
}

// CompactUTC - UTC-время в виде YYYYMMDDhhmmss
func CompactUTC(t time.Time) string {
	return t.UTC().Format("20060102150405")
}

type Generator struct {
	now   func() time.Time
	intn  func(n int) int
	stamp StampFunc
}

type Option func(*Generator)

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithRand(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

func WithStamp(stamp StampFunc) Option {
	return func(g *Generator) { g.stamp = stamp }
}

// NewGenerator по умолчанию: текущее время, math/rand и base36-миллисекунды
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:   time.Now,
		intn:  rand.Intn,
		stamp: Base36Millis,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate выпускает код вида PREFIX-STAMP-RANDOM-NN.
// Все сегменты, кроме чексуммы, переводятся в верхний регистр.
func (g *Generator) Generate(prefix string) string {
	raw := strings.ToUpper(prefix + separator + g.stamp(g.now()) + separator + g.random())
	return raw + separator + Checksum(raw)
}

func (g *Generator) random() string {
	b := make([]byte, randomLen)
	for i := range b {
		b[i] = alphabet[g.intn(len(alphabet))]
	}
	return string(b)
}

// Checksum - сумма кодов символов по модулю 100, две цифры с ведущим нулём
func Checksum(s string) string {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return fmt.Sprintf("%02d", sum%100)
}

// WellFormed проверяет только количество сегментов
func WellFormed(code string) bool {
	return len(strings.Split(code, separator)) >= minParts
}

// Verify пересчитывает чексумму по всем сегментам кроме последнего.
// Некорректный ввод даёт false.
func Verify(code string) bool {
	parts := strings.Split(code, separator)
	if len(parts) < minParts {
		return false
	}
	last := len(parts) - 1
	return Checksum(strings.Join(parts[:last], separator)) == parts[last]
}
