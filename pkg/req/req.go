package req

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrEmptyBody = errors.New("empty request body")

// Decode читает JSON-тело запроса в значение типа T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, ErrEmptyBody
	}
	err := json.NewDecoder(body).Decode(&payload)
	if errors.Is(err, io.EOF) {
		return payload, ErrEmptyBody
	}
	if err != nil {
		return payload, err
	}
	return payload, nil
}
