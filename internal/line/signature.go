package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader - заголовок с подписью тела вебхука
const SignatureHeader = "X-Line-Signature"

// Sign - base64(HMAC-SHA256(secret, body))
func Sign(secret string, body []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// ValidateSignature сравнивает подпись за постоянное время
func ValidateSignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}
