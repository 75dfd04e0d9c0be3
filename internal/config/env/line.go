package env

import (
	"os"
	"strings"

	"slot_game/internal/config"
)

const (
	lineAccessTokenEnvName = "LINE_CHANNEL_ACCESS_TOKEN"
	lineSecretEnvName      = "LINE_CHANNEL_SECRET"
	publicBaseURLEnvName   = "PUBLIC_BASE_URL"
)

type lineBotConfig struct {
	accessToken string
	secret      string
	baseURL     string
}

// NewLineBotConfig не требует обязательных значений: без токена ответы не отправляются,
// без секрета подпись вебхука не проверяется
func NewLineBotConfig() config.LineBotConfig {
	return &lineBotConfig{
		accessToken: os.Getenv(lineAccessTokenEnvName),
		secret:      os.Getenv(lineSecretEnvName),
		baseURL:     strings.TrimRight(os.Getenv(publicBaseURLEnvName), "/"),
	}
}

func (c *lineBotConfig) ChannelAccessToken() string { return c.accessToken }
func (c *lineBotConfig) ChannelSecret() string      { return c.secret }
func (c *lineBotConfig) PublicBaseURL() string      { return c.baseURL }
