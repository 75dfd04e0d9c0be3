package env

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"slot_game/internal/config"
)

const (
	dsnName      = "PG_DSN"
	pgHostName   = "PG_HOST"
	pgPortName   = "PG_PORT"
	pgUserName   = "PG_USER"
	pgPassName   = "PG_PASSWORD"
	pgDBName     = "PG_DATABASE"
	pgSSLName    = "PG_SSLMODE"
	maxConnsName = "PG_MAX_CONNS"

	defaultPGPort = "5432"
	defaultSSL    = "disable"
)

type pgConfig struct {
	dsn      string
	maxConns int32
}

// NewPGConfig берёт PG_DSN, а если его нет - собирает DSN из PG_HOST/PG_USER/PG_DATABASE...
func NewPGConfig() (config.PGConfig, error) {
	dsn := os.Getenv(dsnName)
	if len(dsn) == 0 {
		var err error
		dsn, err = dsnFromParts()
		if err != nil {
			return nil, err
		}
	}

	var maxConns int32
	if v := os.Getenv(maxConnsName); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid %s: %q", maxConnsName, v)
		}
		maxConns = int32(n)
	}

	return &pgConfig{
		dsn:      dsn,
		maxConns: maxConns,
	}, nil
}

func dsnFromParts() (string, error) {
	host := os.Getenv(pgHostName)
	db := os.Getenv(pgDBName)
	if host == "" || db == "" {
		return "", errors.New("pg dsn not found")
	}
	port := os.Getenv(pgPortName)
	if port == "" {
		port = defaultPGPort
	}
	ssl := os.Getenv(pgSSLName)
	if ssl == "" {
		ssl = defaultSSL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv(pgUserName), os.Getenv(pgPassName)),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: url.Values{"sslmode": {ssl}}.Encode(),
	}
	return u.String(), nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// MaxConns - 0 оставляет значение pgxpool по умолчанию
func (cfg *pgConfig) MaxConns() int32 {
	return cfg.maxConns
}
