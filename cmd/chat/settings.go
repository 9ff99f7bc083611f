package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Settings struct {
	Port            int           `env:"PORT,default=8000"`
	BasePath        string        `env:"BASE_PATH,default=/chat"`
	JWTSecret       string        `env:"JWT_SECRET,required=true"`
	APIKeys         string        `env:"API_KEYS"`
	MongoDBURI      string        `env:"MONGODB_URI,default=mongodb://localhost:27017"`
	MongoDBDatabase string        `env:"MONGODB_DATABASE,default=chat"`
	LogEncoding     string        `env:"LOG_ENCODING,default=console"`
	LogLevel        string        `env:"LOG_LEVEL,default=info"`
	AllowedOrigins  string        `env:"ALLOWED_ORIGINS"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,default=64"`
	ReadLimit       int64         `env:"READ_LIMIT,default=4096"`
	PingInterval    time.Duration `env:"PING_INTERVAL,default=25s"`
	PongTimeout     time.Duration `env:"PONG_TIMEOUT,default=60s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=10s"`
}

// APIKeyList splits API_KEYS on commas.
func (s Settings) APIKeyList() []string {
	return splitList(s.APIKeys)
}

func (s Settings) AllowedOriginList() []string {
	return splitList(s.AllowedOrigins)
}

func splitList(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
