package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"db": map[string]interface{}{
			"path": "bot.db",
		},
		"timezone": "Europe/Moscow",
		"scheduler": map[string]interface{}{
			"interval": "30s",
		},
		"session": map[string]interface{}{
			"backend": SessionMemory,
			"ttl":     "24h",
		},
		"redis": map[string]interface{}{
			"addr":     "localhost:6379",
			"password": "",
			"db":       0,
		},
		"telegram": map[string]interface{}{
			"token":   "",
			"timeout": 60,
			"debug":   false,
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}
