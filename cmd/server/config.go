package main

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Duration struct{ time.Duration }

// [Duration] implements [json.Marshaler]
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil

	default:
		return errors.New("invalid duration")
	}
}

type LogConfig struct {
	Filename   string `json:"filename"`
	MaxSize    int    `json:"max_size"`
	MaxBackups int    `json:"max_backups"`
	MaxAge     int    `json:"max_age"`
}

type JwtConfig struct {
	TokenLifetime Duration `json:"token_lifetime"`
	Secret        string   `json:"secret"`
}

type Config struct {
	Mode string    `json:"mode"`
	Addr string    `json:"addr"`
	Log  LogConfig `json:"log"`
	Jwt  JwtConfig `json:"jwt"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":               c.Mode,
		"addr":               c.Addr,
		"log_filename":       c.Log.Filename,
		"jwt_token_lifetime": c.Jwt.TokenLifetime.Duration.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}
