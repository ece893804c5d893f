package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to JSON syntax, filesystem, or other loading errors).
// Callers can use errors.Is(err, ErrConfigValidation) to distinguish
// validation problems from other Load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads the config file, applies environment overrides, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates config JSON data from a source identifier.
// data is the JSON content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		var unknown *unknownKeyError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedFmt, ErrConfigValidation, source, unknown.key)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigEnvOverridesFmt, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// LoadLenient reads the config file without validation. Commands that
// only need the connection settings (check, patch-school) use it so a
// config without seeding inputs still works for them.
func LoadLenient(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigEnvOverridesFmt, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type unknownKeyError struct {
	key string
}

func (e *unknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.key)
}

// decodeStrict re-decodes the JSON data with unknown-field rejection.
// This catches keys that json.Unmarshal silently ignores (typos like
// "totalPupils" that would otherwise leave the real field at zero).
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		if key, ok := unknownFieldName(err); ok {
			return &unknownKeyError{key: key}
		}
		return err
	}
	return nil
}

// unknownFieldName extracts the offending key from the decoder's
// unknown-field error text; encoding/json exposes no typed error for it.
func unknownFieldName(err error) (string, bool) {
	const marker = `unknown field "`
	text := err.Error()
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}
	rest := text[idx+len(marker):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

func (c *Config) applyDefaults() {
	if c.HTTPSPort == 0 {
		c.HTTPSPort = DefaultHTTPSPort
	}
	if c.TargetClassSize == 0 {
		c.TargetClassSize = DefaultTargetClassSize
	}
}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Server) == "" {
		return fmt.Errorf(messages.ConfigServerRequiredFmt, source)
	}
	if strings.TrimSpace(c.Schema) == "" {
		return fmt.Errorf(messages.ConfigSchemaRequiredFmt, source)
	}
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf(messages.ConfigUsernameRequiredFmt, source)
	}
	if c.HTTPSPort < 1 || c.HTTPSPort > 65535 {
		return fmt.Errorf(messages.ConfigHTTPSPortInvalidFmt, source, c.HTTPSPort)
	}
	if c.TotalStudents <= 0 {
		return fmt.Errorf(messages.ConfigTotalStudentsInvalidFmt, source, c.TotalStudents)
	}
	if c.TargetClassSize <= 0 {
		return fmt.Errorf(messages.ConfigTargetClassSizeInvalidFmt, source, c.TargetClassSize)
	}
	return nil
}
