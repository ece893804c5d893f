// Package config loads and validates the mockfactory run configuration.
//
// Configuration comes from a JSON file (the format the school server's
// own tooling uses) with environment overrides layered on top, so
// credentials never have to live on disk.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/mockfactory/internal/messages"
)

// DefaultTargetClassSize is the class size used when the config omits one.
const DefaultTargetClassSize = 25

// DefaultHTTPSPort is the school server's default TLS port.
const DefaultHTTPSPort = 8443

// DefaultCacheFile is the cohort cache file name used when the config
// omits cachePath; it is resolved relative to the config file.
const DefaultCacheFile = ".klassen_cache.json"

// Config is the mockfactory run configuration.
type Config struct {
	Server    string `json:"server" env:"MOCKFACTORY_SERVER"`
	HTTPSPort int    `json:"httpsPort" env:"MOCKFACTORY_HTTPS_PORT"`
	Schema    string `json:"schema" env:"MOCKFACTORY_SCHEMA"`
	Username  string `json:"username" env:"MOCKFACTORY_USERNAME"`
	Password  string `json:"password" env:"MOCKFACTORY_PASSWORD"`

	TotalStudents   int `json:"totalStudents" env:"MOCKFACTORY_TOTAL_STUDENTS"`
	TargetClassSize int `json:"targetClassSize" env:"MOCKFACTORY_TARGET_CLASS_SIZE"`

	CachePath string `json:"cachePath" env:"MOCKFACTORY_CACHE_PATH"`
}

// ResolvedCachePath returns the cohort cache path with `~` expanded.
// A relative path (including the default) is anchored at the directory
// holding the config file.
func (c *Config) ResolvedCachePath(configPath string) (string, error) {
	path := c.CachePath
	if path == "" {
		path = DefaultCacheFile
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandCachePathFmt, err)
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	return filepath.Join(filepath.Dir(configPath), expanded), nil
}
