package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt     = "missing config file %s: %w"
	ConfigInvalidConfigFmt   = "invalid config %s: %w"
	ConfigEnvOverridesFmt    = "invalid environment overrides: %w"
	ConfigUnrecognizedFmt    = "%s: unrecognized config key %q"
	ConfigExpandCachePathFmt = "invalid cachePath: %w"

	ConfigServerRequiredFmt         = "%s: server is required"
	ConfigSchemaRequiredFmt         = "%s: schema is required"
	ConfigUsernameRequiredFmt       = "%s: username is required"
	ConfigHTTPSPortInvalidFmt       = "%s: httpsPort must be between 1 and 65535 (got %d)"
	ConfigTotalStudentsInvalidFmt   = "%s: totalStudents must be greater than zero (got %d)"
	ConfigTargetClassSizeInvalidFmt = "%s: targetClassSize must be greater than zero (got %d)"
)
