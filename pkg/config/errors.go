package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrReadingConfigFile is returned when a YAML config file cannot be read
	// or decoded.
	ErrReadingConfigFile = errors.New("failed to read config file")

	// ErrMissingBaseURL is returned by Validate when no API base URL is set.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrInvalidBaseURL is returned by Validate when the base URL is not an
	// absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

	// ErrMissingAccessToken is returned by Validate when no access token is set.
	ErrMissingAccessToken = errors.New("access token is required")

	// ErrMissingAPIVersion is returned by Validate when no API version is set.
	ErrMissingAPIVersion = errors.New("API version is required")
)
