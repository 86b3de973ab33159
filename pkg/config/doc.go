// Package config holds the client configuration for the signing service API
// and its loading helpers. Configuration can come from environment variables
// (with .env support), from a YAML file, or be constructed directly; either
// way Validate must pass before a client is built from it.
package config
