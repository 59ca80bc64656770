// Package config manages user-level settings stored at
// ~/.fsdevtools/config.yaml and FSDEVTOOLS_* environment variables.
// Values written through Set are validated with the same grammars the
// commands use, so a stored permission mode or scope list always resolves.
package config
