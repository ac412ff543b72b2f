// Package config loads server and deck settings from defaults, an optional
// config.yaml and DECK_-prefixed environment variables, then validates them.
// Other packages receive the typed Config and never read the environment.
package config
