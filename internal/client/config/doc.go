// Package config loads settings for the sharedlists command-line client.
// Defaults are overlaid by a JSON file (-c/-config) and then by flags.
package config
