// Package config discovers how to reach the conditioner inventory API.
//
// Configuration is layered, most specific last:
//
//  1. Built-in defaults (local API, log dir under ~/.local/share/coolant)
//  2. Optional TOML file at ~/.config/coolant/config.toml (api_url, log_dir)
//  3. The COOLANT_API_URL environment variable
//
// A missing config file is not an error; an unreadable or malformed one is.
package config
