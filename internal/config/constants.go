package config

import "time"

// Application identity.
const (
	AppName      = "contribcheck"
	DBFileName   = "contribcheck.db"
	LogFileName  = "contribcheck.log"
	ConfigFile   = "config.yaml"
	DotEnvFile   = ".env"
	ClientPrefix = "contribcheck"
)

// GitHub GraphQL API.
const (
	DefaultEndpoint = "https://api.github.com/graphql"
)

// Environment variables consulted by Load.
const (
	EnvToken    = "GITHUB_TOKEN"
	EnvUser     = "GITHUB_USER"
	EnvEndpoint = "CONTRIBCHECK_ENDPOINT"
)

// Timing.
const (
	// PollInterval is how often the UI drains the fetch result channel.
	PollInterval = 200 * time.Millisecond
)

// Settings keys.
const (
	SettingTheme = "theme"
)

// History display.
const (
	HistoryLimit = 5
)
