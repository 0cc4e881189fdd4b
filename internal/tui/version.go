package tui

import (
	"fmt"

	"github.com/akyairhashvil/contribcheck/internal/config"
)

// Set at build time with -ldflags "-X".
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// UserAgent is the client identifier sent with every API request.
func UserAgent() string {
	return config.ClientPrefix + "/" + AppVersion
}
