package contracts

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	// Version is the release shared by every dataguide program
	Version = "1.0.0"

	// DataFormatVersion is bumped when dataset or export columns change
	DataFormatVersion = "v1"

	// APIVersion is the report server API version
	APIVersion = "v1"
)

// Stamped by build.go through -ldflags -X
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// VersionInfo describes a build
type VersionInfo struct {
	Version    string `json:"version"`
	BuildTime  string `json:"build_time"`
	GitCommit  string `json:"git_commit"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
	DataFormat string `json:"data_format"`
	APIVersion string `json:"api_version"`
}

// GetVersionInfo returns the build description of the running binary
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:    Version,
		BuildTime:  BuildTime,
		GitCommit:  GitCommit,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
		DataFormat: DataFormatVersion,
		APIVersion: APIVersion,
	}
}

// String renders the build details after a program name
func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "v%s", v.Version)
	if v.GitCommit != "unknown" {
		fmt.Fprintf(&b, " (%s)", v.GitCommit)
	}
	fmt.Fprintf(&b, " built %s with %s for %s", v.BuildTime, v.GoVersion, v.Platform)
	return b.String()
}

// GetVersionString returns the one-line version banner of a program
func GetVersionString(program string) string {
	return fmt.Sprintf("dataguide %s v%s", program, Version)
}

// GetFullVersionString returns the banner with build details
func GetFullVersionString(program string) string {
	return fmt.Sprintf("dataguide %s %s", program, GetVersionInfo())
}
