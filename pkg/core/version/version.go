// ============================================================================
// devkit - Developer Conversion Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolkit and its tools
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the toolkit
const (
	// Platform version
	Platform = "1.0.0"

	// Tool versions
	CaseConverter   = "1.0.0"
	Base64Converter = "1.0.0"
	URLEncoder      = "1.0.0"
	HashGenerator   = "1.1.0"
	UUIDGenerator   = "1.0.0"
	LoremGenerator  = "1.0.0"
	BaseConverter   = "1.1.0"
	Timestamp       = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/devkit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ToolVersion returns the version for a given tool id
func ToolVersion(id string) string {
	switch id {
	case "case-converter":
		return CaseConverter
	case "base64-converter":
		return Base64Converter
	case "url-encoder":
		return URLEncoder
	case "hash-generator":
		return HashGenerator
	case "uuid-generator":
		return UUIDGenerator
	case "lorem-generator":
		return LoremGenerator
	case "number-base-converter":
		return BaseConverter
	case "timestamp":
		return Timestamp
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Platform,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("devkit %s (commit %s, built %s, %s %s)",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
