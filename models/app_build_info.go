// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during CI/CD; empty values are
// reported as "N/A".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the build info as the multi-line banner printed on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
