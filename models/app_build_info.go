// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable replaces build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected into a binary with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// AppVersion describes the build for GET /api/version. A non-empty
// configured version wins over the linker-injected one.
func (a AppBuildInfo) AppVersion(configured string) AppVersion {
	version := configured
	if version == "" {
		version = a.buildVersion
	}
	return AppVersion{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(a.buildDate),
		Commit:  orNotAvailable(a.buildCommit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
