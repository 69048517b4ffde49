// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package version holds the pyseq version string, overridden at build time
// via -ldflags.
package version

var Version = "0.3.0-dev"
