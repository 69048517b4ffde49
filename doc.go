// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// pyseqgo is the main package for the pyseq command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
