// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for pyseq. It wires flags,
// actions, and shell completion for subcommands.
package command
