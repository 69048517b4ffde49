// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

// Package output renders pyseq results: streamed line emission for pair
// sequences, Python-literal emission for materialized lists, and the
// examples table shown by --examples.
package output
