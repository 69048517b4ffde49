// Copyright © 2026 Tommaso Bracco <tbracco@gmail.com>.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/tbracco/pyseqgo/internal/config"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// PYSEQ_LOG env variable, falling back to the log.level config key.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("PYSEQ_LOG"))
	if level == "" {
		level, _ = config.GetString("log.level", "ERROR")
		level = strings.ToUpper(level)
	}
	log.SetHandler(&CustomHandler{})
	log.SetLevelFromString(level)
}

// CustomHandler formats log messages and writes to stderr so diagnostics
// never interleave with the result stream on stdout.
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	message := e.Message
	fmt.Fprintf(os.Stderr, "%s %.1s %s\n", timestamp, level, message)
	return nil
}
