// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "SLC_LOG"

const tracePrefix = "TRACE: "

// levels maps SLC_LOG values to apex levels. trace is debug plus Tracef lines.
var levels = map[string]log.Level{
	"trace": log.DebugLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

// letters is the one-letter tag written for each apex level.
var letters = map[log.Level]string{
	log.DebugLevel: "D",
	log.InfoLevel:  "I",
	log.WarnLevel:  "W",
	log.ErrorLevel: "E",
	log.FatalLevel: "F",
}

var traceEnabled bool

// InitLoggerTo points apex at w with the level taken from SLC_LOG. Unknown or
// empty values mean error. The tools pass stderr; stdout carries sliced data.
func InitLoggerTo(w io.Writer) {
	name := strings.ToLower(os.Getenv(EnvLevel))
	level, ok := levels[name]
	if !ok {
		name, level = "error", log.ErrorLevel
	}
	traceEnabled = name == "trace"

	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(level)
}

// CustomHandler formats log messages as "timestamp level message" lines.
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements log.Handler.
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	letter, message := letters[e.Level], e.Message
	if rest, ok := strings.CutPrefix(message, tracePrefix); ok {
		letter, message = "T", rest
	}
	if letter == "" {
		letter = "?"
	}

	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", time.Now().Format(time.DateTime), letter, message)
	return err
}

// Tracef logs below Debug. It is only written when SLC_LOG=trace.
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}
