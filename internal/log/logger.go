// Package log wraps the standard logger with a debug level toggled by the
// CLI's --verbose flag.
package log

import (
	"io"
	"log"
)

// EnableDebugLog turns the Debug functions on.
var EnableDebugLog = false

var std = log.New(log.Writer(), "dynlist: ", log.LstdFlags)

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Printf is the wrapper function of the standard log.Printf
func Printf(format string, v ...interface{}) {
	std.Printf(format, v...)
}

// Println is the wrapper function of the standard log.Println
func Println(v ...interface{}) {
	std.Println(v...)
}

// Debugf calls Printf if EnableDebugLog is true
func Debugf(format string, v ...interface{}) {
	if EnableDebugLog {
		std.Printf(format, v...)
	}
}

// Debugln calls Println if EnableDebugLog is true
func Debugln(v ...interface{}) {
	if EnableDebugLog {
		std.Println(v...)
	}
}
