/*
Package xlog provides a Logger interface and supporting functions to
control debug output of the hash engines.

The engines are hot paths; they must not format anything unless somebody
listens. The Logger interface is simple and it is supported by the
log.Logger type. A nil Logger is valid and swallows all output, so an
engine can keep a package variable that is nil by default and switch it on
in tests.
*/
package xlog

import (
	"fmt"
	"io"
	"log"
)

// Logger must be supported by a type to be used as debug output. The
// log.Logger type supports this interface.
type Logger interface {
	Output(calldepth int, s string) error
}

// New returns a logger writing to w without prefix and flags. If w is nil
// the nil Logger is returned.
func New(w io.Writer, prefix string) Logger {
	if w == nil {
		return nil
	}
	return log.New(w, prefix, 0)
}

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}
