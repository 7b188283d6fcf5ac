package city

import (
	"io"

	"github.com/ulikunitz/nchash/xlog"
)

// debug stores a reference to a logger. It may contain nil for no output.
var debug xlog.Logger

// debugOn uses the log.Logger type to write information on the given writer.
// If w is nil no output will be written.
func debugOn(w io.Writer) {
	debug = xlog.New(w, "city: ")
}

// debugOff() switches the debugging output off.
func debugOff() { debug = nil }

// traceBranch logs the length class that handles a message of length n.
func traceBranch(n int, branch string) {
	if debug != nil {
		xlog.Printf(debug, "len=%d branch=%s", n, branch)
	}
}
