package main

import "io"

// writeLine writes s and a newline to w. Failed writes to the terminal
// streams have nowhere to be reported and are dropped.
func writeLine(w io.Writer, s string) {
	_, _ = io.WriteString(w, s+"\n")
}

// writeError reports err on w in the single-line "error: ..." form.
func writeError(w io.Writer, err error) {
	writeLine(w, "error: "+err.Error())
}
