package main

import (
	"io"
	"strings"
)

// printUsage writes the usage guide to w.
func printUsage(w io.Writer) {
	var b strings.Builder
	b.WriteString("tznow — print the current date and time for a timezone\n\n")
	b.WriteString("Usage:\n  tznow [flags]\n\n")
	b.WriteString("Flags:\n")
	b.WriteString("  -tz, --timezone string\n    IANA timezone identifier, passed to the zone database as given (default \"UTC\")\n")
	b.WriteString("  -format string\n    Text layout: default|rfc3339|rfc3339nano|rfc1123z|unixdate|kitchen|datetime or a Go layout (default \"default\")\n")
	b.WriteString("  -output string\n    Output encoding: text|json|yaml (default \"text\")\n")
	b.WriteString("  -at string\n    Use this instant instead of the system clock (e.g. 2024-03-10T12:00:00Z)\n")
	b.WriteString("  -debug\n    Write debug logs to stderr\n")
	b.WriteString("  -print-config\n    Print resolved config and exit\n")
	b.WriteString("  -h, --help, help\n    Show this help and exit\n")
	b.WriteString("  --version\n    Print version and embedded tzdata source, then exit\n\n")
	b.WriteString("Exit codes:\n  0 success, 1 unknown timezone or bad -at value, 2 usage error\n\n")
	b.WriteString("Examples:\n")
	b.WriteString("  tznow\n")
	b.WriteString("  tznow -tz America/New_York\n")
	b.WriteString("  tznow --timezone Europe/Helsinki -output json\n")
	_, _ = io.WriteString(w, b.String())
}
