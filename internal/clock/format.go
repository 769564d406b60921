package clock

import "time"

// DefaultLayout is ISO-8601 with microseconds and a numeric offset,
// e.g. 2024-03-10T08:00:01.250000-04:00. Format drops the fraction when the
// microsecond part is zero, giving 2024-03-10T08:00:00-04:00.
const DefaultLayout = "2006-01-02T15:04:05.000000-07:00"

const wholeSecondLayout = "2006-01-02T15:04:05-07:00"

var namedLayouts = map[string]string{
	"":            DefaultLayout,
	"default":     DefaultLayout,
	"iso8601":     DefaultLayout,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"rfc1123z":    time.RFC1123Z,
	"unixdate":    time.UnixDate,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
}

// Layout maps a layout name to a Go reference layout. Unknown names are
// returned as is and used as literal layouts.
func Layout(name string) string {
	if l, ok := namedLayouts[name]; ok {
		return l
	}
	return name
}

// Format renders t with the named or literal layout.
func Format(t time.Time, name string) string {
	l := Layout(name)
	// Sub-microsecond digits are truncated, not rounded.
	if l == DefaultLayout && t.Nanosecond()/int(time.Microsecond) == 0 {
		l = wholeSecondLayout
	}
	return t.Format(l)
}
