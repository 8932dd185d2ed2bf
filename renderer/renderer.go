// Package renderer formats ledgers, schedules and summaries as
// markdown reports.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates a markdown report.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
