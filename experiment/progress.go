package experiment

import (
	"fmt"
	"io"
	"strings"
)

const progressBarWidth = 50

// Progress draws a single-line progress bar that is overwritten in place.
type Progress struct {
	w io.Writer
}

// NewProgress returns a reporter that redraws its bar on w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Update redraws the bar for current of total configurations.
func (p *Progress) Update(current, total int) {
	fmt.Fprintf(p.w, "\r%s", progressLine(current, total))
}

// Done ends the progress line.
func (p *Progress) Done() {
	fmt.Fprintln(p.w)
}

func progressLine(current, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = min(float64(current)/float64(total), 1)
	}
	filled := int(ratio * progressBarWidth)
	percent := int(ratio * 100)

	var b strings.Builder
	b.Grow(progressBarWidth + 32)
	b.WriteByte('[')
	b.WriteString(strings.Repeat("=", filled))
	b.WriteString(strings.Repeat(".", progressBarWidth-filled))
	b.WriteByte(']')
	fmt.Fprintf(&b, " %d%% (%d/%d)", percent, current, total)
	return b.String()
}
