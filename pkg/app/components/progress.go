package components

import (
	"fmt"
	"strings"

	"github.com/tikey/worlds/pkg/app/styles"
	"github.com/tikey/worlds/pkg/services"
)

const maxLogLines = 6

// ProgressTracker follows one download run: a progress bar over the entry
// count plus the most recent job log lines.
type ProgressTracker struct {
	current services.DownloadProgress
	logs    []string
	active  bool
	width   int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{width: width}
}

func (p *ProgressTracker) Update(progress services.DownloadProgress) {
	if progress.Message != "" {
		p.logs = append(p.logs, progress.Message)
		if len(p.logs) > maxLogLines {
			p.logs = p.logs[len(p.logs)-maxLogLines:]
		}
	}
	// Message-only updates carry no counts, keep the last real ones.
	if progress.Total > 0 {
		p.current = progress
	}
	switch progress.Status {
	case "complete", "error":
		p.active = false
	case "downloading":
		p.active = true
	}
}

func (p *ProgressTracker) Clear() {
	p.current = services.DownloadProgress{}
	p.logs = nil
	p.active = false
}

func (p *ProgressTracker) Active() bool {
	return p.active
}

func (p *ProgressTracker) View() string {
	if p.current.Total == 0 && len(p.logs) == 0 {
		return ""
	}

	var b strings.Builder

	if p.current.Total > 0 {
		bar := renderProgressBar(p.current.Completed, p.current.Total, p.width-10)
		b.WriteString(fmt.Sprintf("%s %d/%d\n", bar, p.current.Completed, p.current.Total))

		statusText := p.current.Status
		if p.current.Title != "" {
			statusText = fmt.Sprintf("%s · %s", statusText, p.current.Title)
		}
		b.WriteString(styles.StatusStyle(p.current.Status).Render(statusText))
		b.WriteString("\n")
	}

	for _, line := range p.logs {
		b.WriteString(styles.MutedStyle.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
