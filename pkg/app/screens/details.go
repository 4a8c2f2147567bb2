package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tikey/worlds/pkg/app/components"
	"github.com/tikey/worlds/pkg/app/styles"
	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/config"
	"github.com/tikey/worlds/pkg/services"
)

// DetailsScreen shows one catalog entry in full and can download just that
// entry.
type DetailsScreen struct {
	cfg        *config.Config
	downloader *services.Downloader
	entry      catalog.Entry
	tracker    *components.ProgressTracker

	downloading bool
	err         error

	width  int
	height int
}

func NewDetailsScreen(cfg *config.Config, downloader *services.Downloader, entry catalog.Entry) *DetailsScreen {
	return &DetailsScreen{
		cfg:        cfg,
		downloader: downloader,
		entry:      entry,
		tracker:    components.NewProgressTracker(80),
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tracker = components.NewProgressTracker(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "catalog", Data: nil}
			}
		case "d":
			if !s.downloading {
				s.downloading = true
				s.err = nil
				s.tracker.Clear()
				return s, s.startDownload()
			}
		}

	case services.DownloadProgress:
		s.tracker.Update(msg)
		if msg.Status == "complete" || msg.Status == "error" {
			s.downloading = false
			s.err = msg.Err
			return s, nil
		}
		return s, s.listenProgress
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(s.entry.Title)

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n"
	}

	tags := "—"
	if len(s.entry.Tags) > 0 {
		tags = strings.Join(s.entry.Tags, ", ")
	}
	preview := s.entry.PreviewURL
	if preview == "" {
		preview = "—"
	}
	updated := s.entry.Updated
	if updated == "" {
		updated = "—"
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.MutedStyle.Render(fmt.Sprintf("Tags: %s", tags)),
		styles.MutedStyle.Render(fmt.Sprintf("Updated: %s", updated)),
		styles.MutedStyle.Render(fmt.Sprintf("JSON: %s", s.entry.JSONURL)),
		styles.MutedStyle.Render(fmt.Sprintf("Preview: %s", preview)),
		"",
		styles.TextStyle.Render(s.entry.Description),
	)
	card := styles.CardStyle.Width(s.width - 4).Render(info)

	help := styles.HelpStyle.Render(
		"d: download · esc: back · q: quit",
	)

	return fmt.Sprintf("%s\n%s%s\n%s\n%s",
		header,
		errorMsg,
		card,
		s.tracker.View(),
		help,
	)
}

// Commands
func (s *DetailsScreen) startDownload() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			go s.downloader.DownloadAll([]catalog.Entry{s.entry}, s.cfg.OutputDir, s.cfg.WithPreview)
			return downloadStartedMsg{count: 1}
		},
		s.listenProgress,
	)
}

func (s *DetailsScreen) listenProgress() tea.Msg {
	return <-s.downloader.GetProgressChannel()
}
