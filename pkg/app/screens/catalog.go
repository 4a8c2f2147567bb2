package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikey/worlds/pkg/app/components"
	"github.com/tikey/worlds/pkg/app/styles"
	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/config"
	"github.com/tikey/worlds/pkg/services"
)

// CatalogScreen is the main view: filter input, tag cycling, the visible
// subset of the catalog with multi-select, and the progress of a running
// download.
type CatalogScreen struct {
	cfg        *config.Config
	fetcher    *services.Fetcher
	downloader *services.Downloader

	input   textinput.Model
	list    *components.EntryList
	tracker *components.ProgressTracker

	catalog []catalog.Entry
	tags    []string
	tagIdx  int // 0 means all tags

	fetching    bool
	downloading bool
	err         error

	width  int
	height int
}

func NewCatalogScreen(cfg *config.Config, fetcher *services.Fetcher, downloader *services.Downloader) *CatalogScreen {
	ti := textinput.New()
	ti.Placeholder = "Filter by name, tag or description..."
	ti.CharLimit = 100
	ti.Width = 50

	return &CatalogScreen{
		cfg:        cfg,
		fetcher:    fetcher,
		downloader: downloader,
		input:      ti,
		list:       components.NewEntryList(),
		tracker:    components.NewProgressTracker(80),
		fetching:   true,
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.fetchCatalog)
}

// Filtering reports whether keystrokes currently go to the filter input.
func (s *CatalogScreen) Filtering() bool {
	return s.input.Focused()
}

func (s *CatalogScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 14
		s.tracker = components.NewProgressTracker(msg.Width - 4)

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "enter", "esc":
				s.input.Blur()
			default:
				s.input, cmd = s.input.Update(msg)
				s.applyFilter()
			}
			return s, cmd
		}

		switch msg.String() {
		case "/":
			s.input.Focus()
			return s, textinput.Blink
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case " ":
			s.list.ToggleMark()
		case "t":
			s.cycleTag(1)
		case "T":
			s.cycleTag(-1)
		case "p":
			s.cfg.WithPreview = !s.cfg.WithPreview
		case "r":
			if !s.fetching {
				s.fetching = true
				s.err = nil
				return s, s.fetchCatalog
			}
		case "enter":
			if entry := s.list.Current(); entry != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: *entry}
				}
			}
		case "d":
			if !s.downloading {
				entries := s.list.Marked()
				if len(entries) > 0 {
					s.downloading = true
					s.err = nil
					s.tracker.Clear()
					return s, s.startDownload(entries)
				}
			}
		}

	case catalogLoadedMsg:
		s.fetching = false
		s.err = msg.err
		if msg.err == nil {
			s.catalog = msg.entries
			s.tags = services.Tags(msg.entries)
			s.tagIdx = 0
			s.applyFilter()
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

	return s, cmd
}

func (s *CatalogScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	status := fmt.Sprintf("%d/%d worlds · tag: %s · preview: %s · out: %s",
		len(s.list.Items), len(s.catalog), s.currentTagLabel(),
		onOff(s.cfg.WithPreview), s.cfg.OutputDir)
	if s.fetching {
		status = "Fetching catalog..."
	}
	statusView := styles.SubtitleStyle.Render(status)

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n"
	}

	help := styles.HelpStyle.Render(
		"/: filter · t/T: tag · space: mark · enter: details · d: download · p: preview · r: refresh · q: quit",
	)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n%s\n%s",
		inputView,
		statusView,
		errorMsg,
		s.list.View(),
		s.tracker.View(),
		help,
	)
}

func (s *CatalogScreen) applyFilter() {
	s.list.SetItems(services.Filter(s.catalog, s.input.Value(), s.currentTag()))
}

func (s *CatalogScreen) currentTag() string {
	if s.tagIdx == 0 {
		return ""
	}
	return s.tags[s.tagIdx-1]
}

func (s *CatalogScreen) currentTagLabel() string {
	if tag := s.currentTag(); tag != "" {
		return tag
	}
	return "(all)"
}

func (s *CatalogScreen) cycleTag(step int) {
	n := len(s.tags) + 1
	s.tagIdx = (s.tagIdx + step + n) % n
	s.applyFilter()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Messages
type catalogLoadedMsg struct {
	entries []catalog.Entry
	err     error
}

type downloadStartedMsg struct {
	count int
}

// Commands
func (s *CatalogScreen) fetchCatalog() tea.Msg {
	entries, err := s.fetcher.FetchCatalog(s.cfg.IndexURL, s.cfg.BaseURL)
	return catalogLoadedMsg{entries: entries, err: err}
}

func (s *CatalogScreen) startDownload(entries []catalog.Entry) tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			go s.downloader.DownloadAll(entries, s.cfg.OutputDir, s.cfg.WithPreview)
			return downloadStartedMsg{count: len(entries)}
		},
		s.listenProgress,
	)
}

func (s *CatalogScreen) listenProgress() tea.Msg {
	return <-s.downloader.GetProgressChannel()
}
