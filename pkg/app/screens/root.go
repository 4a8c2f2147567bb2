package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikey/worlds/pkg/app/styles"
	"github.com/tikey/worlds/pkg/catalog"
	"github.com/tikey/worlds/pkg/config"
	"github.com/tikey/worlds/pkg/services"
)

type screenType int

const (
	catalogView screenType = iota
	detailsView
)

// SwitchScreenMsg is emitted by sub-screens to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	cfg        *config.Config
	downloader *services.Downloader

	currentView screenType
	catalog     *CatalogScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(cfg *config.Config) *RootScreen {
	downloader := services.NewDownloader()
	fetcher := services.NewFetcher()

	return &RootScreen{
		cfg:         cfg,
		downloader:  downloader,
		currentView: catalogView,
		catalog:     NewCatalogScreen(cfg, fetcher, downloader),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.catalog.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// Quitting while the filter input is focused would eat the key.
			if r.currentView != catalogView || !r.catalog.Filtering() {
				return r, tea.Quit
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "catalog":
			r.currentView = catalogView
		case "details":
			if entry, ok := msg.Data.(catalog.Entry); ok {
				r.details = NewDetailsScreen(r.cfg, r.downloader, entry)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case catalogView:
		newModel, newCmd := r.catalog.Update(msg)
		r.catalog = newModel.(*CatalogScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	header := styles.TitleStyle.Render("worlds")

	var content string
	switch r.currentView {
	case catalogView:
		content = r.catalog.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n%s", header, content)
}
