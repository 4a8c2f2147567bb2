package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tikey/worlds/pkg/app/screens"
	"github.com/tikey/worlds/pkg/config"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
