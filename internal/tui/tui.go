// Package tui implements the interactive credential picker shown when a
// query returns more than one match.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-keepass-http/internal/logger"
	"github.com/MKhiriev/go-keepass-http/models"
)

var ErrUserQuit = errors.New("вышел из программы")

// Picker runs a terminal list over the retrieved credentials and returns
// the one the user confirmed with Enter.
type Picker struct {
	logger *logger.Logger
}

func New(log *logger.Logger) *Picker {
	return &Picker{logger: log}
}

// Pick opens the picker over credentials and blocks until the user
// confirms a row or quits. Quitting without a selection returns
// [ErrUserQuit].
func (p *Picker) Pick(credentials []models.Credential) (models.Credential, error) {
	model := newPickerModel(credentials)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Credential{}, runErr
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return models.Credential{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.confirmed {
		return models.Credential{}, ErrUserQuit
	}

	selected, _ := result.current()
	p.logger.Debug().Str("name", selected.Name).Msg("credential selected")
	return selected, nil
}
