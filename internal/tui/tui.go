// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui draws navigation screens with Bubble Tea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/navigation"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// TUI runs the full-screen terminal front end of a [navigation.Controller].
type TUI struct {
	controller *navigation.Controller
	buildInfo  models.AppBuildInfo
	log        *logger.Logger
}

// New returns a TUI drawing controller screens.
func New(controller *navigation.Controller, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		controller: controller,
		buildInfo:  buildInfo,
		log:        log,
	}
}

// Run blocks until the user chooses Exit or presses ctrl+c. The latter is
// reported as [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.controller, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.log.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.log.Info().Str("func", "TUI.Run").Msg("interrupted by user")
		return ErrUserQuit
	}

	return nil
}
