package cmd

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideSpinnerDoneMsgQuitsAndCarriesError(t *testing.T) {
	wantErr := errors.New("store unavailable")
	model := newDecideSpinnerModel(func() tea.Msg { return nil }, time.Now())

	updated, cmd := model.Update(decideDoneMsg{err: wantErr})

	result, ok := updated.(decideSpinnerModel)
	require.True(t, ok)
	assert.True(t, result.done)
	assert.Equal(t, wantErr, result.err)
	assert.Empty(t, result.View())
	require.NotNil(t, cmd)
}

func TestDecideSpinnerLabelSwitchesWhenSlow(t *testing.T) {
	start := time.Date(2026, 8, 30, 18, 5, 0, 0, time.UTC)
	model := newDecideSpinnerModel(func() tea.Msg { return nil }, start)

	assert.Equal(t, decideLabel, model.label(start))
	assert.Equal(t, decideLabel, model.label(start.Add(decideSlowHintAfter-time.Millisecond)))
	assert.Equal(t, decideSlowLabel, model.label(start.Add(decideSlowHintAfter)))
}
