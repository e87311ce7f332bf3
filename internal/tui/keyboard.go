package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/champdex/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, tea.Quit
	}

	// Any key closes the help overlay
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	switch m.Screen {
	case ScreenOnboarding:
		return m.handleOnboardingKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Quit) {
		return m, tea.Quit
	}

	var action components.SliderAction
	m.Slider, action = m.Slider.Update(msg)

	switch action {
	case components.SliderSkip, components.SliderGetStarted:
		m.logger.Debug("onboarding finished", "slide", m.Slider.Flow().Index(), "skipped", action == components.SliderSkip)
		return m, DismissOnboardingCmd(m.OnboardingSvc)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing into the filter swallows every key
	if m.ListView.IsFilterTyping() {
		var cmd tea.Cmd
		m.ListView, cmd = m.ListView.Update(msg)
		return m, tea.Batch(cmd, m.maybeLoadMore())
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.ListView.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.ResetOnboarding):
		return m, ResetOnboardingCmd(m.OnboardingSvc)

	case key.Matches(msg, Keys.Enter):
		if ch := m.ListView.Selected(); ch != nil {
			cmd := m.openDetail(ch.ID)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ListView, cmd = m.ListView.Update(msg)
	return m, tea.Batch(cmd, m.maybeLoadMore())
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Back):
		m.closeDetail()
		return m, nil
	}

	var cmd tea.Cmd
	m.DetailView, cmd = m.DetailView.Update(msg)
	return m, cmd
}

// handleMouseMsg routes the wheel to the screen on display
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}

	switch m.Screen {
	case ScreenOnboarding:
		m.Slider, _ = m.Slider.Update(msg)
		return m, nil

	case ScreenDetail:
		var cmd tea.Cmd
		m.DetailView, cmd = m.DetailView.Update(msg)
		return m, cmd

	default:
		var cmd tea.Cmd
		m.ListView, cmd = m.ListView.Update(msg)
		return m, tea.Batch(cmd, m.maybeLoadMore())
	}
}
