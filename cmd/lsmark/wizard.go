package main

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/suryansh-23/lsmark/internal/ui"
)

const logoInterval = 140 * time.Millisecond

type tickMsg struct{}

// wizardModel cycles the logo colors above a form.
type wizardModel struct {
	form  *huh.Form
	frame int
}

func (m wizardModel) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), tick())
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		m.frame = (m.frame + 1) % len(ui.Palette)
		return m, tick()
	}
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}
	return m, cmd
}

func (m wizardModel) View() string {
	return ui.LogoFrame(m.frame) + "\n\n" + m.form.View()
}

func tick() tea.Cmd {
	return tea.Tick(logoInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// runAnimatedForm runs the form under the animated logo, or plainly on dumb
// terminals.
func runAnimatedForm(form *huh.Form) error {
	if os.Getenv("TERM") == "dumb" {
		return form.Run()
	}
	form.SubmitCmd = tea.Quit
	form.CancelCmd = tea.Interrupt

	p := tea.NewProgram(wizardModel{form: form}, tea.WithOutput(os.Stderr), tea.WithInput(os.Stdin))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return huh.ErrUserAborted
		}
		return err
	}
	if wm, ok := final.(wizardModel); ok && wm.form.State == huh.StateAborted {
		return huh.ErrUserAborted
	}
	return nil
}
