package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}
