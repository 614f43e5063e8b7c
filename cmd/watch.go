package cmd

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

type watchModel struct {
	ctx   context.Context
	store *queueStore
	err   error
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			store, err := loadQueueStore(m.ctx)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.store = store
			m.err = nil
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n\npress r to retry, q to quit\n", m.err)
	}
	var b strings.Builder
	for i, q := range m.store.queues {
		fmt.Fprintf(&b, "Queue %d (%d/%d): %s\n", i+1, q.Len(), q.Cap(), formatContents(q))
	}
	b.WriteString("\npress r to reload, q to quit\n")
	return b.String()
}

func createWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "View both queues interactively",
		Long: `Watch shows both queues in an alternate-screen view. Press r to reload
them from their backing files and q to quit. The view never writes to the
files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadQueueStore(cmd.Context())
			if err != nil {
				return err
			}
			p := tea.NewProgram(watchModel{ctx: cmd.Context(), store: store}, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return xerrors.Errorf("failed to run watch: %w", err)
			}
			return nil
		},
	}
}
