package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"menuflow/internal/config"
)

// renderHelpContent builds the full help text from the configured bindings.
func renderHelpContent(cfg *config.Config) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	line := func(keys []string, desc string) string {
		return fmt.Sprintf("  %-14s %s\n",
			keyStyle.Render(strings.Join(keys, ", ")),
			descStyle.Render(desc))
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render(cfg.Title + " Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line(cfg.Keys.Next, "Highlight next entry"))
	help.WriteString(line(cfg.Keys.Previous, "Highlight previous entry"))
	help.WriteString(line(cfg.Keys.Clear, "Clear highlight"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Selection"))
	help.WriteString("\n")
	help.WriteString(line(cfg.Keys.Select, "Select highlighted entry"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line(cfg.Keys.Help, "Show this help"))
	help.WriteString(line(cfg.Keys.Quit, "Quit"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Input is ignored while the terminal is unfocused."))

	return help.String()
}

// showInPager displays content through the ov pager, handing the terminal
// over for the duration.
func showInPager(program *tea.Program, content string) error {
	if program == nil {
		return fmt.Errorf("program not set")
	}

	if err := program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to fully exit before taking the terminal back.
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	ovConfig := oviewer.NewConfig()
	ovConfig.IsWriteOnExit = false
	ovConfig.IsWriteOriginal = false
	root.SetConfig(ovConfig)

	return root.Run()
}
