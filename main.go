package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"menuflow/internal/config"
	"menuflow/internal/eventbus"
	"menuflow/internal/keymap"
	"menuflow/internal/nav"
	"menuflow/internal/stream"
	"menuflow/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.StringVar(&configPath, "c", "", "Path to a config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("menuflow.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Menu entries come from the command line, with a small demo list as the
	// fallback.
	items := itemsFromArgs(flag.Args())

	bus := eventbus.New()
	styles := ui.NewStyles()
	menu := ui.NewMenu(items, styles, cfg.UI.MaxLabelWidth)

	// Pipeline sources: key names from the UI loop and hover rows from the
	// pointer. Both are buffered so the UI loop never blocks on a slow stage.
	keys := make(chan string, 64)
	hover := make(chan int, 64)
	toggle := stream.NewToggle()

	// decode -> merge -> gate -> highlighter -> selector
	km := keymap.New(cfg.Keys)
	keyEvents := km.Stream(keys)
	hoverEvents := stream.Map(
		stream.Filter(
			stream.Distinct(hover),
			func(i int) bool { return i >= 0 && i < menu.Count() },
		),
		func(i int) any { return i },
	)
	gated := stream.Gate(stream.Merge(keyEvents, hoverEvents), toggle)
	events := nav.Selector(nav.Highlighter(gated, menu), menu, items)

	model := ui.NewModel(cfg, bus, menu, keys, hover, toggle, styles)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Side consumers, decoupled from the pipeline through the bus.
	bus.Subscribe(eventbus.EventSelectionMade, func(e eventbus.Event) {
		ev := e.(eventbus.SelectionMadeEvent)
		log.Printf("selected %q (position %d)", ev.Label, ev.Index)
		if cfg.UI.CopyOnSelect {
			if err := clipboard.WriteAll(ev.Label); err != nil {
				log.Printf("clipboard copy failed: %v", err)
			}
		}
	})
	bus.Subscribe(eventbus.EventGateToggled, func(e eventbus.Event) {
		log.Printf("gate open: %v", e.(eventbus.GateToggledEvent).Open)
	})

	// Forward pipeline output to the UI loop.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for v := range events {
			p.Send(ui.PipelineMsg{Value: v})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Closing the sources shuts the pipeline down stage by stage.
	close(keys)
	close(hover)
	toggle.Close()
	<-done
	bus.Close()
}

func loadConfig(svc config.Service, path string) (*config.Config, error) {
	if path != "" {
		return svc.LoadFromPath(path)
	}
	return svc.Load()
}

func itemsFromArgs(args []string) []ui.Item {
	if len(args) == 0 {
		args = []string{"apples", "oranges", "pears", "plums", "cherries"}
	}
	items := make([]ui.Item, len(args))
	for i, a := range args {
		items[i] = ui.Item{Label: a}
	}
	return items
}
