package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"jsgen/internal/driver"
	"jsgen/internal/ui"
)

type emitOutcome struct {
	results []driver.EmitResult
	err     error
}

// runEmitWithUI runs the batch while a Bubble Tea progress view follows
// its events on stdout.
func runEmitWithUI(ctx context.Context, title string, inputs []driver.Input, opts driver.EmitOptions) ([]driver.EmitResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan emitOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.EmitInputs(ctx, inputs, optsCopy)
		outcomeCh <- emitOutcome{results: res, err: err}
		close(events)
	}()

	files := make([]string, len(inputs))
	for i, in := range inputs {
		files[i] = in.Path
	}
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the workers from blocking on a view that is gone
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
