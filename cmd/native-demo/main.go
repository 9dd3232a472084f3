// Command native-demo runs the counter example on the headless backend.
//
// In a terminal the widget tree is shown live and keys simulate input.
// Otherwise, or with -script, a fixed sequence of presses is played and the
// final tree is printed.
//
//	native-demo [-dir path] [-script] [-presses n]
//
// Window and animation settings are read from native.yaml in -dir.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/go-drift/native/pkg/app"
	"github.com/go-drift/native/pkg/config"
	"github.com/go-drift/native/pkg/headless"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := flag.String("dir", ".", "application directory containing native.yaml")
	script := flag.Bool("script", false, "play a fixed sequence of presses and print the result")
	presses := flag.Int("presses", 3, "number of presses in -script mode")
	flag.Parse()

	cfg, err := config.Resolve(*dir)
	if err != nil {
		return err
	}

	b := headless.New()
	a := app.New(b.Platform(), &counter{}, counterView(cfg), app.WithConfig(cfg))

	if *script || !isatty.IsTerminal(os.Stdout.Fd()) {
		return playScript(a, b, *presses)
	}

	_, err = tea.NewProgram(newModel(a, b, cfg.FPS), tea.WithAltScreen()).Run()
	return finish(a, err)
}

// finish closes the app after the terminal program returned runErr and
// reports both failures.
func finish(a *app.App[counter], runErr error) error {
	closeErr := a.Close()
	if runErr != nil {
		runErr = fmt.Errorf("terminal: %w", runErr)
	}
	return errors.Join(runErr, closeErr)
}

// playScript presses the button n times, lets animations settle with fixed
// frames and prints the widget tree.
func playScript(a *app.App[counter], b *headless.Backend, n int) error {
	const frame = 16 * time.Millisecond

	a.Start()
	a.Pump()
	w := b.Windows()[0]
	p := findPressable(w)
	if p == nil {
		return fmt.Errorf("no pressable in %q", w.Title())
	}
	for range n {
		p.Click()
		a.Pump()
	}
	for i := 0; i < 1000 && w.Frame(frame); i++ {
		a.Pump()
	}

	fmt.Println(headless.Dump(w))
	width, height := w.Size()
	minWidth, minHeight := w.MinSize()
	fmt.Println(sizeLine(width, height, minWidth, minHeight))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	w.RequestClose()
	if err := a.Run(ctx); err != nil {
		return err
	}
	if !b.QuitRequested() {
		return fmt.Errorf("window did not close")
	}
	return nil
}

func sizeLine(width, height, minWidth, minHeight float32) string {
	return fmt.Sprintf("window %gx%g (min %gx%g)", width, height, minWidth, minHeight)
}
