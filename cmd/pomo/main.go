package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pomo/internal/cli"
	"github.com/alexanderramin/pomo/internal/notify"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Notifier: notify.Desktop{},
	}

	// Detect interactive terminal before taking over the screen.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
