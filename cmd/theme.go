package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type themeCmd struct{}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "set the terminal rendering theme" }
func (*themeCmd) Usage() string {
	return `pos theme <dark|light|auto>

  Sets the markdown rendering theme. "auto" detects the terminal
  background. The choice is persisted in the data directory.
`
}

func (*themeCmd) SetFlags(f *flag.FlagSet) {}

func (*themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Please provide a theme: dark, light or auto.")
		return subcommands.ExitUsageError
	}
	theme := f.Arg(0)
	switch theme {
	case "dark", "light":
	case "auto":
		theme = ""
	default:
		fmt.Fprintf(os.Stderr, "Unknown theme %q, expected dark, light or auto.\n", theme)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p := loadPreferences(store)
	p.Theme = theme
	savePreferences(store, p)
	fmt.Printf("Theme set to %s.\n", f.Arg(0))
	return subcommands.ExitSuccess
}
