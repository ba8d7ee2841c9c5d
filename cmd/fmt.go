package cmd

import (
	"fmt"
	"log"

	"github.com/bohex21/kasir"
	"github.com/charmbracelet/glamour"
)

// preferences is the persisted UI preference blob. Losing it is harmless:
// persistence failures around it are logged and swallowed, unlike catalog
// or ledger writes.
type preferences struct {
	Theme string `json:"theme,omitempty"`
}

func loadPreferences(store kasir.Store) preferences {
	var p preferences
	if _, err := store.Read(kasir.PrefsKey, &p); err != nil {
		log.Println("warning: could not read preferences:", err)
	}
	return p
}

func savePreferences(store kasir.Store, p preferences) {
	if err := store.Write(kasir.PrefsKey, p); err != nil {
		log.Println("warning: could not save preferences:", err)
	}
}

// printMarkdown renders markdown to the terminal, honouring the persisted
// theme preference. On any rendering problem the raw markdown is printed
// instead, it remains perfectly readable.
func printMarkdown(store kasir.Store, md string) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	switch theme := loadPreferences(store).Theme; theme {
	case "dark", "light":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
