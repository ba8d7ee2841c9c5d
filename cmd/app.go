// Package cmd implements the CLI application of the point of sale.
package cmd

import (
	"flag"
	"os"

	"github.com/bohex21/kasir"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&seedCmd{}, "catalog")
	c.Register(&addCmd{}, "catalog")
	c.Register(&rmCmd{}, "catalog")
	c.Register(&productsCmd{}, "catalog")
	c.Register(&importCmd{}, "catalog")

	c.Register(&sellCmd{}, "sales")
	c.Register(&txCmd{}, "sales")
	c.Register(&rmtxCmd{}, "sales")
	c.Register(&exportCmd{}, "sales")

	c.Register(&themeCmd{}, "display")
	c.Register(&topicCmd{}, "display")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("path", defaultPath(), "Path to the data directory holding the catalog and transactions")

func defaultPath() string {
	if p := os.Getenv("KASIR_PATH"); p != "" {
		return p
	}
	return ".kasir"
}

// OpenStore opens the data directory store shared by all commands.
func OpenStore() (kasir.Store, error) {
	return kasir.OpenDirStore(*dataPath)
}

// OpenCatalog opens the store and loads the persisted catalog.
func OpenCatalog() (*kasir.Catalog, kasir.Store, error) {
	store, err := OpenStore()
	if err != nil {
		return nil, nil, err
	}
	catalog, err := kasir.OpenCatalog(store)
	if err != nil {
		return nil, nil, err
	}
	return catalog, store, nil
}
