package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/bohex21/kasir/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI surface for shell tab-completion. It must
// stay in sync with cmd.Register.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"path": predict.Dirs("*"),
	},
	Sub: map[string]*complete.Command{
		"seed":     {},
		"add":      {},
		"rm":       {},
		"products": {},
		"import":   {Args: predict.Files("*")},
		"sell":     {},
		"tx":       {},
		"rmtx":     {},
		"export": {Flags: map[string]complete.Predictor{
			"xlsx": predict.Nothing,
			"o":    predict.Files("*"),
		}},
		"theme": {Args: predict.Set{"dark", "light", "auto"}},
		"topic": {Args: predict.Set{"readme", "catalog", "selling", "exporting"}},
	},
}

func main() {
	completion.Complete("pos")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
