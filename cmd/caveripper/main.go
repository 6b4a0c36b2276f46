// Command caveripper generates a single Pikmin 2 cave sublevel layout
// from a seed and a CaveInfo JSON file, or searches a seed range for one
// matching a condition. See spec.md §4.10.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
)

func main() {
	app := &cli.App{
		Name:    "caveripper",
		Usage:   "offline, bit-exact Pikmin 2 cave layout generator",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file providing default flag values for any subcommand",
			},
		},
		Commands: []*cli.Command{
			generateCmd,
			searchCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
