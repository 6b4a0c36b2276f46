package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/cliconfig"
	"github.com/dshills/caveripper/pkg/export"
	"github.com/dshills/caveripper/pkg/generator"
	"github.com/dshills/caveripper/pkg/prng"
)

var generateCmd = &cli.Command{
	Name:  "generate",
	Usage: "generate one sublevel layout for a given seed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "seed",
			Usage:    "8-hex-digit seed (with optional 0x prefix), or \"random\"",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "caveinfo",
			Usage: "path to a CaveInfo JSON file (or set caveinfo: in --config)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "output format: json or slug",
			Value: "json",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output file path (default: stdout)",
		},
	},
	Action: runGenerate,
}

func runGenerate(c *cli.Context) error {
	caveinfoPath, format, out := c.String("caveinfo"), c.String("format"), c.String("out")
	if configPath := c.String("config"); configPath != "" {
		cfg, err := cliconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if caveinfoPath == "" {
			caveinfoPath = cfg.CaveInfo
		}
		if !c.IsSet("format") {
			format = cfg.Format
		}
		if out == "" {
			out = cfg.Out
		}
	}

	if caveinfoPath == "" {
		return fmt.Errorf("no caveinfo path given: set --caveinfo or caveinfo: in --config")
	}

	seed, err := prng.ParseSeed(c.String("seed"))
	if err != nil {
		return fmt.Errorf("parsing seed: %w", err)
	}

	ci, err := caveinfo.LoadJSON(caveinfoPath)
	if err != nil {
		return fmt.Errorf("loading caveinfo: %w", err)
	}

	l := generator.Generate(seed, ci)

	var data []byte
	switch format {
	case "json":
		data, err = export.JSON(l)
	case "slug":
		data = []byte(export.Slug(l) + "\n")
	default:
		return fmt.Errorf("unknown format %q: must be json or slug", format)
	}
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}

	if out != "" {
		return os.WriteFile(out, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
