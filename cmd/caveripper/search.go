package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dshills/caveripper/pkg/batch"
	"github.com/dshills/caveripper/pkg/caveinfo"
	"github.com/dshills/caveripper/pkg/cliconfig"
	"github.com/dshills/caveripper/pkg/export"
	"github.com/dshills/caveripper/pkg/layout"
)

var searchCmd = &cli.Command{
	Name:  "search",
	Usage: "search a seed range for a layout matching a condition",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "caveinfo",
			Usage: "path to a CaveInfo JSON file (or set caveinfo: in --config)",
		},
		&cli.Uint64Flag{
			Name:  "start",
			Usage: "first seed to try",
			Value: 0,
		},
		&cli.Uint64Flag{
			Name:  "count",
			Usage: "number of seeds to search",
			Value: 1_000_000,
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "number of concurrent workers (0 = GOMAXPROCS)",
			Value: 0,
		},
		&cli.StringFlag{
			Name:  "has-hole",
			Usage: "only match layouts containing a spawn object with this internal name (e.g. hole); empty matches every layout",
		},
	},
	Action: runSearch,
}

func runSearch(c *cli.Context) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	caveinfoPath, workers := c.String("caveinfo"), c.Int("workers")
	if configPath := c.String("config"); configPath != "" {
		cfg, err := cliconfig.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if caveinfoPath == "" {
			caveinfoPath = cfg.CaveInfo
		}
		if !c.IsSet("workers") && cfg.Workers != 0 {
			workers = cfg.Workers
		}
	}

	if caveinfoPath == "" {
		return fmt.Errorf("no caveinfo path given: set --caveinfo or caveinfo: in --config")
	}

	ci, err := caveinfo.LoadJSON(caveinfoPath)
	if err != nil {
		return fmt.Errorf("loading caveinfo: %w", err)
	}

	wantName := c.String("has-hole")
	pred := func(l *layout.Layout) bool {
		if wantName == "" {
			return true
		}
		for _, so := range l.GetSpawnObjects() {
			if so.Object.Name() == wantName {
				return true
			}
		}
		return false
	}

	opts := batch.Options{
		Start:   uint32(c.Uint64("start")),
		Count:   uint32(c.Uint64("count")),
		Workers: workers,
	}

	logger.Info("starting seed search",
		zap.Uint64("start", c.Uint64("start")),
		zap.Uint64("count", c.Uint64("count")),
	)

	res, found, err := batch.Search(context.Background(), ci, pred, opts)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if !found {
		logger.Info("no matching seed found in range")
		return nil
	}

	logger.Info("match found", zap.String("seed", res.Seed.String()))
	data, err := export.JSON(res.Layout)
	if err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
