package main

import (
	"flowers/config"
	"flowers/controller"
	"flowers/engine"
	"flowers/snapshot"
	"flowers/ui"
	"flowers/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "flowers"
	app.Usage = "grow drifting-color flowers on a grid"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Value: "flowers.toml", Usage: "TOML config file"},
		cli.IntFlag{Name: "width", Usage: "grid width in cells"},
		cli.IntFlag{Name: "height", Usage: "grid height in cells"},
		cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 seeds from the clock"},
		cli.IntFlag{Name: "iterations", Usage: "cells sampled per tick"},
		cli.IntFlag{Name: "delta", Usage: "maximum color drift per channel"},
		cli.IntFlag{Name: "clear-radius", Usage: "half-size of the cleared square"},
		cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		cli.BoolFlag{Name: "headless", Usage: "run without a window"},
		cli.IntFlag{Name: "ticks", Value: 100, Usage: "ticks to run in headless mode"},
		cli.IntFlag{Name: "seeds", Value: 1, Usage: "random flowers planted before a headless run"},
		cli.StringFlag{Name: "write-config", Usage: "save the effective configuration to this TOML file before starting"},
		cli.StringFlag{Name: "snapshot", Usage: "write the final grid to this .png or .bmp file (headless)"},
	}
	app.Action = run

	return app
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("iterations") {
		cfg.IterationsPerTick = c.Int("iterations")
	}
	if c.IsSet("delta") {
		cfg.MutationDelta = c.Int("delta")
	}
	if c.IsSet("clear-radius") {
		cfg.ClearRadius = c.Int("clear-radius")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	if path := c.String("write-config"); path != "" {
		if err := config.Save(cfg, path); err != nil {
			level.Error(logger).Log("msg", "saving config failed", "err", err)
			return err
		}
		level.Info(logger).Log("msg", "config written", "path", path)
	}

	rng := engine.NewRand(cfg.Seed)
	e := engine.NewEngine(engine.NewBoard(cfg.Width, cfg.Height), cfg.Engine(), rng, logger)
	ctrl := controller.New(e)

	level.Info(logger).Log("msg", "starting", "width", cfg.Width, "height", cfg.Height,
		"iterations", cfg.IterationsPerTick, "delta", cfg.MutationDelta, "headless", c.Bool("headless"))

	if !c.Bool("headless") {
		ui.New(ctrl, logger).Run()
		return nil
	}

	return runHeadless(ctrl, logger, c.Int("seeds"), c.Int("ticks"), c.String("snapshot"))
}

func runHeadless(ctrl *controller.Controller, logger log.Logger, seeds, ticks int, snapshotPath string) error {
	start := time.Now()
	ctrl.Seed(seeds)

	for i := 0; i < ticks; i++ {
		ctrl.Tick()
	}

	level.Info(logger).Log("msg", "headless run finished", "ticks", ctrl.Ticks(),
		"population", ctrl.Population(), "took", time.Since(start))

	if snapshotPath == "" {
		return nil
	}

	if err := snapshot.Write(snapshotPath, ctrl.Snapshot()); err != nil {
		level.Error(logger).Log("msg", "snapshot failed", "err", err)
		return err
	}
	level.Info(logger).Log("msg", "snapshot written", "path", snapshotPath)

	return nil
}
