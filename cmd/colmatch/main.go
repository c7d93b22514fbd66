package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/colmatch/internal/config"
	"github.com/standardbeagle/colmatch/internal/matcher"
	"github.com/standardbeagle/colmatch/internal/verify"
	"github.com/standardbeagle/colmatch/internal/version"
)

func main() {
	app := &cli.App{
		Name:                   "colmatch",
		Usage:                  "Fuzzy column-name matching for data imports",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
		},
		Commands: []*cli.Command{
			matchCommand(),
			normalizeCommand(),
			expandCommand(),
			columnsCommand(),
			verifyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	// CLI flag overrides
	if c.IsSet("threshold") {
		cfg.Match.Threshold = c.Float64("threshold")
	}
	if c.IsSet("max-results") {
		cfg.Match.MaxResults = c.Int("max-results")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func matchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "Rank schema columns against a source column name",
		ArgsUsage: "<source-column>",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   "Minimum fused score to keep a candidate",
			},
			&cli.IntFlag{
				Name:  "max-results",
				Usage: "Maximum candidates to display",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit candidates as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			source := c.Args().First()
			if source == "" {
				return fmt.Errorf("match needs a source column name")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if len(cfg.Schema.Columns) == 0 {
				return fmt.Errorf("no schema columns configured; add a schema section to %s", c.String("config"))
			}

			m := cfg.NewMatcher()
			results := m.FindBestMatches(source, cfg.Match.Threshold)
			if len(results) > cfg.Match.MaxResults {
				results = results[:cfg.Match.MaxResults]
			}

			if c.Bool("json") {
				return printJSON(results)
			}
			if len(results) == 0 {
				fmt.Printf("no candidates for %q at threshold %.2f\n", source, cfg.Match.Threshold)
				return nil
			}
			for i, candidate := range results {
				fmt.Printf("%2d. %-32s %.3f  %s\n", i+1, candidate.Column, candidate.Score, candidate.Algorithm)
			}
			return nil
		},
	}
}

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Print the normalized form of a column name",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("normalize needs a column name")
			}
			fmt.Println(matcher.NormalizeColumnName(c.Args().First()))
			return nil
		},
	}
}

func expandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "Expand abbreviations in an already-normalized name",
		ArgsUsage: "<name>",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("expand needs a column name")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			dict := matcher.NewDictionary(cfg.Abbreviations)
			fmt.Println(dict.ExpandName(c.Args().First()))
			return nil
		},
	}
}

func columnsCommand() *cli.Command {
	return &cli.Command{
		Name:  "columns",
		Usage: "Print the configured schema columns",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			for _, col := range cfg.NewMatcher().SchemaColumns() {
				fmt.Println(col)
			}
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Run fixture files against the matching engine",
		ArgsUsage: "<fixture-glob>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run when fixture files change",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Emit the report as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("verify needs at least one fixture path or glob")
			}

			paths, err := verify.ExpandPatterns(c.Args().Slice())
			if err != nil {
				return err
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := func() verify.Summary {
				results, summary := verify.Run(ctx, paths, cfg)
				if c.Bool("json") {
					if err := verify.WriteJSONReport(os.Stdout, results, summary); err != nil {
						fmt.Fprintf(os.Stderr, "Error: %v\n", err)
					}
				} else {
					verify.WriteReport(os.Stdout, results, summary)
				}
				return summary
			}

			summary := run()

			if c.Bool("watch") {
				fmt.Fprintln(os.Stderr, "watching fixtures for changes (ctrl-c to stop)")
				w := verify.NewWatcher(paths, verify.DefaultDebounce)
				return w.Watch(ctx, func() { run() })
			}

			if !summary.OK() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
