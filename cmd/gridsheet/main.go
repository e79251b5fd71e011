// Package main provides the CLI entry point for gridsheet-go.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/config"
)

var (
	outputPath string
	inputPath  string
	sheet      string
	inferNums  bool
	maxWidth   uint
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Inspect and edit spreadsheet grids from the command line",
		Long: `gridsheet-go loads CSV and Excel files into an in-memory grid, replays
scripted edits (updates, paste, fill, sort, undo/redo) and writes the result.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Read(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("format", "", "Output format: table, csv, json, xlsx (default from config)")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.String("sort", "", "Initial sort direction: asc or desc")
	flags.String("comma", "", "CSV field delimiter")
	flags.Bool("header", false, "Skip the first CSV record on import")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&sheet, "sheet", "", "Worksheet to read or write (default: first sheet / Sheet1)")
	flags.BoolVar(&inferNums, "infer-numbers", true, "Declare numeric xlsx cells as number cells")
	flags.UintVar(&maxWidth, "max-width", 0, "Truncate table columns to this width (0: no limit)")

	bind(v, config.KeyOutputFormat, flags.Lookup("format"))
	bind(v, config.KeyOutputPretty, flags.Lookup("pretty"))
	bind(v, config.KeySortDirection, flags.Lookup("sort"))
	bind(v, config.KeyCSVComma, flags.Lookup("comma"))
	bind(v, config.KeyCSVHeader, flags.Lookup("header"))
	bind(v, config.KeyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(newShowCmd(v), newReplayCmd(v), newConvertCmd(v), newVersionCmd())
	return rootCmd
}

func bind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
