package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/config"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/engine"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/printer"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/script"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "show [input]",
		Short: "Print a CSV or xlsx file as a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := resolve(v)
			if err != nil {
				return err
			}
			st, err := gridsheet.Load(args[0], opts)
			if err != nil {
				return err
			}
			return emit(st, cfg, opts)
		},
	}
}

func newReplayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "Apply a YAML command script to a grid",
		Long: `replay runs each step of the script through the grid engine, starting
from --input (or an empty grid), and prints or saves the resulting grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := resolve(v)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open script: %w", err)
			}
			steps, err := script.Parse(f)
			f.Close()
			if err != nil {
				return err
			}

			st := engine.Dispatch(engine.NewState(), engine.UpdateSortDirection{Direction: opts.SortDirection})
			if inputPath != "" {
				if st, err = gridsheet.Load(inputPath, opts); err != nil {
					return err
				}
			}

			logger := newLogger(cfg.LogLevel)
			sess := engine.NewSession(st, logger)
			st, err = script.Run(cmd.Context(), sess, steps)
			if err != nil {
				return fmt.Errorf("replay failed: %w", err)
			}
			logger.Info("replay finished", "steps", len(steps), "undo_depth", len(st.UndoLog()), "redo_depth", len(st.RedoLog()))

			if outputPath != "" {
				if err := gridsheet.Save(outputPath, st, opts); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			return emit(st, cfg, opts)
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Grid to start from (default: empty grid)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path, format by extension (default: stdout)")
	return cmd
}

func newConvertCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert between csv, xlsx and json by file extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opts, err := resolve(v)
			if err != nil {
				return err
			}
			st, err := gridsheet.Load(args[0], opts)
			if err != nil {
				return err
			}
			if err := gridsheet.Save(args[1], st, opts); err != nil {
				return fmt.Errorf("failed to write %s: %w", filepath.Base(args[1]), err)
			}
			return nil
		},
	}
}

func resolve(v *viper.Viper) (*config.Config, gridsheet.Options, error) {
	cfg, err := config.Resolve(v)
	if err != nil {
		return nil, gridsheet.Options{}, err
	}
	opts := cfg.Options()
	opts.Sheet = sheet
	opts.InferNumbers = &inferNums
	return cfg, opts, nil
}

func emit(st engine.State, cfg *config.Config, opts gridsheet.Options) error {
	switch cfg.OutputFormat {
	case "", "table":
		printer.Fprint(color.Output, st, maxWidth)
		return nil
	case "xlsx":
		return fmt.Errorf("xlsx output needs a file: use convert or replay --output")
	default:
		return gridsheet.Write(os.Stdout, st, gridsheet.Format(cfg.OutputFormat), opts)
	}
}
