// Command dimcalc evaluates and compares physical dimension expressions.
//
//	dimcalc eval "force / plane_angle"
//	dimcalc check force "torque * plane_angle"
//	dimcalc catalog
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/dimgo"
	"github.com/hupe1980/dimgo/codec"
)

const (
	Version = "0.1.0"
	appName = "dimcalc"
)

// exitMismatch is the exit status of a failed check.
const exitMismatch = 3

func main() {
	err := rootCmd().ExecuteContext(context.Background())
	var dm *dimgo.ErrDimensionMismatch
	switch {
	case err == nil:
	case errors.As(err, &dm):
		os.Exit(exitMismatch)
	default:
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		cfg     config
		envErr  error
		engine  *dimgo.Engine
		catalog string
		level   string
		output  string
	)
	cfg, envErr = loadConfig()

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Evaluate physical dimension expressions",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if cmd.Flags().Changed("catalog") {
				cfg.Catalog = catalog
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = level
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			opts, err := cfg.engineOptions(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			engine, err = dimgo.New(opts...)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if engine == nil {
				return nil
			}
			return engine.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&catalog, "catalog", "", "Additional catalog file (YAML)")
	cmd.PersistentFlags().StringVar(&level, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text, "+strings.Join(codec.Names(), ", ")+")")

	cmd.AddCommand(
		evalCmd(&engine, &cfg),
		checkCmd(&engine),
		catalogCmd(&engine, &cfg),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			PersistentPreRunE: func(*cobra.Command, []string) error {
				return nil
			},
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}

func evalCmd(engine **dimgo.Engine, cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Reduce expressions to canonical dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := make([]dimgo.Description, 0, len(args))
			for _, expr := range args {
				v, err := (*engine).Resolve(cmd.Context(), expr)
				if err != nil {
					return err
				}
				d := (*engine).Describe(v)
				d.Expr = expr
				descs = append(descs, d)
			}
			return write(cmd.OutOrStdout(), cfg.Output, descs, func(w io.Writer) {
				for _, d := range descs {
					fmt.Fprintf(w, "%s\t%s", d.Expr, d.Dimension)
					if len(d.Names) > 0 {
						fmt.Fprintf(w, "\t(%s)", strings.Join(d.Names, ", "))
					}
					fmt.Fprintln(w)
				}
			})
		},
	}
}

func checkCmd(engine **dimgo.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "check <want> <got>",
		Short: "Fail unless two expressions have the same dimension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := (*engine).Check(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

type catalogEntry struct {
	Name      string `json:"name" yaml:"name"`
	Dimension string `json:"dimension" yaml:"dimension"`
}

func catalogCmd(engine **dimgo.Engine, cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List named derived dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := (*engine).Catalog()
			entries := make([]catalogEntry, 0, cat.Len())
			for _, name := range cat.Names() {
				v, _ := cat.Lookup(name)
				entries = append(entries, catalogEntry{Name: name, Dimension: v.String()})
			}
			return write(cmd.OutOrStdout(), cfg.Output, entries, func(w io.Writer) {
				for _, e := range entries {
					fmt.Fprintf(w, "%-26s %s\n", e.Name, e.Dimension)
				}
			})
		},
	}
}

func write(w io.Writer, format string, v any, text func(io.Writer)) error {
	if format == "text" || format == "" {
		text(w)
		return nil
	}
	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unknown output format %q", format)
	}
	b, err := c.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(string(b), "\n"))
	return err
}
