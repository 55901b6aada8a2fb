package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"allbooks/internal/book"
	"allbooks/internal/exports"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var module *exports.Module

	rootCmd := &cobra.Command{
		Use:   "allbooks",
		Short: "Inspect the exported book catalog",
		Long: `allbooks exposes a fixed catalog of three books as named exports:
a single record (chadwick), the full list (books) and a function that
rebuilds the list on each call (get_books).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			m, err := exports.New(commandContext(cmd), book.NewService(book.NewStaticRepository()))
			if err != nil {
				return fmt.Errorf("failed to load exports: %w", err)
			}
			module = m
			return nil
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List export names and kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range module.Names() {
				kind, err := module.Kind(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, kind)
			}
			return nil
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a value export as JSON",
		Long: `Print a value export as JSON.

Examples:
  allbooks show chadwick
  allbooks show books`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := module.Get(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "call <name>",
		Short: "Invoke a function export and print its result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := module.Call(commandContext(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	})

	return rootCmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
