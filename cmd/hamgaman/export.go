package main

import (
	"fmt"
	"io"
	"os"

	"hamgaman/internal/catalog"

	"github.com/spf13/cobra"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the course catalog as JSON",
		Long: `Export writes every course of the catalog (the built-in sample data or
--seed) as indented JSON. Picked video files keep their name, path and size.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(f, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func runExport(f *rootFlags, path string, stdout io.Writer) error {
	cfg, err := f.load()
	if err != nil {
		return err
	}
	seed, err := catalog.Load(cfg.Seed)
	if err != nil {
		return err
	}
	store := catalog.NewStore(seed.Courses)

	if path == "" {
		return store.Export(stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := store.Export(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
