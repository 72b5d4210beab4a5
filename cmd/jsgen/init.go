package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsgen/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a jsgen.toml with default settings",
	Long: `Write a jsgen.toml holding the default emission, build and trace settings.
If [path] is omitted, the current directory is used. A missing directory is
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	cfg := project.DefaultConfig()
	// 0 means GOMAXPROCS at run time
	cfg.Build.Jobs = 0
	path := filepath.Join(target, project.ConfigFileName)
	if err := project.WriteConfig(path, cfg); err != nil {
		return err
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
	}
	return nil
}
