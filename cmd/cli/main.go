package main

import (
	"fmt"
	"os"

	"ipdetective/cmd/cli/catalog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	_ = godotenv.Load()
	rootCmd.AddGroup(catalog.Group)
	rootCmd.AddCommand(catalog.Lint)
}

var rootCmd = &cobra.Command{
	Use:  "ipdetective-cli",
	Long: `Command line utilities for IP Detective`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
