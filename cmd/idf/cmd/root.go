package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "idf",
	Short: "IDF 3.0 Board Interchange Toolkit",
	Long: `A toolkit for IDF 3.0 board, panel and library files, the text format
used to exchange board outlines, component placement and component
geometry between ECAD and MCAD systems.

Examples:
  idf info board.idf                       # Summarize a board file
  idf canon board.idf -o clean.idf         # Rewrite in canonical form
  idf strip-tp board.idf -o no_tp.idf      # Remove test point placements
  idf dedupe library.ldf -o slim.ldf       # Drop duplicate geometries`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
