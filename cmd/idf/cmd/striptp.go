package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceIDF/pkg/idf"
	"github.com/spf13/cobra"
)

var stripOut string

var stripTpCmd = &cobra.Command{
	Use:   "strip-tp <idf-file>",
	Short: "Remove test point placements from a board file",
	Long: `Decode a board file, drop every placement whose designator marks a
test point (TP prefix), and write the result canonically.

Examples:
  idf strip-tp board.idf -o no_tp.idf`,
	Args: cobra.ExactArgs(1),
	RunE: runStripTp,
}

func init() {
	rootCmd.AddCommand(stripTpCmd)

	stripTpCmd.Flags().StringVarP(&stripOut, "output", "o", "",
		"output file (default stdout)")
}

func runStripTp(cmd *cobra.Command, args []string) error {
	parser, err := idf.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	doc, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	kept := doc.Placements[:0]
	removed := 0
	for _, placement := range doc.Placements {
		if placement.Designator.IsTestPoint() {
			removed++
			continue
		}
		kept = append(kept, placement)
	}
	doc.Placements = kept

	if verbose {
		fmt.Printf("Removed %d test points, %d placements left\n", removed, len(kept))
	}
	return writeOutput(stripOut, doc.Encode())
}
