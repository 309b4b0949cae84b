package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceIDF/pkg/idf"
	"github.com/spf13/cobra"
)

var (
	dedupeOut         string
	rewritePartNumber bool
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe <library-file>",
	Short: "Remove duplicate component geometries from a library file",
	Long: `Decode a library file and keep only the first component definition for
each geometry name, preserving document order.

Examples:
  idf dedupe library.ldf -o slim.ldf
  idf dedupe library.ldf --rewrite-part-numbers`,
	Args: cobra.ExactArgs(1),
	RunE: runDedupe,
}

func init() {
	rootCmd.AddCommand(dedupeCmd)

	dedupeCmd.Flags().StringVarP(&dedupeOut, "output", "o", "",
		"output file (default stdout)")
	dedupeCmd.Flags().BoolVar(&rewritePartNumber, "rewrite-part-numbers", false,
		"set each part number to its geometry name")
}

func runDedupe(cmd *cobra.Command, args []string) error {
	parser, err := idf.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	doc, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}
	if doc.Header.FileType != idf.LibraryFile {
		return fmt.Errorf("%s is not a library file", args[0])
	}

	if rewritePartNumber {
		for i := range doc.Components {
			doc.Components[i].PartNumber = doc.Components[i].GeometryName
		}
	}

	seen := make(map[string]bool)
	kept := doc.Components[:0]
	for _, component := range doc.Components {
		if seen[component.GeometryName] {
			continue
		}
		seen[component.GeometryName] = true
		kept = append(kept, component)
	}
	before := len(doc.Components)
	doc.Components = kept

	if verbose {
		fmt.Printf("Component defs: %d, after removing duplicates: %d\n", before, len(kept))
	}
	return writeOutput(dedupeOut, doc.Encode())
}
