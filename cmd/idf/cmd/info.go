package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceIDF/pkg/idf"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <idf-file>",
	Short: "Parse and summarize an IDF 3.0 file",
	Long: `Parse an IDF 3.0 file and print its header and the counts of
placements, component geometries and other sections.

Examples:
  idf info board.idf
  idf info -v library.ldf`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	parser, err := idf.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	doc, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	h := doc.Header
	fmt.Printf("Type:     %s\n", h.FileType)
	fmt.Printf("Source:   %s\n", h.Source)
	fmt.Printf("Date:     %s\n", h.Date)
	fmt.Printf("Version:  %d\n", h.Version)
	if h.FileType == idf.BoardFile || h.FileType == idf.PanelFile {
		fmt.Printf("Board:    %s (%s)\n", h.BoardName, h.Units)
	}

	testPoints := 0
	for _, p := range doc.Placements {
		if p.Designator.IsTestPoint() {
			testPoints++
		}
	}
	fmt.Printf("Components placed: %d (%d test points)\n", len(doc.Placements), testPoints)
	if h.FileType == idf.LibraryFile {
		fmt.Printf("Component geometries: %d\n", len(doc.Components))
	}
	fmt.Printf("Other sections: %d\n", len(doc.Sections))

	if verbose {
		for _, s := range doc.Sections {
			fmt.Printf("  .%s (%d records)\n", s.Name, len(s.Records))
		}
		for _, c := range doc.Components {
			fmt.Printf("  %s %s %s height %.4f, %d outline points\n",
				c.GeometryName, c.PartNumber, c.Units, c.Height, len(c.Outline))
		}
	}
	return nil
}
