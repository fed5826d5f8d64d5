// Package main provides the CLI entry point for rangeref-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rangeref-go/pkg/rangeref"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/formula"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/grid"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/models"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/output"
	"github.com/ukaji3/rangeref-go/pkg/rangeref/parser"
	"github.com/xuri/excelize/v2"
)

var (
	outputPath string
	sheetName  string
	asJSON     bool
	pretty     bool
	printArea  string
	dataPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rangeref",
		Short: "Manage named ranges of a spreadsheet",
		Long: `rangeref-go reads, lists and converts named range definitions
between define files and Excel workbooks.`,
		SilenceUsage: true,
	}

	listCmd := &cobra.Command{
		Use:   "list [ranges-file]",
		Short: "List the ranges defined in a define file",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON instead of a report")
	listCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Convert workbook defined names to define lines",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	importCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet the names refer to (default: first sheet)")

	exportCmd := &cobra.Command{
		Use:   "export [ranges-file]",
		Short: "Write the ranges of a define file as workbook defined names",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path")
	exportCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet the names refer to (default: first sheet)")
	exportCmd.Flags().StringVar(&dataPath, "data", "", "Existing workbook to add the names to")
	exportCmd.Flags().StringVar(&printArea, "print-area", "", "Print area to set: a range such as A0:C9, or auto")
	_ = exportCmd.MarkFlagRequired("output")

	expandCmd := &cobra.Command{
		Use:   "expand [ranges-file] [formula]",
		Short: "Print a formula with its range names replaced by references",
		Args:  cobra.ExactArgs(2),
		RunE:  runExpand,
	}

	rootCmd.AddCommand(listCmd, importCmd, exportCmd, expandCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0], grid.NewMemory())
	if err != nil {
		return err
	}
	defer doc.Close()

	if !asJSON {
		return doc.Ranges.Report(cmd.OutOrStdout())
	}

	jsonData, err := output.ToJSON(doc.Ranges.All(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", args[0])
	}

	wb, err := rangeref.OpenWorkbook(args[0], sheetName, rangeref.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	var w io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		out, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer out.Close()
		w = out
	}

	if area := wb.PrintArea; area != nil {
		fmt.Fprintf(w, "# print area %s:%s\n",
			models.Cell{Row: area.TLRow, Col: area.TLCol}.Name(),
			models.Cell{Row: area.BRRow, Col: area.BRCol}.Name())
	}
	if err := wb.Ranges.Serialize(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	var (
		wb  *rangeref.Workbook
		err error
	)
	if dataPath != "" {
		if _, statErr := os.Stat(dataPath); os.IsNotExist(statErr) {
			return fmt.Errorf("file not found: %s", dataPath)
		}
		wb, err = rangeref.OpenWorkbook(dataPath, sheetName, rangeref.DefaultOptions())
	} else {
		wb, err = rangeref.NewWorkbook(excelize.NewFile(), sheetName, rangeref.DefaultOptions())
	}
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	defs, err := readDefinitions(args[0])
	if err != nil {
		return err
	}
	if err := wb.Load(defs); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if printArea != "" {
		area, err := resolvePrintArea(wb.File, wb.Sheet())
		if err != nil {
			return err
		}
		wb.PrintArea = area
	}

	if err := wb.Save(outputPath); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}

func runExpand(cmd *cobra.Command, args []string) error {
	g := grid.NewMemory()
	doc, err := loadDocument(args[0], g)
	if err != nil {
		return err
	}
	defer doc.Close()

	expr, err := formula.Parse(args[1], &formula.Context{
		Grid:  g,
		Names: doc.Ranges.Find,
	})
	if err != nil {
		return fmt.Errorf("invalid formula: %w", err)
	}
	doc.Resync(expr)

	fmt.Fprintln(cmd.OutOrStdout(), expr.String())
	return nil
}

// loadDocument reads a define file into a new document over g.
func loadDocument(path string, g rangeref.Grid) (*rangeref.Document, error) {
	defs, err := readDefinitions(path)
	if err != nil {
		return nil, err
	}

	doc := rangeref.NewDocument(g, nil, rangeref.DefaultOptions())
	if err := doc.Load(defs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func readDefinitions(path string) ([]parser.Definition, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	defer in.Close()

	defs, err := parser.ParseDefinitions(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

func resolvePrintArea(f *excelize.File, sheet string) (*models.CustomRange, error) {
	if printArea == "auto" {
		area, err := parser.DataBounds(f, sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to compute print area: %w", err)
		}
		if area == nil {
			return nil, fmt.Errorf("sheet %s has no data for an automatic print area", sheet)
		}
		return area, nil
	}

	left, right, _, err := parser.ParseRange(printArea)
	if err != nil {
		return nil, fmt.Errorf("invalid print area: %w", err)
	}
	left, right = models.Normalize(left, right)
	return models.NewCustomRange(left.Ref.Row, left.Ref.Col, right.Ref.Row, right.Ref.Col), nil
}
