package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"simpro-import-service/cmd/importer/config"
	"simpro-import-service/internal/ingest"
	"simpro-import-service/internal/pipeline"
	"simpro-import-service/internal/report"
)

// Flags for the process command
var (
	inputFile  string
	schemaFile string
	outputDir  string
	noBOM      bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Clean a supplier spreadsheet into the import template",
	Long: `Process reads a CSV or Excel file, auto-maps its columns onto the
import template, applies defaults and currency cleanup, and validates every
row.

Output is all-or-nothing:
- if every row passes, <name>_simpro_template.csv is written
- if any row fails, <name>_errors.csv is written instead (row,field,error)

Both files are UTF-8 with a byte order mark for spreadsheet compatibility.

Examples:
  # Clean a CSV with the built-in template schema
  importer process --input supplier_list.csv

  # Use a custom schema document and output directory
  importer process --input pricebook.xlsx --schema schema.json --output-dir ./out`,

	PreRunE: validateProcessFlags,
	RunE:    runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to the CSV or Excel file to clean (required)")
	processCmd.Flags().StringVar(&schemaFile, "schema", "", "path to a schema JSON document (default: built-in template)")
	processCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory the result file is written to")
	processCmd.Flags().BoolVar(&noBOM, "no-bom", false, "omit the UTF-8 byte order mark from output files")

	processCmd.MarkFlagRequired("input")

	// Bind flags to viper
	viper.BindPFlag("input", processCmd.Flags().Lookup("input"))
	viper.BindPFlag("schema", processCmd.Flags().Lookup("schema"))
	viper.BindPFlag("output-dir", processCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("no-bom", processCmd.Flags().Lookup("no-bom"))
}

func validateProcessFlags(cmd *cobra.Command, args []string) error {
	// Get values from viper (allows override from config file)
	inputFile = viper.GetString("input")
	schemaFile = viper.GetString("schema")
	outputDir = viper.GetString("output-dir")
	noBOM = viper.GetBool("no-bom")

	if inputFile == "" {
		return fmt.Errorf("input is required")
	}
	if err := validateFileExists(inputFile, "input file"); err != nil {
		return err
	}

	if schemaFile != "" {
		if err := validateFileExists(schemaFile, "schema document"); err != nil {
			return err
		}
	}

	if outputDir == "" {
		outputDir = "."
	}
	info, err := os.Stat(outputDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("output directory does not exist: %s", outputDir)
	}
	if err != nil {
		return fmt.Errorf("error accessing output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output-dir is not a directory: %s", outputDir)
	}

	return nil
}

func validateFileExists(filePath, description string) error {
	if filePath == "" {
		return fmt.Errorf("%s path cannot be empty", description)
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist: %s", description, filePath)
	}
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", description, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a file: %s", description, filePath)
	}

	// Check if file is readable
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("%s is not readable: %w", description, err)
	}
	file.Close()

	return nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Processing %s\n", inputFile)
		if schemaFile != "" {
			fmt.Fprintf(os.Stderr, "Schema document: %s\n", schemaFile)
		}
	}

	schemaCfg, err := config.BuildSchemaConfig(schemaFile)
	if err != nil {
		return err
	}

	service, err := pipeline.NewService(schemaCfg)
	if err != nil {
		return err
	}

	table, err := ingest.ReadFile(inputFile)
	if err != nil {
		return err
	}

	result, err := service.Run(ctx, table)
	if err != nil {
		return err
	}

	writer := report.NewWriter(config.CreateReportConfig(noBOM))
	base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Mapped %d of %d input column(s)\n", len(result.Mapping), len(table.Headers))
		if len(result.UnfilledColumns) > 0 {
			fmt.Fprintf(os.Stderr, "Unfilled template column(s): %s\n", strings.Join(result.UnfilledColumns, ", "))
		}
	}

	// All-or-nothing: withhold the cleaned template when any row failed.
	if result.HasFindings() {
		outPath := filepath.Join(outputDir, base+"_errors.csv")
		if err := writeOutputFile(outPath, func(w io.Writer) error {
			return writer.WriteFindings(result.Findings, w)
		}); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Validation found %d problem(s); error report written to %s\n",
			len(result.Findings), outPath)
		return nil
	}

	outPath := filepath.Join(outputDir, base+"_simpro_template.csv")
	if err := writeOutputFile(outPath, func(w io.Writer) error {
		return writer.WriteFrame(result.Frame, w)
	}); err != nil {
		return err
	}

	fmt.Printf("Cleaned template written to %s (%d rows)\n", outPath, result.Frame.NumRows())
	return nil
}

func writeOutputFile(path string, write func(io.Writer) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
