package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"simpro-import-service/cmd/importer/config"
)

var inspectSchemaFile string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the loaded template schema",
	Long: `Inspect prints the schema configuration the process command would use,
as JSON: template columns, header aliases, defaults, allowed tax codes, and
the required-field rule sets.

Examples:
  importer inspect
  importer inspect --schema schema.json`,

	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectSchemaFile, "schema", "", "path to a schema JSON document (default: built-in template)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	schemaCfg, err := config.BuildSchemaConfig(inspectSchemaFile)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schemaCfg); err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "%d template column(s), %d alias(es)\n",
			len(schemaCfg.TemplateColumns), len(schemaCfg.Aliases))
	}

	return nil
}
