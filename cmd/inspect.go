package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [export.map]",
	Short: "Print the resolved view of a map export",
	Long:  `Classifies and resolves a map export without touching the document store. Outputs JSON by default or YAML with --format yaml.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		object, _ := cmd.Flags().GetString("object")
		format, _ := cmd.Flags().GetString("format")
		upload, _ := cmd.Flags().GetBool("upload")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		text, source, err := a.readExport(ctx, args, object)
		if err != nil {
			return err
		}

		inspection, err := a.service().Inspect(text)
		if err != nil {
			return err
		}

		var data []byte
		switch strings.ToLower(format) {
		case "yaml", "yml":
			data, err = yaml.Marshal(inspection)
		case "json", "":
			data, err = json.MarshalIndent(inspection, "", "  ")
		default:
			return fmt.Errorf("unsupported format %q (json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to encode inspection: %w", err)
		}

		if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
			return err
		}

		if upload {
			name := "inspect-" + strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
			objectName, err := a.service().SaveReport(ctx, name, inspection)
			if err != nil {
				return err
			}
			a.logger.Info("Inspection uploaded", zap.String("object", objectName))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().String("object", "", "Read the export from this object in the storage bucket")
	inspectCmd.Flags().String("format", "json", "Output format: json or yaml")
	inspectCmd.Flags().Bool("upload", false, "Upload the inspection as JSON to the storage bucket")
}
