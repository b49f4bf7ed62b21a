package cmd

import (
	"fmt"

	"rwk-afmg/feature/world/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import [export.map]",
	Short: "Import a map export into the document store",
	Long: `Classifies a map export, resolves every reference and reconciles the
Cultures, Provinces, Countries and Burgs collections in dependency order.
Collections whose entity count or order drifted since the last import are left
untouched and reported. Use --recreate --confirm to rebuild them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		object, _ := cmd.Flags().GetString("object")
		upload, _ := cmd.Flags().GetBool("upload")
		opts := importer.Options{}
		opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
		opts.Recreate, _ = cmd.Flags().GetBool("recreate")
		opts.Confirmed, _ = cmd.Flags().GetBool("confirm")

		if opts.Recreate && !opts.Confirmed && !opts.DryRun {
			return fmt.Errorf("--recreate drops existing collections; pass --confirm to proceed")
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var report *importer.Report
		if object != "" {
			report, err = a.service().ImportObject(ctx, object, opts)
		} else {
			var text string
			if text, _, err = a.readExport(ctx, args, ""); err != nil {
				return err
			}
			report, err = a.service().Import(ctx, text, opts)
		}
		if err != nil {
			return err
		}

		printReport(report)

		if upload {
			name, err := a.service().SaveReport(ctx, "import-"+report.RunID, report)
			if err != nil {
				return err
			}
			a.logger.Info("Run report uploaded", zap.String("object", name))
		}

		if n := len(report.Warnings()); n > 0 {
			return fmt.Errorf("%d collection(s) were blocked by integrity warnings", n)
		}
		return nil
	},
}

func printReport(r *importer.Report) {
	fmt.Println("\n=== Import Report ===")
	fmt.Printf("Run: %s\n", r.RunID)
	fmt.Printf("Seed: %s\n", r.Classification.Header.Seed)
	if r.DryRun {
		fmt.Println("Dry run: nothing was written")
	}
	for _, c := range r.Collections {
		fmt.Printf("%-10s %-8s %-8s eligible=%d created=%d updated=%d\n",
			c.Collection, c.Step, c.Mode, c.Summary.Eligible, c.Created, c.Updated)
		for _, w := range c.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		for _, e := range c.RenderErrors {
			fmt.Printf("  render error: %s\n", e)
		}
	}
	for _, w := range r.ResolveWarnings {
		fmt.Printf("resolve: %s\n", w)
	}
	for _, e := range r.BurgURLErrors {
		fmt.Printf("burg url: %s\n", e)
	}
	fmt.Printf("Execution Time: %s\n", r.Duration.String())
}

func init() {
	RootCmd.AddCommand(importCmd)

	importCmd.Flags().String("object", "", "Read the export from this object in the storage bucket")
	importCmd.Flags().Bool("dry-run", false, "Plan every collection without writing")
	importCmd.Flags().Bool("recreate", false, "Drop existing collections and create them again")
	importCmd.Flags().Bool("confirm", false, "Confirm destructive operations")
	importCmd.Flags().Bool("upload", false, "Upload the run report to the storage bucket")
}
