package cmd

import (
	"fmt"

	"rwk-afmg/core/docstore"
	"rwk-afmg/feature/world/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity [export.map]",
	Short: "Check whether an export can be reconciled safely",
	Long: `Plans every collection of an export against the document store without
writing. Reports the collections whose entity count or order no longer matches
what was materialized, together with resolution and burg URL problems.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		object, _ := cmd.Flags().GetString("object")

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		if checker, ok := a.docs.(docstore.SchemaChecker); ok {
			missing, err := checker.CheckSchema(ctx)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				return fmt.Errorf("documents table is missing columns %v", missing)
			}
			a.logger.Info("Document schema is intact.")
		}

		text, _, err := a.readExport(ctx, args, object)
		if err != nil {
			return err
		}

		report, err := a.service().Import(ctx, text, importer.Options{DryRun: true})
		if err != nil {
			return err
		}

		warnings := report.Warnings()
		fmt.Println("\n=== Integrity ===")
		for _, c := range report.Collections {
			status := "ok"
			if len(c.Warnings) > 0 {
				status = "blocked"
			}
			fmt.Printf("%-10s %-8s %-8s prior=%d eligible=%d\n", c.Collection, c.Step, status, c.Summary.Prior, c.Summary.Eligible)
			for _, w := range c.Warnings {
				fmt.Printf("  %s\n", w)
			}
		}
		fmt.Printf("Resolve warnings: %d\n", len(report.ResolveWarnings))
		fmt.Printf("Burg URL errors: %d\n", len(report.BurgURLErrors))

		a.logger.Info("Integrity check completed",
			zap.Int("integrity_warnings", len(warnings)),
			zap.Int("resolve_warnings", len(report.ResolveWarnings)),
			zap.Int("burg_url_errors", len(report.BurgURLErrors)),
		)

		if len(warnings) > 0 {
			return fmt.Errorf("%d integrity warning(s); run import with --recreate --confirm to rebuild", len(warnings))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)

	integrityCmd.Flags().String("object", "", "Read the export from this object in the storage bucket")
}
