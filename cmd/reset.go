package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop every materialized collection",
	Long:  `Deletes all imported documents from the document store. The next import creates every collection from scratch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			return errors.New("reset deletes every imported document; pass --confirm to proceed")
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		dropped, err := a.service().Reset(cmd.Context())
		if err != nil {
			return err
		}

		a.logger.Info("Document store reset", zap.Strings("collections", dropped))
		fmt.Printf("Dropped %d collection(s)\n", len(dropped))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resetCmd)

	resetCmd.Flags().Bool("confirm", false, "Confirm deletion")
}
