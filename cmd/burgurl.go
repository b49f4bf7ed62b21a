package cmd

import (
	"fmt"

	"rwk-afmg/feature/world"

	"github.com/spf13/cobra"
)

// burgURLCmd represents the burg-url command
var burgURLCmd = &cobra.Command{
	Use:   "burg-url [export.map]",
	Short: "Print the city generator URL of a burg",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		object, _ := cmd.Flags().GetString("object")
		rawID, _ := cmd.Flags().GetString("id")

		id, err := world.ParseBurgID(rawID)
		if err != nil {
			return err
		}

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		text, _, err := a.readExport(ctx, args, object)
		if err != nil {
			return err
		}

		url, err := a.service().BurgURL(text, id)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(burgURLCmd)

	burgURLCmd.Flags().String("object", "", "Read the export from this object in the storage bucket")
	burgURLCmd.Flags().String("id", "", "Burg ID")
	_ = burgURLCmd.MarkFlagRequired("id")
}
