package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pet-health/internal/adapters/storage/sqlstore"
	"pet-health/internal/domain/export"
	"pet-health/internal/domain/owners"
	"pet-health/internal/domain/pets"
	"pet-health/internal/domain/records"
)

var exportOpenID string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print an owner's full data export as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		o, err := owners.NewService(sqlstore.NewOwnersRepo(db), nil, nil).Lookup(ctx, exportOpenID)
		if err != nil {
			return err
		}

		petsSvc := pets.NewService(sqlstore.NewPetsRepo(db))
		recordsSvc := records.NewService(sqlstore.NewRecordsRepo(db), sqlstore.NewTxManager(db), loc)

		out, err := export.NewService(petsSvc, recordsSvc).ForOwner(ctx, o.ID)
		if err != nil {
			return err
		}

		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOpenID, "open-id", "", "owner openId")
	_ = exportCmd.MarkFlagRequired("open-id")
}
