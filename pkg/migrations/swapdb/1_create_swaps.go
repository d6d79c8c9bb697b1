package swapdb

import (
	"context"
	"log"

	mghelper "github.com/chainsafe/navette/pkg/pgutil/migrations"
	"github.com/chainsafe/navette/pkg/swapstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating swaps table...")
		if err := mghelper.CreateSchema(ctx, db, &swapstore.SwapDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &swapstore.SwapDao{}, "user_address", "executed")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping swaps table...")
		return mghelper.DropTables(ctx, db, &swapstore.SwapDao{})
	})
}
