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
		log.Println("creating swap_executions table...")
		if err := mghelper.CreateSchema(ctx, db, &swapstore.ExecutionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &swapstore.ExecutionDao{}, "hash", "state")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping swap_executions table...")
		return mghelper.DropTables(ctx, db, &swapstore.ExecutionDao{})
	})
}
