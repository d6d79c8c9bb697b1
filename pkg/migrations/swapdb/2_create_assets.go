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
		log.Println("creating assets table...")
		return mghelper.CreateSchema(ctx, db, &swapstore.AssetDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping assets table...")
		return mghelper.DropTables(ctx, db, &swapstore.AssetDao{})
	})
}
