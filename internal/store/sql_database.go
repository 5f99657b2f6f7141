package store

import (
	"github.com/veridict/veridict/migrations"
)

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
