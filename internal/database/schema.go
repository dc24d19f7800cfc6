package database

import (
	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/entities"
)

// schemaModels lists every table owned by the store.
var schemaModels = []any{
	&entities.Student{},
	&entities.PaymentRecord{},
	&entities.AttendanceLog{},
	&entities.Itinerary{},
}

// EnsureSchema creates the four tables and their indexes when missing. It is
// safe to call on every start and never drops data.
func (d *Database) EnsureSchema() error {
	if err := d.DB.AutoMigrate(schemaModels...); err != nil {
		return &dberrors.StorageInitError{Path: d.path, Op: "schema", Err: err}
	}
	return nil
}
