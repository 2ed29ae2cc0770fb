package cart

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the durable row behind one cart: the versioned JSON payload
// keyed by cart ID. There is exactly one row per cart.
type Record struct {
	ID        string `gorm:"primaryKey;type:char(36)"`
	Payload   []byte `gorm:"type:blob;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Record) TableName() string { return "cart_records" }

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// Migrate creates the cart_records table. The local SQLite file has no
// external migration pipeline, so the schema is applied at startup.
func (r *Repo) Migrate() error {
	return r.db.AutoMigrate(&Record{})
}

func (r *Repo) Save(ctx context.Context, cartID string, payload []byte) error {
	rec := Record{ID: cartID, Payload: payload}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error
}

func (r *Repo) Load(ctx context.Context, cartID string) ([]byte, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "id = ?", cartID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return rec.Payload, nil
}
