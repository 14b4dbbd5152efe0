package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&cartRecord{},
		&productRecord{},
	)
}

// Cart schema mirrors the cart Postgres store.
type cartRecord struct {
	Key       string    `gorm:"primaryKey;column:cart_key;size:128"`
	Payload   []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (cartRecord) TableName() string { return "carts" }

// Product schema mirrors the catalog Postgres repository.
type productRecord struct {
	ID           string         `gorm:"primaryKey;column:id;size:128"`
	Name         string         `gorm:"column:name"`
	PriceBand    string         `gorm:"column:price_band;size:32;index"`
	Price        float64        `gorm:"column:price"`
	DisplayOrder int            `gorm:"column:display_order;index"`
	Colour       string         `gorm:"column:colour;size:32;index"`
	Fit          string         `gorm:"column:fit;size:32"`
	Style        string         `gorm:"column:style;size:32"`
	Material     string         `gorm:"column:material;size:32"`
	Sizes        pq.StringArray `gorm:"column:sizes;type:text[]"`
	Image        string         `gorm:"column:image"`
}

func (productRecord) TableName() string { return "products" }
