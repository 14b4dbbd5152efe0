package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wollylully/storefront/internal/domains/catalog/domain"
	"github.com/wollylully/storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads product cards from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB
// lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&productRecord{})
	}
	return repo
}

// productRecord maps a product card to a relational table.
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

// List returns all cards in featured display order.
func (r *Repository) List(ctx context.Context) ([]domain.ProductCard, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("display_order ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	cards := make([]domain.ProductCard, 0, len(records))
	for i := range records {
		cards = append(cards, records[i].toDomain())
	}
	return cards, nil
}

// Seed upserts the given cards, keyed by product id. Used to load the
// static prototype catalog into a fresh database.
func (r *Repository) Seed(ctx context.Context, cards []domain.ProductCard) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	for _, card := range cards {
		record := toRecord(card)
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toRecord(card domain.ProductCard) productRecord {
	return productRecord{
		ID:           card.ID,
		Name:         card.Name,
		PriceBand:    card.PriceBand,
		Price:        card.Price,
		DisplayOrder: card.DisplayOrder,
		Colour:       card.Colour,
		Fit:          card.Fit,
		Style:        card.Style,
		Material:     card.Material,
		Sizes:        pq.StringArray(card.Sizes),
		Image:        card.Image,
	}
}

func (r productRecord) toDomain() domain.ProductCard {
	return domain.ProductCard{
		ID:           r.ID,
		Name:         r.Name,
		PriceBand:    r.PriceBand,
		Price:        r.Price,
		DisplayOrder: r.DisplayOrder,
		Colour:       r.Colour,
		Fit:          r.Fit,
		Style:        r.Style,
		Material:     r.Material,
		Sizes:        []string(r.Sizes),
		Image:        r.Image,
	}
}
