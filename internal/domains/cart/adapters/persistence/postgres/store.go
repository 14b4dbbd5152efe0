package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wollylully/storefront/internal/domains/cart/domain"
	"github.com/wollylully/storefront/internal/domains/cart/ports"
)

var _ ports.Store = (*Store)(nil)

// DefaultCartTTL bounds how long an untouched cart slot survives before
// the purger reclaims it.
const DefaultCartTTL = 30 * 24 * time.Hour

// Store persists cart slots in PostgreSQL using GORM. One row per cart
// key, holding the serialized line list.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewStore wires a PostgreSQL-backed cart store. Caller manages DB lifecycle.
func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	store := &Store{db: db, logger: logger}
	if db != nil {
		_ = db.AutoMigrate(&cartRecord{})
	}
	return store
}

// cartRecord maps a cart slot to a relational row.
type cartRecord struct {
	Key       string    `gorm:"primaryKey;column:cart_key;size:128"`
	Payload   []byte    `gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (cartRecord) TableName() string { return "carts" }

// Load reads the slot fresh. A missing row or a payload that fails to
// decode loads as an empty cart; the failure is logged, never surfaced.
func (s *Store) Load(ctx context.Context, key string) (domain.Cart, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var record cartRecord
	if err := s.db.WithContext(ctx).First(&record, "cart_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cart{}, nil
		}
		return nil, err
	}
	cart := decodeCart(record.Payload)
	if len(cart) == 0 && len(record.Payload) > 2 {
		s.logWarn(ctx, "cart payload unreadable, resetting to empty", key)
	}
	return cart, nil
}

// Save replaces the slot's contents wholesale.
func (s *Store) Save(ctx context.Context, key string, cart domain.Cart) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	payload, err := encodeCart(cart)
	if err != nil {
		return err
	}
	record := cartRecord{Key: key, Payload: payload}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_key"}},
			DoUpdates: clause.Assignments(map[string]any{
				"payload":    payload,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error
}

// PurgeStale removes cart slots untouched for longer than ttl. Used by
// the cart-purger housekeeping command.
func (s *Store) PurgeStale(ctx context.Context, ttl time.Duration) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	cutoff := time.Now().Add(-ttl)
	result := s.db.WithContext(ctx).Where("updated_at <= ?", cutoff).Delete(&cartRecord{})
	return result.RowsAffected, result.Error
}

func (s *Store) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres cart store not configured")
	}
	return nil
}

func (s *Store) logWarn(ctx context.Context, msg, key string) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("cart.key", key))
}
