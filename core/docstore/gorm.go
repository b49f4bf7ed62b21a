package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rwk-afmg/core/database"
	"rwk-afmg/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRecord is the relational row behind one document.
type DocumentRecord struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Collection string    `gorm:"size:64;not null;index:idx_documents_collection_position,priority:1"`
	Position   int       `gorm:"not null;index:idx_documents_collection_position,priority:2"`
	SourceID   int       `gorm:"not null"`
	Name       string    `gorm:"size:255;not null"`
	Content    string    `gorm:"type:text"`
	Flags      string    `gorm:"type:text"`
	Permission int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the table name used by DocumentRecord.
func (DocumentRecord) TableName() string {
	return "documents"
}

// GormStore persists documents in a relational database through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of an open connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the documents table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&DocumentRecord{}); err != nil {
		return fmt.Errorf("failed to migrate documents: %w", err)
	}
	return nil
}

// DocumentColumns are the columns the documents table must have.
var DocumentColumns = []string{"id", "collection", "position", "source_id", "name", "content", "flags", "permission", "created_at", "updated_at"}

// CheckSchema returns the document columns missing from the database.
func (s *GormStore) CheckSchema(ctx context.Context) ([]string, error) {
	return database.MissingColumns(s.db.WithContext(ctx), DocumentRecord{}.TableName(), DocumentColumns)
}

func (s *GormStore) List(ctx context.Context, collection string) ([]reconcile.Materialized, error) {
	var rows []DocumentRecord
	err := s.db.WithContext(ctx).
		Select("id", "source_id").
		Where("collection = ?", collection).
		Order("position").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]reconcile.Materialized, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.Materialized{Identity: r.ID, SourceID: r.SourceID})
	}
	return out, nil
}

func (s *GormStore) CreateMany(ctx context.Context, collection string, docs []reconcile.Document) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(docs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var offset int64
		if err := tx.Model(&DocumentRecord{}).Where("collection = ?", collection).Count(&offset).Error; err != nil {
			return err
		}

		records := make([]DocumentRecord, 0, len(docs))
		for i, d := range docs {
			flags, err := encodeFlags(d.Flags)
			if err != nil {
				return err
			}
			id := uuid.NewString()
			records = append(records, DocumentRecord{
				ID:         id,
				Collection: collection,
				Position:   int(offset) + i,
				SourceID:   d.SourceID,
				Name:       d.Name,
				Content:    d.Content,
				Flags:      flags,
				Permission: d.Permission,
			})
			ids = append(ids, id)
		}

		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *GormStore) UpdateMany(ctx context.Context, collection string, updates []reconcile.Update) error {
	if len(updates) == 0 {
		return nil
	}

	ids := make([]string, 0, len(updates))
	seen := make(map[string]struct{}, len(updates))
	for _, u := range updates {
		if _, ok := seen[u.Identity]; !ok {
			seen[u.Identity] = struct{}{}
			ids = append(ids, u.Identity)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// MySQL reports changed rows, not matched rows, so existence is checked up front.
		var found int64
		if err := tx.Model(&DocumentRecord{}).Where("collection = ? AND id IN ?", collection, ids).Count(&found).Error; err != nil {
			return err
		}
		if int(found) != len(ids) {
			return fmt.Errorf("%s: %d of %d documents: %w", collection, len(ids)-int(found), len(ids), ErrNotFound)
		}

		for _, u := range updates {
			flags, err := encodeFlags(u.Document.Flags)
			if err != nil {
				return err
			}
			err = tx.Model(&DocumentRecord{}).
				Where("id = ? AND collection = ?", u.Identity, collection).
				Updates(map[string]any{
					"name":      u.Document.Name,
					"content":   u.Document.Content,
					"source_id": u.Document.SourceID,
					"flags":     flags,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) Drop(ctx context.Context, collection string) error {
	return s.db.WithContext(ctx).Where("collection = ?", collection).Delete(&DocumentRecord{}).Error
}

func (s *GormStore) Documents(ctx context.Context, collection string) ([]reconcile.Stored, error) {
	var rows []DocumentRecord
	if err := s.db.WithContext(ctx).Where("collection = ?", collection).Order("position").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]reconcile.Stored, 0, len(rows))
	for _, r := range rows {
		flags, err := decodeFlags(r.Flags)
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", r.ID, err)
		}
		out = append(out, reconcile.Stored{
			Identity: r.ID,
			Document: reconcile.Document{
				Name:       r.Name,
				Content:    r.Content,
				SourceID:   r.SourceID,
				Flags:      flags,
				Permission: r.Permission,
			},
		})
	}
	return out, nil
}

// Collections returns the distinct collection names present in the table.
func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&DocumentRecord{}).Distinct("collection").Pluck("collection", &names).Error
	return names, err
}

func encodeFlags(flags map[string]any) (string, error) {
	if len(flags) == 0 {
		return "", nil
	}
	data, err := json.Marshal(flags)
	if err != nil {
		return "", fmt.Errorf("failed to encode flags: %w", err)
	}
	return string(data), nil
}

func decodeFlags(raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var flags map[string]any
	if err := json.Unmarshal([]byte(raw), &flags); err != nil {
		return nil, fmt.Errorf("failed to decode flags: %w", err)
	}
	return flags, nil
}
