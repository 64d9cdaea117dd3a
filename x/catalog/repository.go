//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package catalog

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/soda-altruism/portal/core"
)

// Repository records publications and broadcasts them
type Repository interface {
	Create(ctx context.Context, record core.PublicationRecord) (core.PublicationRecord, error)
	GetByPublisher(ctx context.Context, publisher string) ([]core.PublicationRecord, error)
	Count(ctx context.Context) (int64, error)
	PublishEvent(ctx context.Context, event core.CatalogEvent) error
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewRepository creates a new catalog repository
func NewRepository(db *gorm.DB, rdb *redis.Client) Repository {
	return &repository{db, rdb}
}

func (r *repository) Create(ctx context.Context, record core.PublicationRecord) (core.PublicationRecord, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		span.RecordError(err)
		return core.PublicationRecord{}, err
	}

	return record, nil
}

func (r *repository) GetByPublisher(ctx context.Context, publisher string) ([]core.PublicationRecord, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.GetByPublisher")
	defer span.End()

	var records []core.PublicationRecord
	err := r.db.WithContext(ctx).Where("publisher = ?", publisher).Order("c_date desc").Find(&records).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return records, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.PublicationRecord{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}

// PublishEvent broadcasts a publication to socket subscribers
func (r *repository) PublishEvent(ctx context.Context, event core.CatalogEvent) error {
	ctx, span := tracer.Start(ctx, "Catalog.Repository.PublishEvent")
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.rdb.Publish(ctx, core.CatalogEventChannel, string(payload)).Err()
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}
