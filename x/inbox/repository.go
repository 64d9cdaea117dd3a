//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package inbox

import (
	"context"

	"gorm.io/gorm"

	"github.com/soda-altruism/portal/core"
)

// Repository is the ledger of access requests sent
type Repository interface {
	Create(ctx context.Context, record core.AccessRequestRecord) (core.AccessRequestRecord, error)
	GetByRequester(ctx context.Context, requester string) ([]core.AccessRequestRecord, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new inbox repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, record core.AccessRequestRecord) (core.AccessRequestRecord, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		span.RecordError(err)
		return core.AccessRequestRecord{}, err
	}

	return record, nil
}

func (r *repository) GetByRequester(ctx context.Context, requester string) ([]core.AccessRequestRecord, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.GetByRequester")
	defer span.End()

	var records []core.AccessRequestRecord
	err := r.db.WithContext(ctx).Where("requester = ?", requester).Order("c_date desc").Find(&records).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return records, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Inbox.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.AccessRequestRecord{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
