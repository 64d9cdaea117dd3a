//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package policy

import (
	"context"

	"gorm.io/gorm"

	"github.com/soda-altruism/portal/core"
)

// Repository is the ledger of stored policies
type Repository interface {
	Create(ctx context.Context, record core.PolicyRecord) (core.PolicyRecord, error)
	GetByOwner(ctx context.Context, owner string) ([]core.PolicyRecord, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new policy repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, record core.PolicyRecord) (core.PolicyRecord, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&record).Error
	if err != nil {
		span.RecordError(err)
		return core.PolicyRecord{}, err
	}

	return record, nil
}

func (r *repository) GetByOwner(ctx context.Context, owner string) ([]core.PolicyRecord, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.GetByOwner")
	defer span.End()

	var records []core.PolicyRecord
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("c_date desc").Find(&records).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return records, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.PolicyRecord{}).Count(&count).Error
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}
