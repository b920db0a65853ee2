package repository

import (
	"context"
	"errors"
	"file-shop-demo/internal/model"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("purchase record not found")

type PurchaseRepository interface {
	Append(ctx context.Context, record *model.PurchaseRecord) error
	FindByFileID(ctx context.Context, fileID int) (*model.PurchaseRecord, error)
	HasPurchase(ctx context.Context, fileID int) (bool, error)
	List(ctx context.Context) ([]*model.PurchaseRecord, error)
	Clear(ctx context.Context) error
}

type purchaseRepoImpl struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepoImpl{
		db: db,
	}
}

func (r *purchaseRepoImpl) Append(ctx context.Context, record *model.PurchaseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByFileID returns the earliest record for the file. The ledger does not
// dedup, so the first append stays authoritative for re-downloads.
func (r *purchaseRepoImpl) FindByFileID(ctx context.Context, fileID int) (*model.PurchaseRecord, error) {
	var record model.PurchaseRecord
	err := r.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("id asc").
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *purchaseRepoImpl) HasPurchase(ctx context.Context, fileID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseRecord{}).
		Where("file_id = ?", fileID).
		Count(&count).Error

	return count > 0, err
}

func (r *purchaseRepoImpl) List(ctx context.Context) ([]*model.PurchaseRecord, error) {
	var records []*model.PurchaseRecord
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

// Clear empties the ledger at session end (logout).
func (r *purchaseRepoImpl) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.PurchaseRecord{}).Error
}
