package midtrans

import (
	"context"

	"freshtrack/entities"

	"gorm.io/gorm"
)

type (
	MidtransRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error)
		UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *midtransRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *midtransRepository) UpdateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}
