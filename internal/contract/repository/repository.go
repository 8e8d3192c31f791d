package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/smallbiznis/lockerdocs/internal/contract/domain"
)

type gormRepository struct{}

// Provide constructs the gorm-backed contract repository.
func Provide() domain.Repository {
	return gormRepository{}
}

func (gormRepository) Insert(ctx context.Context, db *gorm.DB, contract *domain.Contract) error {
	return db.WithContext(ctx).Create(contract).Error
}

func (gormRepository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Contract, error) {
	var contract domain.Contract
	err := db.WithContext(ctx).First(&contract, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (gormRepository) InsertPayment(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (gormRepository) ListPayments(ctx context.Context, db *gorm.DB, contractID snowflake.ID) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("paid_at ASC, id ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
