package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderwise/internal/models/db_models"
)

// ErrDuplicate reports a unique index violation on insert.
var ErrDuplicate = errors.New("duplicate key")

func uniqueViolation(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	ListSavedDestinations(ctx context.Context, accountID uuid.UUID) ([]db_models.SavedDestination, error)
	FindSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) (*db_models.SavedDestination, error)
	InsertSavedDestination(ctx context.Context, saved *db_models.SavedDestination) error
	DeleteSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) (bool, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return uniqueViolation(a.db.WithContext(ctx).Create(account).Error)
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {

	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "LOWER(email) = LOWER(?)", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{BaseModel: db_models.BaseModel{ID: id}}).
		Updates(fields).Error
}

func (a *accountRepository) ListSavedDestinations(ctx context.Context, accountID uuid.UUID) ([]db_models.SavedDestination, error) {
	var saved []db_models.SavedDestination
	err := a.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Preload("City").
		Order("saved_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (a *accountRepository) FindSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) (*db_models.SavedDestination, error) {
	var saved db_models.SavedDestination
	err := a.db.WithContext(ctx).
		Where("account_id = ? AND city_id = ?", accountID, cityID).
		First(&saved).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &saved, nil
}

func (a *accountRepository) InsertSavedDestination(ctx context.Context, saved *db_models.SavedDestination) error {
	return uniqueViolation(a.db.WithContext(ctx).Create(saved).Error)
}

// Saved destinations are hard deleted so the (account, city) pair can be saved again.
func (a *accountRepository) DeleteSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) (bool, error) {
	res := a.db.WithContext(ctx).
		Unscoped().
		Where("account_id = ? AND city_id = ?", accountID, cityID).
		Delete(&db_models.SavedDestination{})
	return res.RowsAffected > 0, res.Error
}
