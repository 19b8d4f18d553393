package pix_service

import (
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

// GormStore backs the registry with postgres. The partial unique index
// idx_pix_keys_active_slot on (child_account_id, key_type) WHERE
// is_active enforces the slot invariant at the storage layer; this
// store translates that violation into ErrConflict. Supersede also
// locks the owning account row, so concurrent activations on one
// account serialize instead of racing the index.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindChildAccount(childAccountID int64) (*models.ChildAccount, error) {
	child_account := &models.ChildAccount{}

	result := s.db.First(child_account, "id = ?", childAccountID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return child_account, nil
}

func (s *GormStore) Supersede(key *models.PixKey, closedAt time.Time) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		child_account := &models.ChildAccount{}
		if err := models.Lock(tx).First(child_account, "id = ?", key.ChildAccountID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.PixKey{}).
			Where("child_account_id = ? AND key_type = ? AND is_active = ?", key.ChildAccountID, key.KeyType, true).
			Updates(map[string]interface{}{"is_active": false, "closed_at": null.TimeFrom(closedAt)}).Error; err != nil {
			return err
		}

		return tx.Create(key).Error
	})

	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrConflict
	}

	return err
}

func (s *GormStore) CloseActive(childAccountID int64, keyType types.PixKeyType, closedAt time.Time) (int64, error) {
	result := s.db.Model(&models.PixKey{}).
		Where("child_account_id = ? AND key_type = ? AND is_active = ?", childAccountID, keyType, true).
		Updates(map[string]interface{}{"is_active": false, "closed_at": null.TimeFrom(closedAt)})

	return result.RowsAffected, result.Error
}

func (s *GormStore) ActiveKey(childAccountID int64, keyType types.PixKeyType) (*models.PixKey, error) {
	key := &models.PixKey{}

	result := s.db.First(key, "child_account_id = ? AND key_type = ? AND is_active = ?", childAccountID, keyType, true)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return key, nil
}

func (s *GormStore) KeysByChild(childAccountID int64) ([]*models.PixKey, error) {
	var keys []*models.PixKey

	result := s.db.Order("id desc").Find(&keys, "child_account_id = ?", childAccountID)

	return keys, result.Error
}

func (s *GormStore) CloseExpired(cutoff time.Time, closedAt time.Time) (int64, error) {
	result := s.db.Model(&models.PixKey{}).
		Where("is_active = ? AND created_at < ?", true, cutoff).
		Updates(map[string]interface{}{"is_active": false, "closed_at": null.TimeFrom(closedAt)})

	return result.RowsAffected, result.Error
}
