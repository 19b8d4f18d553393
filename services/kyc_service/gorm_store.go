package kyc_service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) InsertCase(kyc_case *models.KycCase) error {
	return s.db.Create(kyc_case).Error
}

func (s *GormStore) FindCase(caseID int64) (*models.KycCase, error) {
	kyc_case := &models.KycCase{}

	result := s.db.First(kyc_case, "id = ?", caseID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return kyc_case, nil
}

func (s *GormStore) ApplyReview(kyc_case *models.KycCase, from types.KycStatus, propagate bool) (bool, error) {
	applied := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.KycCase{}).
			Where("id = ? AND status = ?", kyc_case.ID, from).
			Updates(map[string]interface{}{
				"status":       kyc_case.Status,
				"reviewer_id":  kyc_case.ReviewerID,
				"reviewed_at":  kyc_case.ReviewedAt,
				"review_notes": kyc_case.ReviewNotes,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		applied = true

		if propagate {
			status := types.AccountStatusApproved
			if kyc_case.Status == types.KycStatusRejected {
				status = types.AccountStatusRejected
			}

			return tx.Model(&models.ChildAccount{}).
				Where("id = ?", kyc_case.ChildAccountID.Int64).
				Update("status", status).Error
		}

		return nil
	})

	return applied, err
}
