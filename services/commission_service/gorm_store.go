package commission_service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
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

func (s *GormStore) FindAffiliate(affiliateID int64) (*models.Affiliate, error) {
	affiliate := &models.Affiliate{}

	result := s.db.First(affiliate, "id = ?", affiliateID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return affiliate, nil
}

func (s *GormStore) RecordSale(commission *models.Commission) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(commission).Error; err != nil {
			return err
		}

		return tx.Model(&models.Affiliate{}).
			Where("id = ?", commission.AffiliateID).
			Updates(map[string]interface{}{
				"total_sales":      gorm.Expr("total_sales + 1"),
				"total_commission": gorm.Expr("total_commission + ?", commission.Commission),
			}).Error
	})
}

func (s *GormStore) MarkPaid(commissionID int64) (int64, error) {
	result := s.db.Model(&models.Commission{}).
		Where("id = ? AND status = ?", commissionID, types.CommissionStatusPending).
		Updates(map[string]interface{}{
			"status":  types.CommissionStatusPaid,
			"paid_at": null.TimeFrom(time.Now()),
		})

	return result.RowsAffected, result.Error
}

func (s *GormStore) FindCommission(commissionID int64) (*models.Commission, error) {
	commission := &models.Commission{}

	result := s.db.First(commission, "id = ?", commissionID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return commission, nil
}

func (s *GormStore) UpdateSettings(affiliateID int64, minPrice, maxPrice decimal.Decimal) error {
	return s.db.Model(&models.Affiliate{}).
		Where("id = ?", affiliateID).
		Updates(map[string]interface{}{
			"min_price": minPrice,
			"max_price": maxPrice,
		}).Error
}
