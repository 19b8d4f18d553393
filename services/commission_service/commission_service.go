package commission_service

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/models/concerns"
	"github.com/betconta/betconta/types"
)

var (
	ErrAffiliateNotFound  = errors.New("record.not_found")
	ErrCommissionNotFound = errors.New("record.not_found")
	ErrPriceOutOfRange    = errors.New("referral.commission.price_out_of_range")
	ErrInvalidBounds      = errors.New("referral.settings.invalid_bounds")
)

var precision_validator = &concerns.PrecisionValidator{}

type Store interface {
	// FindAffiliate returns (nil, nil) when the affiliate does not exist.
	FindAffiliate(affiliateID int64) (*models.Affiliate, error)
	// RecordSale inserts the commission row and bumps the affiliate
	// running totals in one transaction.
	RecordSale(commission *models.Commission) error
	// MarkPaid flips a pending commission to paid, guarded on the
	// current status. Returns rows affected.
	MarkPaid(commissionID int64) (int64, error)
	// FindCommission returns (nil, nil) when the record does not exist.
	FindCommission(commissionID int64) (*models.Commission, error)
	UpdateSettings(affiliateID int64, minPrice, maxPrice decimal.Decimal) error
}

// Ledger books a commission each time a child account sold through an
// affiliate's referral link is paid for.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// RecordSale books commission = salePrice - baseCost. The price is
// checked against the affiliate's configured bounds before anything is
// written; a rejected sale leaves the ledger and the totals untouched.
func (l *Ledger) RecordSale(affiliateID, childAccountID int64, salePrice decimal.Decimal) (*models.Commission, error) {
	affiliate, err := l.store.FindAffiliate(affiliateID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}

	if !affiliate.PriceInRange(salePrice) {
		return nil, ErrPriceOutOfRange
	}

	commission := &models.Commission{
		AffiliateID:    affiliate.ID,
		ChildAccountID: childAccountID,
		SalePrice:      salePrice,
		BaseCost:       affiliate.BaseCost,
		Commission:     salePrice.Sub(affiliate.BaseCost),
		Status:         types.CommissionStatusPending,
	}

	if err := l.store.RecordSale(commission); err != nil {
		return nil, err
	}

	return commission, nil
}

// MarkPaid settles a commission. Idempotent: marking an already paid
// record again is a no-op.
func (l *Ledger) MarkPaid(commissionID int64) error {
	affected, err := l.store.MarkPaid(commissionID)
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	commission, err := l.store.FindCommission(commissionID)
	if err != nil {
		return err
	}
	if commission == nil {
		return ErrCommissionNotFound
	}

	// Already paid.
	return nil
}

// UpdateSettings changes an affiliate's sale price bounds. The range is
// validated here, at settings-update time, so RecordSale only ever sees
// self-consistent bounds.
func (l *Ledger) UpdateSettings(affiliateID int64, minPrice, maxPrice decimal.Decimal) error {
	affiliate, err := l.store.FindAffiliate(affiliateID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return ErrAffiliateNotFound
	}

	if minPrice.LessThan(affiliate.BaseCost) || maxPrice.LessThan(minPrice) {
		return ErrInvalidBounds
	}
	if !precision_validator.LessThanOrEqTo(minPrice, 2) || !precision_validator.LessThanOrEqTo(maxPrice, 2) {
		return ErrInvalidBounds
	}

	return l.store.UpdateSettings(affiliateID, minPrice, maxPrice)
}
