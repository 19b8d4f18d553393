package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
)

type Affiliate struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	MemberID        int64           `json:"member_id" gorm:"uniqueIndex"`
	ReferralCode    string          `json:"referral_code" gorm:"uniqueIndex"`
	MinPrice        decimal.Decimal `json:"min_price" gorm:"default:90.0"`
	MaxPrice        decimal.Decimal `json:"max_price" gorm:"default:130.0"`
	BaseCost        decimal.Decimal `json:"base_cost" gorm:"default:90.0"`
	TotalSales      int64           `json:"total_sales" gorm:"default:0"`
	TotalCommission decimal.Decimal `json:"total_commission" gorm:"default:0.0"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (a *Affiliate) Member() *Member {
	member := &Member{}

	config.DataBase.First(&member, "id = ?", a.MemberID)

	return member
}

// PriceInRange checks a sale price against the bounds configured for
// this affiliate. Bounds themselves are validated at settings-update
// time, not here.
func (a *Affiliate) PriceInRange(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(a.MinPrice) && price.LessThanOrEqual(a.MaxPrice)
}

type AffiliateJSON struct {
	ReferralCode    string          `json:"referral_code"`
	MinPrice        decimal.Decimal `json:"min_price"`
	MaxPrice        decimal.Decimal `json:"max_price"`
	BaseCost        decimal.Decimal `json:"base_cost"`
	TotalSales      int64           `json:"total_sales"`
	TotalCommission decimal.Decimal `json:"total_commission"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (a *Affiliate) ToJSON() AffiliateJSON {
	return AffiliateJSON{
		ReferralCode:    a.ReferralCode,
		MinPrice:        a.MinPrice,
		MaxPrice:        a.MaxPrice,
		BaseCost:        a.BaseCost,
		TotalSales:      a.TotalSales,
		TotalCommission: a.TotalCommission,
		CreatedAt:       a.CreatedAt,
	}
}
