package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/types"
)

type Commission struct {
	ID             int64                  `json:"id" gorm:"primaryKey"`
	AffiliateID    int64                  `json:"affiliate_id" gorm:"index"`
	ChildAccountID int64                  `json:"child_account_id"`
	SalePrice      decimal.Decimal        `json:"sale_price"`
	BaseCost       decimal.Decimal        `json:"base_cost"`
	Commission     decimal.Decimal        `json:"commission"`
	Status         types.CommissionStatus `json:"status" gorm:"default:pending"`
	PaidAt         null.Time              `json:"paid_at"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}
