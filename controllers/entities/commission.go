package entities

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/types"
)

type CommissionEntity struct {
	ID             int64                  `json:"id"`
	ChildAccountID int64                  `json:"child_account_id"`
	SalePrice      decimal.Decimal        `json:"sale_price"`
	BaseCost       decimal.Decimal        `json:"base_cost"`
	Commission     decimal.Decimal        `json:"commission"`
	Status         types.CommissionStatus `json:"status"`
	PaidAt         null.Time              `json:"paid_at"`
	CreatedAt      time.Time              `json:"created_at"`
}
