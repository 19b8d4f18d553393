package models

import (
	"time"

	"github.com/volatiletech/null"

	"github.com/betconta/betconta/config"
)

type Member struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	UID         string      `json:"uid"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	State       string      `json:"state"`
	ReferralUID null.String `json:"referral_uid"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (m *Member) ChildAccounts() []*ChildAccount {
	var child_accounts []*ChildAccount

	config.DataBase.Order("id desc").Find(&child_accounts, "member_id = ?", m.ID)

	return child_accounts
}

func (m *Member) HavingReferraller() bool {
	return m.ReferralUID.Valid
}

// GetRefAffiliate resolves the affiliate whose referral code this member
// signed up with. Nil when the member has no referrer or the referrer
// never opted into the affiliate program.
func (m *Member) GetRefAffiliate() *Affiliate {
	if !m.ReferralUID.Valid {
		return nil
	}

	var affiliate *Affiliate

	if result := config.DataBase.First(&affiliate, "referral_code = ?", m.ReferralUID.String); result.Error != nil {
		return nil
	}

	return affiliate
}
