package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/types"
)

type KycCase struct {
	ID             int64             `json:"id" gorm:"primaryKey"`
	UUID           uuid.UUID         `json:"uuid" gorm:"default:gen_random_uuid()"`
	MemberID       int64             `json:"member_id" validate:"required"`
	ChildAccountID null.Int64        `json:"child_account_id"`
	AccountType    types.AccountType `json:"account_type"`
	DocumentFront  string            `json:"document_front" validate:"required"`
	DocumentBack   string            `json:"document_back" validate:"required"`
	Selfie         string            `json:"selfie" validate:"required"`
	Status         types.KycStatus   `json:"status" gorm:"default:submitted"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	ReviewedAt     null.Time         `json:"reviewed_at"`
	ReviewerID     null.Int64        `json:"reviewer_id"`
	ReviewNotes    null.String       `json:"review_notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (k KycCase) Message() map[string]string {
	invalid_message := "kyc.case.missing_{field}"

	return validate.MS{
		"required": invalid_message,
	}
}

// Terminal reports whether this row reached a final review outcome. A
// terminal case is never advanced again; resubmission opens a new row.
func (k *KycCase) Terminal() bool {
	return k.Status == types.KycStatusApproved || k.Status == types.KycStatusRejected
}

func (k *KycCase) ChildAccount() *ChildAccount {
	if !k.ChildAccountID.Valid {
		return nil
	}

	child_account := &ChildAccount{}

	if result := config.DataBase.First(&child_account, "id = ?", k.ChildAccountID.Int64); result.Error != nil {
		return nil
	}

	return child_account
}

type KycCaseJSON struct {
	UUID        uuid.UUID         `json:"uuid"`
	AccountType types.AccountType `json:"account_type"`
	Status      types.KycStatus   `json:"status"`
	SubmittedAt time.Time         `json:"submitted_at"`
	ReviewedAt  null.Time         `json:"reviewed_at"`
	ReviewNotes null.String       `json:"review_notes"`
}

func (k *KycCase) ToJSON() KycCaseJSON {
	return KycCaseJSON{
		UUID:        k.UUID,
		AccountType: k.AccountType,
		Status:      k.Status,
		SubmittedAt: k.SubmittedAt,
		ReviewedAt:  k.ReviewedAt,
		ReviewNotes: k.ReviewNotes,
	}
}
