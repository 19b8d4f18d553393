package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/types"
)

type ChildAccount struct {
	ID             int64               `json:"id" gorm:"primaryKey"`
	UUID           uuid.UUID           `json:"uuid" gorm:"default:gen_random_uuid()"`
	MemberID       int64               `json:"member_id" validate:"required"`
	Name           string              `json:"name" validate:"required"`
	CPF            string              `json:"cpf" gorm:"uniqueIndex" validate:"required|ValidateCPF"`
	DocumentNumber string              `json:"document_number" gorm:"uniqueIndex" validate:"required"`
	Email          string              `json:"email" validate:"required|email"`
	Status         types.AccountStatus `json:"status" gorm:"default:pending"`
	Balance        decimal.Decimal     `json:"balance" gorm:"default:0.0" validate:"ValidateBalance"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (a ChildAccount) Message() map[string]string {
	invalid_message := "account.child.invalid_{field}"

	return validate.MS{
		"required": invalid_message,
	}
}

func (a ChildAccount) ValidateBalance(Balance decimal.Decimal) bool {
	return Balance.GreaterThanOrEqual(decimal.Zero)
}

func (a ChildAccount) ValidateCPF(CPF string) bool {
	if len(CPF) != 11 {
		return false
	}

	for _, c := range CPF {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func (a *ChildAccount) Member() *Member {
	member := &Member{}

	config.DataBase.First(&member, "id = ?", a.MemberID)

	return member
}

func (a *ChildAccount) PixKeys() []*PixKey {
	var pix_keys []*PixKey

	config.DataBase.Order("id desc").Find(&pix_keys, "child_account_id = ?", a.ID)

	return pix_keys
}

func (a *ChildAccount) LatestKycCase() *KycCase {
	kyc_case := &KycCase{}

	if result := config.DataBase.Order("id desc").First(&kyc_case, "child_account_id = ?", a.ID); result.Error != nil {
		return nil
	}

	return kyc_case
}

func (a *ChildAccount) CacheKey() string {
	return "betconta:child_account:" + strconv.FormatInt(a.MemberID, 10) + ":" + a.UUID.String()
}

type ChildAccountJSON struct {
	UUID           uuid.UUID           `json:"uuid"`
	Name           string              `json:"name"`
	CPF            string              `json:"cpf"`
	DocumentNumber string              `json:"document_number"`
	Email          string              `json:"email"`
	Status         types.AccountStatus `json:"status"`
	Balance        decimal.Decimal     `json:"balance"`
	CreatedAt      time.Time           `json:"created_at"`
}

func (a *ChildAccount) ToJSON() ChildAccountJSON {
	return ChildAccountJSON{
		UUID:           a.UUID,
		Name:           a.Name,
		CPF:            a.CPF,
		DocumentNumber: a.DocumentNumber,
		Email:          a.Email,
		Status:         a.Status,
		Balance:        a.Balance,
		CreatedAt:      a.CreatedAt,
	}
}
