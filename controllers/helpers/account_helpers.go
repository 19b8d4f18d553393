package helpers

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/models"
)

// FindChildAccountByUUID resolves a child account from its public uuid,
// scoped to the owning member. Returns nil when it does not exist or
// belongs to someone else; the caller answers 404 either way so account
// existence is not leaked across members.
func FindChildAccountByUUID(member *models.Member, raw string) *models.ChildAccount {
	account_uuid, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	child_account := &models.ChildAccount{}

	result := config.DataBase.First(&child_account, "uuid = ? AND member_id = ?", account_uuid, member.ID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	if result.Error != nil {
		return nil
	}

	return child_account
}
