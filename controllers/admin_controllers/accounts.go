package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gookit/validate"
	"gorm.io/gorm"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

type SetAccountStatusParams struct {
	Status types.AccountStatus `json:"status" form:"status" validate:"required|VaildateStatus"`
}

func (p SetAccountStatusParams) Messages() map[string]string {
	return validate.MS{
		"required":       "admin.account.missing_status",
		"VaildateStatus": "admin.account.invalid_status",
	}
}

func (p SetAccountStatusParams) VaildateStatus(Status types.AccountStatus) bool {
	switch Status {
	case types.AccountStatusPending, types.AccountStatusActive, types.AccountStatusApproved, types.AccountStatusRejected:
		return true
	default:
		return false
	}
}

// SetChildAccountStatus is the back-office escape hatch: it moves the
// authoritative account status directly, without touching the KYC case
// trail. The display derivation lets this value win.
func SetChildAccountStatus(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	params := new(SetAccountStatusParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	account_uuid, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.account.invalid_uuid"},
		})
	}

	child_account := &models.ChildAccount{}

	result := config.DataBase.First(&child_account, "uuid = ?", account_uuid)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if err := config.DataBase.Model(&child_account).Update("status", params.Status).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	config.Redis.DeleteKey(child_account.CacheKey())

	return c.Status(200).JSON(child_account.ToJSON())
}
