package kyc_controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
	"github.com/volatiletech/null"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/entities"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/services/kyc_service"
)

type SubmitKycParams struct {
	ChildAccountUUID string `json:"child_account_uuid" form:"child_account_uuid"`
	DocumentFront    string `json:"document_front" form:"document_front" validate:"required"`
	DocumentBack     string `json:"document_back" form:"document_back" validate:"required"`
	Selfie           string `json:"selfie" form:"selfie" validate:"required"`
}

func (p SubmitKycParams) Messages() map[string]string {
	return validate.MS{
		"required": "kyc.case.missing_{field}",
	}
}

// SubmitKyc opens a new verification case. Without a child account uuid
// the case concerns the master account itself.
func SubmitKyc(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(SubmitKycParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	childAccountID := null.Int64{}
	if params.ChildAccountUUID != "" {
		child_account := helpers.FindChildAccountByUUID(CurrentUser, params.ChildAccountUUID)
		if child_account == nil {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{"record.not_found"},
			})
		}

		childAccountID = null.Int64From(child_account.ID)
	}

	service := kyc_service.NewService(kyc_service.NewGormStore(config.DataBase))

	kyc_case, err := service.Submit(CurrentUser.ID, childAccountID, kyc_service.Documents{
		Front:  params.DocumentFront,
		Back:   params.DocumentBack,
		Selfie: params.Selfie,
	})
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	payload, _ := json.Marshal(kyc_case.ToJSON())
	mq_client.EnqueueEvent("private", CurrentUser.UID, "kyc.submitted", payload)
	// Feed the back-office review queue so the case lands in front of a
	// reviewer without polling.
	mq_client.Enqueue("kyc_review", payload)

	return c.Status(201).JSON(kyc_case.ToJSON())
}

// GetKycStatus serves the composite verification view for a child
// account: the authoritative display status plus the case audit trail.
func GetKycStatus(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	var kyc_cases []*models.KycCase

	config.DataBase.Order("id desc").Find(&kyc_cases, "child_account_id = ?", child_account.ID)

	var latest *models.KycCase
	cases_json := make([]models.KycCaseJSON, 0)

	for i, kyc_case := range kyc_cases {
		if i == 0 {
			latest = kyc_case
		}
		cases_json = append(cases_json, kyc_case.ToJSON())
	}

	return c.Status(200).JSON(entities.KycStatusEntity{
		AccountUUID:   child_account.UUID,
		AccountStatus: child_account.Status,
		DisplayStatus: kyc_service.DeriveDisplayStatus(child_account, latest),
		Cases:         cases_json,
	})
}
