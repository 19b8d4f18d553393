package admin_controllers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gookit/validate"
	"gorm.io/gorm"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/controllers/queries"
	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/services/kyc_service"
	"github.com/betconta/betconta/types"
)

func GetKycCases(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	params := new(queries.AdminKycQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	status := params.Status
	if status == "" {
		status = types.KycStatusSubmitted
	}

	var kyc_cases []*models.KycCase

	config.DataBase.Order("id asc").Offset(params.Page*params.Limit-params.Limit).Limit(params.Limit).Find(&kyc_cases, "status = ?", status)

	cases_json := make([]models.KycCaseJSON, 0)
	for _, kyc_case := range kyc_cases {
		cases_json = append(cases_json, kyc_case.ToJSON())
	}

	return c.Status(200).JSON(cases_json)
}

type ReviewKycParams struct {
	Status types.KycStatus `json:"status" form:"status" validate:"required"`
	Notes  string          `json:"notes" form:"notes"`
}

func (p ReviewKycParams) Messages() map[string]string {
	return validate.MS{
		"required": "admin.kyc.missing_{field}",
	}
}

// ReviewKycCase advances a case along the review state machine. A
// terminal outcome on a child case also moves the account status and
// drops the dashboard cache entry.
func ReviewKycCase(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(ReviewKycParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	case_uuid, err := uuid.Parse(c.Params("uuid"))
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.kyc.invalid_uuid"},
		})
	}

	kyc_case := &models.KycCase{}

	result := config.DataBase.First(&kyc_case, "uuid = ?", case_uuid)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	service := kyc_service.NewService(kyc_service.NewGormStore(config.DataBase))

	reviewed, err := service.SetStatus(kyc_case.ID, params.Status, CurrentUser.ID, params.Notes)
	if err != nil {
		if errors.Is(err, kyc_service.ErrCaseNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{err.Error()},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	if child_account := reviewed.ChildAccount(); child_account != nil {
		config.Redis.DeleteKey(child_account.CacheKey())
	}

	member := &models.Member{}
	if result := config.DataBase.First(&member, "id = ?", reviewed.MemberID); result.Error == nil {
		payload, _ := json.Marshal(reviewed.ToJSON())
		mq_client.EnqueueEvent("private", member.UID, "kyc.reviewed", payload)
	}

	return c.Status(200).JSON(reviewed.ToJSON())
}
