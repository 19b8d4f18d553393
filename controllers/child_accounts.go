package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/entities"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/services/commission_service"
	"github.com/betconta/betconta/types"
)

type CreateChildAccountParams struct {
	Name           string `json:"name" form:"name" validate:"required"`
	CPF            string `json:"cpf" form:"cpf" validate:"required"`
	DocumentNumber string `json:"document_number" form:"document_number" validate:"required"`
	Email          string `json:"email" form:"email" validate:"required|email"`
}

func (p CreateChildAccountParams) Messages() map[string]string {
	invalid_message := "account.child.invalid_{field}"

	return validate.MS{
		"required": invalid_message,
		"email":    invalid_message,
	}
}

// CreateChildAccount onboards a sub-account. It starts in pending with
// no PIX key; keys are only issued by an explicit activation request.
func CreateChildAccount(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(CreateChildAccountParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	child_account := &models.ChildAccount{
		MemberID:       CurrentUser.ID,
		Name:           params.Name,
		CPF:            params.CPF,
		DocumentNumber: params.DocumentNumber,
		Email:          params.Email,
		Status:         types.AccountStatusPending,
		Balance:        decimal.Zero,
	}

	helpers.Vaildate(child_account, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if err := config.DataBase.Create(child_account).Error; err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"account.child.document_taken"},
		})
	}

	return c.Status(201).JSON(child_account.ToJSON())
}

func GetChildAccounts(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	child_accounts := CurrentUser.ChildAccounts()

	accounts_json := make([]models.ChildAccountJSON, 0)
	for _, child_account := range child_accounts {
		accounts_json = append(accounts_json, child_account.ToJSON())
	}

	return c.Status(200).JSON(accounts_json)
}

// GetChildAccount serves the dashboard detail view through a
// read-through cache. Writers invalidate the entry, so a miss is the
// only path that touches postgres.
func GetChildAccount(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	// The key is scoped to the owner so a cache hit can never leak
	// another member's account.
	var cached models.ChildAccountJSON
	cacheKey := "betconta:child_account:" + strconv.FormatInt(CurrentUser.ID, 10) + ":" + c.Params("uuid")

	if err := config.Redis.GetKey(cacheKey, &cached); err == nil {
		return c.Status(200).JSON(cached)
	}

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	account_json := child_account.ToJSON()

	config.Redis.SetKey(child_account.CacheKey(), account_json, 5*time.Minute)

	return c.Status(200).JSON(account_json)
}

type PayChildAccountParams struct {
	SalePrice decimal.Decimal `json:"sale_price" form:"sale_price" validate:"VaildateSalePrice"`
}

func (p PayChildAccountParams) Messages() map[string]string {
	return validate.MS{
		"VaildateSalePrice": "account.child.non_positive_sale_price",
	}
}

func (p PayChildAccountParams) VaildateSalePrice(SalePrice decimal.Decimal) bool {
	return SalePrice.IsPositive()
}

// PayChildAccount settles the onboarding sale. When the paying member
// signed up through an affiliate's referral link, the affiliate's
// commission is booked here.
func PayChildAccount(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(PayChildAccountParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	affiliate := CurrentUser.GetRefAffiliate()
	if affiliate == nil {
		return c.Status(200).JSON(child_account.ToJSON())
	}

	ledger := commission_service.NewLedger(commission_service.NewGormStore(config.DataBase))

	commission, err := ledger.RecordSale(affiliate.ID, child_account.ID, params.SalePrice)
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	config.InfluxDB.NewPoint(
		"commissions",
		map[string]string{"affiliate": affiliate.ReferralCode},
		map[string]interface{}{"commission": commission.Commission.InexactFloat64()},
	)

	payload, _ := json.Marshal(entities.CommissionEntity{
		ID:             commission.ID,
		ChildAccountID: commission.ChildAccountID,
		SalePrice:      commission.SalePrice,
		BaseCost:       commission.BaseCost,
		Commission:     commission.Commission,
		Status:         commission.Status,
		PaidAt:         commission.PaidAt,
		CreatedAt:      commission.CreatedAt,
	})
	mq_client.EnqueueEvent("private", CurrentUser.UID, "commission.recorded", payload)

	return c.Status(200).JSON(child_account.ToJSON())
}
