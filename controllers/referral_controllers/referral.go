package referral_controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/entities"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/controllers/queries"
	"github.com/betconta/betconta/models"
)

// CreateAffiliate opts the current member into the affiliate program and
// issues their referral code. Re-opting returns the existing record.
func CreateAffiliate(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	affiliate := &models.Affiliate{}

	if result := config.DataBase.First(&affiliate, "member_id = ?", CurrentUser.ID); result.Error == nil {
		return c.Status(200).JSON(affiliate.ToJSON())
	}

	affiliate = &models.Affiliate{
		MemberID:        CurrentUser.ID,
		ReferralCode:    "BC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10]),
		MinPrice:        decimal.RequireFromString("90.00"),
		MaxPrice:        decimal.RequireFromString("130.00"),
		BaseCost:        decimal.RequireFromString("90.00"),
		TotalCommission: decimal.Zero,
	}

	if err := config.DataBase.Create(affiliate).Error; err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"referral.affiliate.create_failed"},
		})
	}

	return c.Status(201).JSON(affiliate.ToJSON())
}

func GetAffiliate(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	affiliate := &models.Affiliate{}

	if result := config.DataBase.First(&affiliate, "member_id = ?", CurrentUser.ID); result.Error != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	return c.Status(200).JSON(affiliate.ToJSON())
}

func GetCommissions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(queries.CommissionQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	affiliate := &models.Affiliate{}

	if result := config.DataBase.First(&affiliate, "member_id = ?", CurrentUser.ID); result.Error != nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	if params.Limit == 0 {
		params.Limit = 100
	}

	if params.Page == 0 {
		params.Page = 1
	}

	var commissions []*models.Commission

	config.DataBase.Order("id desc").Offset(params.Page*params.Limit-params.Limit).Limit(params.Limit).Find(&commissions, "affiliate_id = ?", affiliate.ID)

	commission_entities := make([]*entities.CommissionEntity, 0)

	for _, commission := range commissions {
		commission_entities = append(commission_entities, &entities.CommissionEntity{
			ID:             commission.ID,
			ChildAccountID: commission.ChildAccountID,
			SalePrice:      commission.SalePrice,
			BaseCost:       commission.BaseCost,
			Commission:     commission.Commission,
			Status:         commission.Status,
			PaidAt:         commission.PaidAt,
			CreatedAt:      commission.CreatedAt,
		})
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(commissions)), 10))

	return c.Status(200).JSON(commission_entities)
}
