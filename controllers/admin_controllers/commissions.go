package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/services/commission_service"
)

func ledger() *commission_service.Ledger {
	return commission_service.NewLedger(commission_service.NewGormStore(config.DataBase))
}

// PayCommission settles a pending commission. Paying twice is a no-op.
func PayCommission(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.commission.invalid_id"},
		})
	}

	if err := ledger().MarkPaid(int64(id)); err != nil {
		if errors.Is(err, commission_service.ErrCommissionNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{err.Error()},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.SendStatus(200)
}

type UpdateAffiliateSettingsParams struct {
	MinPrice decimal.Decimal `json:"min_price" form:"min_price" validate:"VaildateMinPrice"`
	MaxPrice decimal.Decimal `json:"max_price" form:"max_price" validate:"VaildateMaxPrice"`
}

func (p UpdateAffiliateSettingsParams) Messages() map[string]string {
	return validate.MS{
		"VaildateMinPrice": "admin.affiliate.non_positive_min_price",
		"VaildateMaxPrice": "admin.affiliate.non_positive_max_price",
	}
}

func (p UpdateAffiliateSettingsParams) VaildateMinPrice(MinPrice decimal.Decimal) bool {
	return MinPrice.IsPositive()
}

func (p UpdateAffiliateSettingsParams) VaildateMaxPrice(MaxPrice decimal.Decimal) bool {
	return MaxPrice.IsPositive()
}

func UpdateAffiliateSettings(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"admin.affiliate.invalid_id"},
		})
	}

	errs := new(helpers.Errors)
	params := new(UpdateAffiliateSettingsParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Vaildate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if err := ledger().UpdateSettings(int64(id), params.MinPrice, params.MaxPrice); err != nil {
		if errors.Is(err, commission_service.ErrAffiliateNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{err.Error()},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	return c.SendStatus(200)
}
