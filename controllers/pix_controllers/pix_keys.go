package pix_controllers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"

	"github.com/betconta/betconta/config"
	"github.com/betconta/betconta/controllers/entities"
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/mq_client"
	"github.com/betconta/betconta/services/pix_service"
	"github.com/betconta/betconta/types"
)

func registry() *pix_service.Registry {
	return pix_service.NewRegistry(pix_service.NewGormStore(config.DataBase))
}

type ActivatePixKeyParams struct {
	KeyType types.PixKeyType `json:"key_type" form:"key_type" validate:"required|VaildateKeyType"`
}

func (p ActivatePixKeyParams) Messages() map[string]string {
	return validate.MS{
		"required":        "pix.key.missing_key_type",
		"VaildateKeyType": "pix.key.invalid_type",
	}
}

func (p ActivatePixKeyParams) VaildateKeyType(KeyType types.PixKeyType) bool {
	return KeyType.Valid()
}

func ActivatePixKey(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	errs := new(helpers.Errors)
	params := new(ActivatePixKeyParams)

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

	key, err := registry().Activate(child_account.ID, params.KeyType)
	if err != nil {
		if errors.Is(err, pix_service.ErrAccountNotFound) {
			return c.Status(404).JSON(helpers.Errors{
				Errors: []string{err.Error()},
			})
		}

		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	payload, _ := json.Marshal(key.ToJSON())
	mq_client.EnqueueEvent("private", CurrentUser.UID, "pix_key.activated", payload)

	return c.Status(201).JSON(key.ToJSON())
}

func DeactivatePixKey(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	keyType := types.PixKeyType(c.Params("type"))

	if err := registry().Deactivate(child_account.ID, keyType); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}

	payload, _ := json.Marshal(fiber.Map{"key_type": keyType})
	mq_client.EnqueueEvent("private", CurrentUser.UID, "pix_key.deactivated", payload)

	return c.SendStatus(204)
}

func GetPixKeys(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	keys, err := registry().ListByChild(child_account.ID)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	keys_json := make([]models.PixKeyJSON, 0)
	for _, key := range keys {
		keys_json = append(keys_json, key.ToJSON())
	}

	return c.Status(200).JSON(keys_json)
}

// GetActivePixKey returns the active key on a slot together with how
// long it has left before the expiry sweep would close it.
func GetActivePixKey(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.Member)

	child_account := helpers.FindChildAccountByUUID(CurrentUser, c.Params("uuid"))
	if child_account == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	key, err := registry().GetActive(child_account.ID, types.PixKeyType(c.Params("type")))
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}
	if key == nil {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}

	now := time.Now()

	return c.Status(200).JSON(entities.ActivePixKeyEntity{
		PixKeyJSON:       key.ToJSON(),
		Expired:          key.Expired(now),
		RemainingSeconds: int64(key.Remaining(now).Seconds()),
	})
}
