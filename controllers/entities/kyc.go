package entities

import (
	"github.com/google/uuid"

	"github.com/betconta/betconta/models"
	"github.com/betconta/betconta/types"
)

type KycStatusEntity struct {
	AccountUUID   uuid.UUID              `json:"account_uuid"`
	AccountStatus types.AccountStatus    `json:"account_status"`
	DisplayStatus types.KycDisplayStatus `json:"display_status"`
	Cases         []models.KycCaseJSON   `json:"cases"`
}
