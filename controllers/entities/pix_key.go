package entities

import (
	"github.com/betconta/betconta/models"
)

type ActivePixKeyEntity struct {
	models.PixKeyJSON
	Expired          bool  `json:"expired"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}
