package queries

import (
	"github.com/betconta/betconta/controllers/helpers"
	"github.com/betconta/betconta/types"
)

type AdminKycQueries struct {
	Status types.KycStatus `query:"status"`
	Limit  int             `query:"limit" validate:"uint"`
	Page   int             `query:"page" validate:"uint"`
}

func (t AdminKycQueries) Messages() map[string]string {
	return helpers.VaildateMessage("admin.kyc")
}

func (t AdminKycQueries) Translates() map[string]string {
	return helpers.VaildateTranslateFields()
}
