package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/betconta/betconta/controllers"
	"github.com/betconta/betconta/controllers/admin_controllers"
	"github.com/betconta/betconta/controllers/kyc_controllers"
	"github.com/betconta/betconta/controllers/pix_controllers"
	"github.com/betconta/betconta/controllers/referral_controllers"
	"github.com/betconta/betconta/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	api := app.Group("/api/v2", middlewares.Authenticate)

	api.Post("/accounts/children", controllers.CreateChildAccount)
	api.Get("/accounts/children", controllers.GetChildAccounts)
	api.Get("/accounts/children/:uuid", controllers.GetChildAccount)
	api.Post("/accounts/children/:uuid/pay", controllers.PayChildAccount)

	api.Post("/accounts/children/:uuid/pix_keys", pix_controllers.ActivatePixKey)
	api.Get("/accounts/children/:uuid/pix_keys", pix_controllers.GetPixKeys)
	api.Get("/accounts/children/:uuid/pix_keys/:type", pix_controllers.GetActivePixKey)
	api.Delete("/accounts/children/:uuid/pix_keys/:type", pix_controllers.DeactivatePixKey)

	api.Post("/kyc", kyc_controllers.SubmitKyc)
	api.Get("/accounts/children/:uuid/kyc", kyc_controllers.GetKycStatus)

	api.Post("/affiliates", referral_controllers.CreateAffiliate)
	api.Get("/affiliates", referral_controllers.GetAffiliate)
	api.Get("/affiliates/commissions", referral_controllers.GetCommissions)

	admin := api.Group("/admin", middlewares.AdminVaildator)

	admin.Get("/kyc", admin_controllers.GetKycCases)
	admin.Put("/kyc/:uuid", admin_controllers.ReviewKycCase)
	admin.Put("/accounts/children/:uuid/status", admin_controllers.SetChildAccountStatus)
	admin.Post("/commissions/:id/pay", admin_controllers.PayCommission)
	admin.Put("/affiliates/:id/settings", admin_controllers.UpdateAffiliateSettings)

	return app
}
