package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soletrade/soletrade/config"
	"github.com/soletrade/soletrade/controllers"
	"github.com/soletrade/soletrade/routes/middlewares"
	"github.com/soletrade/soletrade/services"
)

// SetupRouter builds every service and controller once and wires the
// HTTP surface around them.
func SetupRouter(app *config.App) *fiber.App {
	token_service := services.NewTokenService(app.Redis)
	product_service := services.NewProductService(app.DB)
	brand_service := services.NewBrandService(app.DB)
	trade_service := services.NewTradeService(app.DB, app.Influx)
	member_service := services.NewMemberService(app.DB, app.Redis, token_service, services.LogMailer{})
	market_service := services.NewMarketService(app.Redis)

	product_controller := controllers.NewProductController(product_service)
	brand_controller := controllers.NewBrandController(brand_service)
	trade_controller := controllers.NewTradeController(trade_service)
	member_controller := controllers.NewMemberController(member_service)
	public_controller := controllers.NewPublicController(market_service)

	auth := middlewares.Authenticate(token_service, app.DB)

	r := fiber.New()

	r.Get("/public/timestamp", public_controller.GetTimestamp)
	r.Get("/public/product/:productId/market", public_controller.GetMarketSnapshot)

	r.Get("/product", product_controller.FindProducts)
	r.Get("/product/:productId/image", product_controller.FindProductImages)
	r.Get("/product/:productId", product_controller.FindProductDetail)
	r.Post("/product/image", auth, middlewares.AdminValidator, product_controller.AddProductImages)
	r.Delete("/product/image/:productImageId", auth, middlewares.AdminValidator, product_controller.DeleteProductImage)
	r.Post("/product", auth, middlewares.AdminValidator, product_controller.SaveProduct)
	r.Post("/product/:id", auth, middlewares.AdminValidator, product_controller.UpdateProduct)
	r.Delete("/product/:productId", auth, middlewares.AdminValidator, product_controller.DeleteProduct)

	r.Get("/brand", brand_controller.FindBrands)
	r.Post("/brand", auth, middlewares.AdminValidator, brand_controller.SaveBrand)
	r.Post("/brand/:id", auth, middlewares.AdminValidator, brand_controller.UpdateBrand)
	r.Delete("/brand/:id", auth, middlewares.AdminValidator, brand_controller.DeleteBrand)

	r.Get("/trade/:productId/done", trade_controller.FindDoneTrades)
	r.Get("/trade/:productId/transaction", trade_controller.FindTransactionTrades)
	r.Get("/trade", auth, trade_controller.FindMemberTrades)
	r.Post("/trade", auth, trade_controller.SaveTrade)
	r.Post("/trade/:tradeId/complete", auth, trade_controller.CompleteTrade)
	r.Post("/trade/:tradeId", auth, trade_controller.UpdateTrade)
	r.Delete("/trade/:tradeId", auth, trade_controller.DeleteTrade)

	r.Post("/member/email", member_controller.SendAuthCode)
	r.Post("/member/email/check", member_controller.CheckAuthCode)
	r.Post("/member/join", member_controller.Join)
	r.Post("/member/login", member_controller.Login)
	r.Post("/member/reissue", member_controller.Reissue)

	r.Get("/member/address", auth, member_controller.FindAddresses)
	r.Post("/member/address/:addressId/base", auth, member_controller.SetBaseAddress)
	r.Post("/member/address/:addressId", auth, member_controller.UpdateAddress)
	r.Post("/member/address", auth, member_controller.AddAddress)
	r.Delete("/member/address/:addressId", auth, member_controller.DeleteAddress)

	return r
}
