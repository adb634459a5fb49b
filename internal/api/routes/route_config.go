package routes

import (
	"FreshBasket-Backend/internal/api/handlers"
	"FreshBasket-Backend/internal/middleware"
	"FreshBasket-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	CatalogHandler   handlers.CatalogHandler
	CartHandler      handlers.CartHandler
	GuestCartHandler handlers.GuestCartHandler
	OrderHandler     handlers.OrderHandler
	PaymentHandler   handlers.PaymentHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Cart()
	c.GuestCart()
	c.Orders()
	c.Payment()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/google", c.UserHandler.GoogleLogin)
		user.Get("/google/callback", c.UserHandler.GoogleCallback)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfile)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Get("/addresses", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.GetAddresses)
		user.Delete("/addresses/:id", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.DeleteAddress)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/products", c.CatalogHandler.GetProducts)
	c.App.Get("/api/v1/products/:id", c.CatalogHandler.GetProductDetails)
	c.App.Get("/api/v1/categories", c.CatalogHandler.GetCategories)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.CartHandler.GetCart)
		cart.Post("", c.CartHandler.AddToCart)
		cart.Post("/merge", c.CartHandler.MergeGuestCart)
		cart.Put("/:id", c.CartHandler.UpdateCartItem)
		cart.Delete("/:id", c.CartHandler.RemoveCartItem)
		cart.Delete("", c.CartHandler.ClearCart)
	}
}

func (c *Config) GuestCart() {
	guestCart := c.App.Group("/api/v1/guest-cart")
	{
		guestCart.Get("", c.GuestCartHandler.GetCart)
		guestCart.Post("", c.GuestCartHandler.AddToCart)
		guestCart.Put("/:id", c.GuestCartHandler.UpdateCartItem)
		guestCart.Delete("/:id", c.GuestCartHandler.RemoveCartItem)
		guestCart.Delete("", c.GuestCartHandler.ClearCart)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Get("/:id", c.OrderHandler.GetOrderDetails)
	}
}

func (c *Config) Payment() {
	pay := c.App.Group("/api/payment", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pay.Post("/create-order", c.PaymentHandler.CreateGatewayOrder)
		pay.Post("/verify-payment", c.PaymentHandler.VerifyPayment)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
