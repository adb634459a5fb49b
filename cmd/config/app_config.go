package config

import (
	"os"
	"time"

	"FreshBasket-Backend/internal/api/handlers"
	"FreshBasket-Backend/internal/api/routes"
	"FreshBasket-Backend/internal/middleware"
	"FreshBasket-Backend/internal/utils"
	"FreshBasket-Backend/internal/utils/storage"
	"FreshBasket-Backend/pkg/cart"
	"FreshBasket-Backend/pkg/catalog"
	"FreshBasket-Backend/pkg/guestcart"
	"FreshBasket-Backend/pkg/jwt"
	"FreshBasket-Backend/pkg/order"
	"FreshBasket-Backend/pkg/payment"
	"FreshBasket-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	cartRepository := cart.NewCartRepository(db)
	guestCartRepository := guestcart.NewGuestCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	catalogService := catalog.NewCatalogService(catalogRepository)
	guestCartService := guestcart.NewGuestCartService(guestCartRepository, catalogRepository)
	cartService := cart.NewCartService(cartRepository, guestCartRepository, catalogRepository)
	orderService := order.NewOrderService(orderRepository, cartRepository, userRepository, paymentService)
	userService := user.NewUserService(userRepository, jwtService, cartService, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	guestCartHandler := handlers.NewGuestCartHandler(guestCartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		CatalogHandler:   catalogHandler,
		CartHandler:      cartHandler,
		GuestCartHandler: guestCartHandler,
		OrderHandler:     orderHandler,
		PaymentHandler:   paymentHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
