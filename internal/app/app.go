// internal/app/app.go
package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/foodhub-storefront/internal/config"
	"github.com/your-org/foodhub-storefront/internal/domain/account"
	"github.com/your-org/foodhub-storefront/internal/domain/cart"
	"github.com/your-org/foodhub-storefront/internal/domain/catalog"
	"github.com/your-org/foodhub-storefront/internal/domain/checkout"
	"github.com/your-org/foodhub-storefront/internal/domain/favorites"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
	"github.com/your-org/foodhub-storefront/internal/domain/otp"
	"github.com/your-org/foodhub-storefront/internal/domain/promo"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/events"
	"github.com/your-org/foodhub-storefront/internal/infrastructure/storage"
	httpserver "github.com/your-org/foodhub-storefront/internal/interfaces/http"
	"github.com/your-org/foodhub-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/foodhub-storefront/internal/interfaces/http/routes"
	"github.com/your-org/foodhub-storefront/internal/pkg/auth"
	"github.com/your-org/foodhub-storefront/internal/pkg/receipt"
)

// Options supplies the infrastructure chosen at startup. Only Durable is required.
type Options struct {
	Durable      storage.Store
	Publisher    events.Publisher
	Notifier     otp.Notifier
	Processor    checkout.PaymentProcessor
	RedisClient  *redis.Client
	HealthChecks map[string]httpserver.HealthCheck
	OTPOptions   []otp.Option
}

// App is the assembled storefront: one device session over a durable store
type App struct {
	Server        *httpserver.Server
	Catalog       *catalog.Catalog
	Cart          *cart.Cart
	Promo         *promo.Selection
	Directory     *account.Directory
	Authenticator *account.Authenticator
	History       *order.History
	Favorites     *favorites.Service
	Checkout      *checkout.Flow
	JWT           *auth.JWTManager
}

// New wires services, handlers and the HTTP server
func New(cfg *config.Config, log *logrus.Logger, opts Options) (*App, error) {
	if opts.Durable == nil {
		return nil, fmt.Errorf("durable store is required")
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}
	if opts.Processor == nil {
		opts.Processor = checkout.NewSimulatedProcessor(cfg.Checkout.PaymentDelay, log.WithField("component", "payment"))
	}

	menu, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	durable := storage.NewRepository(opts.Durable, log.WithField("store", "durable"))
	session := storage.NewRepository(storage.NewMemoryStore(), log.WithField("store", "session"))

	shoppingCart := cart.New()
	selection := promo.NewSelection(promo.NewEngine(promo.DefaultCodes()))
	selection.Attach(shoppingCart)

	otpOpts := append([]otp.Option(nil), opts.OTPOptions...)
	if opts.Notifier != nil {
		otpOpts = append(otpOpts, otp.WithNotifier(opts.Notifier))
	}
	otpService := otp.NewService(session, otp.Config{
		TTL:         cfg.OTP.TTL,
		MaxAttempts: cfg.OTP.MaxAttempts,
		ExposeCode:  cfg.OTP.ExposeCode,
	}, log.WithField("component", "otp"), otpOpts...)

	directory := account.NewDirectory(durable, log.WithField("component", "accounts"))
	authenticator := account.NewAuthenticator(directory, otpService, auth.NewPasswordVerifier(cfg), log.WithField("component", "auth"))
	history := order.NewHistory(durable, cfg.Checkout.HistoryLimit, log.WithField("component", "orders"))
	favoritesService := favorites.NewService(durable, log.WithField("component", "favorites"))

	flow := checkout.NewFlow(shoppingCart, selection, directory, history, opts.Publisher, opts.Processor, checkout.Config{
		TaxRate:           decimal.NewFromFloat(cfg.Checkout.TaxRate),
		PointsUnit:        cfg.Checkout.PointsUnit,
		MinCardLength:     cfg.Checkout.MinCardLength,
		PaymentTimeout:    cfg.Checkout.PaymentTimeout,
		ApplyPromoToTotal: cfg.Checkout.ApplyPromoToTotal,
	}, log.WithField("component", "checkout"))

	jwtManager := auth.NewJWTManager(cfg)

	h := &routes.Handlers{
		Menu:      handlers.NewMenuHandler(menu, decimal.NewFromInt(cfg.Catalog.MaxPrice), cfg.Catalog.CurrencySymbol),
		Cart:      handlers.NewCartHandler(shoppingCart, selection, menu),
		Promo:     handlers.NewPromoHandler(selection),
		Auth:      handlers.NewAuthHandler(authenticator, jwtManager),
		Account:   handlers.NewAccountHandler(directory),
		Favorites: handlers.NewFavoritesHandler(favoritesService),
		Checkout:  handlers.NewCheckoutHandler(flow),
		Order:     handlers.NewOrderHandler(history, directory, receipt.NewRenderer(cfg), cfg.Checkout.PointsUnit),
	}

	return &App{
		Server:        httpserver.NewServer(cfg, log, h, jwtManager, opts.RedisClient, opts.HealthChecks),
		Catalog:       menu,
		Cart:          shoppingCart,
		Promo:         selection,
		Directory:     directory,
		Authenticator: authenticator,
		History:       history,
		Favorites:     favoritesService,
		Checkout:      flow,
		JWT:           jwtManager,
	}, nil
}
