package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/savelife/savelife-api/config"
	"github.com/savelife/savelife-api/internal/adapters/jwtcodec"
	"github.com/savelife/savelife-api/internal/adapters/payments"
	"github.com/savelife/savelife-api/internal/data"
	"github.com/savelife/savelife-api/internal/ports"
	"github.com/savelife/savelife-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth      *service.AuthService
	Users     *service.UserService
	Blogs     *service.BlogService
	Donations *service.DonationService
	Fundings  *service.FundingService
	Codec     ports.TokenCodec
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	UserRepo            *data.UserRepo
	BlogRepo            *data.BlogRepo
	DonationRequestRepo *data.DonationRequestRepo
	FundingRepo         *data.FundingRepo
	CacheRepo           *data.RedisCacheRepo
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		UserRepo:            data.NewUserRepo(db),
		BlogRepo:            data.NewBlogRepo(db),
		DonationRequestRepo: data.NewDonationRequestRepo(db),
		FundingRepo:         data.NewFundingRepo(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewServices constructs the full service container from shared
// infrastructure. Payment-intent creation stays disabled until a Stripe API
// key is configured.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	repos := buildRepositories(deps.DB, deps.RedisClient)
	codec := jwtcodec.New(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	var intents ports.PaymentIntents
	if cfg.Payments.StripeAPIKey != "" {
		intents = payments.NewStripeIntents(cfg.Payments.StripeAPIKey, cfg.Payments.Currency)
	} else {
		logger.Warn("stripe api key not configured, payment intents disabled")
	}

	var cache ports.Cache
	if repos.CacheRepo != nil {
		cache = repos.CacheRepo
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Codec: codec,
			Roles: repos.UserRepo,
		}),
		Users: service.NewUserService(service.UserServiceOptions{
			Users: repos.UserRepo,
		}),
		Blogs: service.NewBlogService(service.BlogServiceOptions{
			Blogs:    repos.BlogRepo,
			Cache:    cache,
			CacheTTL: cfg.Cache.BlogListTTL,
			Logger:   logger,
		}),
		Donations: service.NewDonationService(service.DonationServiceOptions{
			Requests: repos.DonationRequestRepo,
		}),
		Fundings: service.NewFundingService(service.FundingServiceOptions{
			Fundings: repos.FundingRepo,
			Intents:  intents,
			Currency: cfg.Payments.Currency,
		}),
		Codec: codec,
	}
}
