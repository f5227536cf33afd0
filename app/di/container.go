package di

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"kalinga-portal/app/config"
	"kalinga-portal/app/driver/kratos"
	"kalinga-portal/app/driver/postgres"
	"kalinga-portal/app/gateway"
	"kalinga-portal/app/port"
	"kalinga-portal/app/rest"
	"kalinga-portal/app/usecase"
)

// Container wires drivers, gateways and usecases together.
type Container struct {
	config *config.Config
	logger *slog.Logger

	db     *postgres.DB
	kratos *kratos.Client

	identities  port.IdentityProvider
	profiles    port.ProfileStore
	admin       port.AdminAuthenticator
	provisioner port.AccountProvisioner
	resolver    port.ProfileResolver
	remover     port.AccountRemover
	updater     port.AccountUpdater
	auth        port.SessionAuthenticator
}

// NewContainer builds the full dependency graph.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, err := postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, err
	}

	kratosClient, err := kratos.NewClient(cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	identities := gateway.NewIdentityGateway(kratosClient, logger)
	profiles := postgres.NewProfileRepository(db.Pool(), logger)

	admin := usecase.NewAdminUsecase(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName, logger)
	provisioner := usecase.NewProvisionUsecase(identities, profiles, cfg.AllowedEmailDomain, logger)
	resolver := usecase.NewResolveUsecase(identities, profiles, admin, logger)
	remover := usecase.NewDeleteUsecase(identities, profiles, resolver, logger)
	updater := usecase.NewUpdateUsecase(profiles, resolver, logger)
	auth := usecase.NewAuthUsecase(identities, resolver, logger)

	return &Container{
		config:      cfg,
		logger:      logger,
		db:          db,
		kratos:      kratosClient,
		identities:  identities,
		profiles:    profiles,
		admin:       admin,
		provisioner: provisioner,
		resolver:    resolver,
		remover:     remover,
		updater:     updater,
		auth:        auth,
	}, nil
}

// CreateRouter builds the HTTP surface from the container's dependencies.
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Logger:       c.logger,
		Identities:   c.identities,
		Auth:         c.auth,
		Provisioner:  c.provisioner,
		Resolver:     c.resolver,
		Remover:      c.remover,
		Updater:      c.updater,
		Admin:        c.admin,
		Profiles:     c.profiles,
		DBHealth:     c.db,
		KratosHealth: c.kratos,
		Production:   c.config.Production(),
	})
}

// Close releases the container's resources.
func (c *Container) Close() {
	if c.db != nil {
		c.db.Close()
	}
}
