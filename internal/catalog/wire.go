package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"tourquote/internal/catalog/controller"
	"tourquote/internal/catalog/repository"
	"tourquote/internal/catalog/service"
)

type Module struct {
	Service    *service.CatalogService
	Controller *controller.Controller
}

func NewModule(db *sql.DB, servicesFile string, logger *zap.Logger) (*Module, error) {
	serviceRepo, err := repository.NewYAMLSpecialServiceRepository(servicesFile)
	if err != nil {
		return nil, err
	}

	svc := service.NewCatalogService(
		repository.NewMySQLTourRepository(db),
		repository.NewMySQLVehicleRepository(db),
		repository.NewMySQLHotelRepository(db),
		repository.NewMySQLGuideRepository(db),
		repository.NewMySQLSeasonRepository(db),
		serviceRepo,
		logger,
	)

	return &Module{
		Service:    svc,
		Controller: controller.NewController(svc, logger),
	}, nil
}
