package pricing

import (
	"go.uber.org/zap"

	catalogservice "tourquote/internal/catalog/service"
	"tourquote/internal/currency"
	"tourquote/internal/pricing/controller"
	"tourquote/internal/pricing/service"
	"tourquote/internal/pricing/usecase"
)

func NewModule(catalog *catalogservice.CatalogService, rates *currency.RateCache, logger *zap.Logger) *controller.CalculateController {
	engine := service.NewEngine()
	uc := usecase.NewCalculateQuoteUseCase(catalog, rates, engine, logger)
	return controller.NewCalculateController(uc, logger)
}
