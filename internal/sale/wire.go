//go:build wireinject
// +build wireinject

package sale

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	saledelivery "github.com/tair/retail-management/internal/sale/delivery/http"
	"github.com/tair/retail-management/internal/sale/domain"
	"github.com/tair/retail-management/internal/sale/repository"
	"github.com/tair/retail-management/internal/sale/usecase/command"
	"github.com/tair/retail-management/internal/sale/usecase/query"
)

// ProvideSaleRepository provides the sale repository
func ProvideSaleRepository(db *gorm.DB) domain.SaleRepository {
	return repository.NewGormSaleRepository(db)
}

// Command Handlers Providers
func ProvideCreateSaleHandler(repo domain.SaleRepository) *command.CreateSaleHandler {
	return command.NewCreateSaleHandler(repo)
}

func ProvideUpdateSaleHandler(repo domain.SaleRepository) *command.UpdateSaleHandler {
	return command.NewUpdateSaleHandler(repo)
}

func ProvideDeleteSaleHandler(repo domain.SaleRepository) *command.DeleteSaleHandler {
	return command.NewDeleteSaleHandler(repo)
}

// Query Handlers Providers
func ProvideGetSaleHandler(repo domain.SaleRepository) *query.GetSaleHandler {
	return query.NewGetSaleHandler(repo)
}

func ProvideListSalesHandler(repo domain.SaleRepository) *query.ListSalesHandler {
	return query.NewListSalesHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideSaleRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateSaleHandler,
	ProvideUpdateSaleHandler,
	ProvideDeleteSaleHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetSaleHandler,
	ProvideListSalesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes sale handler with all dependencies
func InitializeHandler(db *gorm.DB) (*saledelivery.SaleHandler, error) {
	wire.Build(
		AllHandlersSet,
		saledelivery.NewSaleHandlerWithDI,
	)
	return nil, nil
}
