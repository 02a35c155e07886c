package services

import (
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	portssvc "github.com/dika1005/rodstore-backend/internal/core/ports/services"
	"github.com/dika1005/rodstore-backend/internal/platform/config"
	"github.com/dika1005/rodstore-backend/internal/platform/events"
	"github.com/dika1005/rodstore-backend/internal/platform/oauthstate"
)

// NewServiceContainer wires all application services over the repository
// provider and the external dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, gateway PaymentGateway, publisher events.Publisher, stateStore *oauthstate.Store) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg, repos.UserRepo, repos.RefreshTokenRepo),
		Order:       NewOrderService(repos.OrderRepo, repos.UserRepo, gateway, publisher),
		Product:     NewProductService(repos.ProductRepo),
		Category:    NewCategoryService(repos.CategoryRepo),
		GoogleOAuth: NewGoogleOAuthHandlerService(cfg, stateStore),
	}
}
