package services

import (
	portsrepo "github.com/cashflowhq/cashflow_backend/internal/core/ports/repositories"
	portssvc "github.com/cashflowhq/cashflow_backend/internal/core/ports/services"
	"github.com/cashflowhq/cashflow_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Cheque = NewChequeService(repos.ChequeRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Dashboard = NewDashboardService(repos.ChequeRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
