package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"trotter/internal/repositories"
	"trotter/internal/services"
	mem "trotter/pkg/memcache"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, resetTokens)
}
