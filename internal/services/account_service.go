package services

import (
	"context"
	"log"
	"time"

	"trotter/internal/models/db_models"
	"trotter/internal/models/request_models"
	"trotter/internal/repositories"
	mem "trotter/pkg/memcache"
	"trotter/pkg/utils"
)

const resetTokenTTL = 30 * time.Minute

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	ForgotPassword(email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {

	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyRegistered
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

// ForgotPassword always reports success to the caller so that the endpoint
// does not reveal which emails are registered. The mail is only sent when
// the account exists.
func (a *AccountService) ForgotPassword(email string) error {

	account, err := a.accountRepo.FindByEmail(context.Background(), email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("Failed to send reset mail: %v", err)
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token string, newPassword string) error {

	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashed); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}
