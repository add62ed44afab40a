package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trotter/internal/models/db_models"
	"trotter/internal/models/request_models"
	"trotter/internal/repositories"
	"trotter/internal/services"
	mem "trotter/pkg/memcache"
	"trotter/pkg/utils"
)

type mockAccountRepo struct {
	insert             func(ctx context.Context, account *db_models.Account) error
	findById           func(ctx context.Context, id string) (*db_models.Account, error)
	findByEmail        func(ctx context.Context, email string) (*db_models.Account, error)
	updatePasswordHash func(ctx context.Context, email, passwordHash string) error
}

func (m *mockAccountRepo) Insert(ctx context.Context, a *db_models.Account) error {
	return m.insert(ctx, a)
}
func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return m.findById(ctx, id)
}
func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.findByEmail(ctx, email)
}
func (m *mockAccountRepo) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	return m.updatePasswordHash(ctx, email, passwordHash)
}

var _ repositories.AccountRepository = (*mockAccountRepo)(nil)

type mockMailService struct {
	sent []string
}

func (m *mockMailService) SendMailToResetPassword(to, token string) error {
	m.sent = append(m.sent, to)
	return nil
}

var _ services.IMailService = (*mockMailService)(nil)

func signUpRequest() request_models.SignUpRequest {
	return request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "hunter22",
	}
}

func TestAccountService_CreateAccount_HashesPassword(t *testing.T) {
	var saved *db_models.Account
	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) { return nil, nil },
		insert: func(_ context.Context, a *db_models.Account) error {
			saved = a
			return nil
		},
	}
	svc := services.NewAccountService(repo, &mockMailService{}, mem.NewResetTokens())

	err := svc.CreateAccount(context.Background(), signUpRequest())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, "hunter22", saved.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(saved.PasswordHash, "hunter22"))
}

func TestAccountService_CreateAccount_DuplicateEmail(t *testing.T) {
	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) {
			return &db_models.Account{Email: "ana@example.com"}, nil
		},
	}
	svc := services.NewAccountService(repo, &mockMailService{}, mem.NewResetTokens())

	err := svc.CreateAccount(context.Background(), signUpRequest())

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyRegistered)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) {
			return &db_models.Account{Email: "ana@example.com", PasswordHash: hash}, nil
		},
	}
	svc := services.NewAccountService(repo, &mockMailService{}, mem.NewResetTokens())

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "battery-staple",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) { return nil, nil },
	}
	svc := services.NewAccountService(repo, &mockMailService{}, mem.NewResetTokens())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	mail := &mockMailService{}
	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) { return nil, nil },
	}
	svc := services.NewAccountService(repo, mail, mem.NewResetTokens())

	err := svc.ForgotPassword("nobody@example.com")

	require.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestAccountService_ResetPassword_TokenIsSingleUse(t *testing.T) {
	tokens := mem.NewResetTokens()
	mail := &mockMailService{}
	updates := 0
	repo := &mockAccountRepo{
		findByEmail: func(context.Context, string) (*db_models.Account, error) {
			return &db_models.Account{Email: "ana@example.com"}, nil
		},
		updatePasswordHash: func(_ context.Context, email, hash string) error {
			updates++
			assert.Equal(t, "ana@example.com", email)
			return nil
		},
	}
	svc := services.NewAccountService(repo, mail, tokens)

	require.NoError(t, svc.ForgotPassword("ana@example.com"))
	require.Equal(t, []string{"ana@example.com"}, mail.sent)

	// Grab the token the service minted by planting a known one.
	tokens.Set("known-token", "ana@example.com", 30*time.Minute)

	require.NoError(t, svc.ResetPassword(context.Background(), "known-token", "new-password"))
	assert.Equal(t, 1, updates)

	err := svc.ResetPassword(context.Background(), "known-token", "another-password")
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}
