package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"youngeru/internal/models/db_models"
	"youngeru/internal/models/request_models"
	"youngeru/internal/models/response_models"
	"youngeru/internal/repositories"
	"youngeru/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtManager *utils.JWTManager, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwtManager,
		log:         log,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	start := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	a.log.Debug("login", zap.Duration("took", time.Since(start)))
	return &response_models.AccountLoginResponse{Token: token, ExpiresAt: expiresAt(claims.ExpiresAt)}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("find account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		FirstName:    strings.TrimSpace(request.FirstName),
		Email:        email,
		PasswordHash: hashed,
		Role:         db_models.RoleMember,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		a.log.Error("insert account", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return toAccountResponse(account), nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		Email:     a.Email,
		Role:      a.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func expiresAt(d *jwt.NumericDate) int64 {
	if d == nil {
		return 0
	}
	return d.Unix()
}
