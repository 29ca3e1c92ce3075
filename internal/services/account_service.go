package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"wanderwise/internal/models/db_models"
	"wanderwise/internal/models/request_models"
	resp "wanderwise/internal/models/response_models"
	"wanderwise/internal/repositories"
	"wanderwise/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*resp.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*resp.AuthResponse, error)

	GetProfile(ctx context.Context, accountID uuid.UUID) (*resp.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*resp.AccountResponse, error)
	UpdatePreferences(ctx context.Context, accountID uuid.UUID, request request_models.UpdatePreferencesRequest) (*resp.AccountResponse, error)
	Deactivate(ctx context.Context, accountID uuid.UUID) error

	ListSavedDestinations(ctx context.Context, accountID uuid.UUID) ([]resp.SavedDestinationResponse, error)
	SaveDestination(ctx context.Context, accountID uuid.UUID, request request_models.SaveDestinationRequest) ([]resp.SavedDestinationResponse, error)
	RemoveSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	cityRepo    repositories.CityRepository
	tokens      *utils.TokenIssuer
	log         *zap.Logger
	now         func() time.Time
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	cityRepo repositories.CityRepository,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		cityRepo:    cityRepo,
		tokens:      tokens,
		log:         log.Named("account"),
		now:         time.Now,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*resp.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(a.log, "find account by email", err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
		Language:     "en",
		Currency:     "USD",
		BudgetRange:  db_models.BudgetRangeMidRange,
		IsActive:     true,
	}
	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		// a concurrent registration can win the unique index after the lookup
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.ErrEmailAlreadyExists
		}
		return nil, dbError(a.log, "insert account", err)
	}
	a.log.Info("account registered", zap.String("account_id", newAccount.ID.String()))

	return a.issue(newAccount)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*resp.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, dbError(a.log, "find account by email", err)
	}
	if account == nil || !account.IsActive {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	last := a.now().Unix()
	if err := a.accountRepo.UpdateFields(ctx, account.ID, map[string]interface{}{"last_login": last}); err != nil {
		// a stale last_login never blocks a login
		a.log.Warn("update last login", zap.String("account_id", account.ID.String()), zap.Error(err))
	} else {
		account.LastLogin = &last
	}

	return a.issue(account)
}

func (a *AccountService) issue(account *db_models.Account) (*resp.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID, string(account.Role))
	if err != nil {
		a.log.Error("sign token", zap.Error(err))
		return nil, err
	}
	return &resp.AuthResponse{Token: token, Account: toAccountResponse(account)}, nil
}

func (a *AccountService) activeAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, dbError(a.log, "find account", err)
	}
	if account == nil || !account.IsActive {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*resp.AccountResponse, error) {
	account, err := a.activeAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := toAccountResponse(account)
	return &out, nil
}

func (a *AccountService) updateAndReload(ctx context.Context, accountID uuid.UUID, fields map[string]interface{}) (*resp.AccountResponse, error) {
	if len(fields) > 0 {
		if err := a.accountRepo.UpdateFields(ctx, accountID, fields); err != nil {
			return nil, dbError(a.log, "update account", err)
		}
	}
	return a.GetProfile(ctx, accountID)
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, request request_models.UpdateProfileRequest) (*resp.AccountResponse, error) {
	if _, err := a.activeAccount(ctx, accountID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = strings.TrimSpace(*request.Name)
	}
	if request.ProfilePhoto != nil {
		fields["profile_photo"] = *request.ProfilePhoto
	}
	return a.updateAndReload(ctx, accountID, fields)
}

func (a *AccountService) UpdatePreferences(ctx context.Context, accountID uuid.UUID, request request_models.UpdatePreferencesRequest) (*resp.AccountResponse, error) {
	if _, err := a.activeAccount(ctx, accountID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Language != nil {
		fields["language"] = *request.Language
	}
	if request.Currency != nil {
		fields["currency"] = *request.Currency
	}
	if request.BudgetRange != nil {
		fields["budget_range"] = *request.BudgetRange
	}
	if request.TravelStyle != nil {
		fields["travel_style"] = request.TravelStyle
	}
	return a.updateAndReload(ctx, accountID, fields)
}

// Deactivate keeps the row so owned trips stay intact.
func (a *AccountService) Deactivate(ctx context.Context, accountID uuid.UUID) error {
	if _, err := a.activeAccount(ctx, accountID); err != nil {
		return err
	}
	if err := a.accountRepo.UpdateFields(ctx, accountID, map[string]interface{}{"is_active": false}); err != nil {
		return dbError(a.log, "deactivate account", err)
	}
	a.log.Info("account deactivated", zap.String("account_id", accountID.String()))
	return nil
}

func (a *AccountService) ListSavedDestinations(ctx context.Context, accountID uuid.UUID) ([]resp.SavedDestinationResponse, error) {
	saved, err := a.accountRepo.ListSavedDestinations(ctx, accountID)
	if err != nil {
		return nil, dbError(a.log, "list saved destinations", err)
	}

	out := make([]resp.SavedDestinationResponse, 0, len(saved))
	for i := range saved {
		out = append(out, resp.SavedDestinationResponse{
			City:    toCitySummary(&saved[i].City),
			SavedAt: saved[i].SavedAt,
		})
	}
	return out, nil
}

func (a *AccountService) SaveDestination(ctx context.Context, accountID uuid.UUID, request request_models.SaveDestinationRequest) ([]resp.SavedDestinationResponse, error) {
	cityID, err := uuid.Parse(request.CityID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	city, err := a.cityRepo.FindById(ctx, cityID)
	if err != nil {
		return nil, dbError(a.log, "find city", err)
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	existing, err := a.accountRepo.FindSavedDestination(ctx, accountID, cityID)
	if err != nil {
		return nil, dbError(a.log, "find saved destination", err)
	}
	if existing != nil {
		return nil, utils.ErrAlreadySaved
	}

	saved := &db_models.SavedDestination{AccountID: accountID, CityID: cityID, SavedAt: a.now().Unix()}
	if err := a.accountRepo.InsertSavedDestination(ctx, saved); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.ErrAlreadySaved
		}
		return nil, dbError(a.log, "insert saved destination", err)
	}

	return a.ListSavedDestinations(ctx, accountID)
}

func (a *AccountService) RemoveSavedDestination(ctx context.Context, accountID, cityID uuid.UUID) error {
	removed, err := a.accountRepo.DeleteSavedDestination(ctx, accountID, cityID)
	if err != nil {
		return dbError(a.log, "delete saved destination", err)
	}
	if !removed {
		return utils.ErrCityNotFound
	}
	return nil
}
