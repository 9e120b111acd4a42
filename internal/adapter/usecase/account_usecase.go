package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var validate = validator.New(validator.WithRequiredStructEnabled())

// AccountUseCase implements registration, login and profile management.
type AccountUseCase struct {
	accounts port.AccountRepository
	hasher   port.PasswordHasher
	tokens   port.TokenIssuer
}

// NewAccountUseCase wires the account usecase.
func NewAccountUseCase(accounts port.AccountRepository, hasher port.PasswordHasher, tokens port.TokenIssuer) *AccountUseCase {
	return &AccountUseCase{accounts: accounts, hasher: hasher, tokens: tokens}
}

// Register creates a startup or investor account and logs it in. Admin
// accounts are only created through CreateAdmin.
func (u *AccountUseCase) Register(ctx context.Context, req port.RegisterReq) (*port.Session, error) {
	if req.Role != domain.RoleStartup && req.Role != domain.RoleInvestor {
		return nil, domain.Validationf("role must be %q or %q", domain.RoleStartup, domain.RoleInvestor)
	}
	a, err := u.newAccount(req)
	if err != nil {
		return nil, err
	}
	if err = u.accounts.CreateAccount(ctx, a); err != nil {
		return nil, err
	}
	return u.session(a)
}

// CreateAdmin creates an active admin account.
func (u *AccountUseCase) CreateAdmin(ctx context.Context, name, email, password string) (*domain.Account, error) {
	a, err := u.newAccount(port.RegisterReq{Name: name, Email: email, Password: password, Role: domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	if err = u.accounts.CreateAccount(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *AccountUseCase) newAccount(req port.RegisterReq) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.Validationf("name is required")
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, domain.Validationf("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	return &domain.Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		Company:      strings.TrimSpace(req.Company),
		Bio:          strings.TrimSpace(req.Bio),
		IsActive:     true,
	}, nil
}

// Login verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (u *AccountUseCase) Login(ctx context.Context, email, password string) (*port.Session, error) {
	a, err := u.accounts.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err = u.hasher.Compare(a.PasswordHash, password); err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", domain.ErrForbidden)
	}
	return u.session(a)
}

// Authenticate resolves a bearer token to an active account.
func (u *AccountUseCase) Authenticate(ctx context.Context, token string) (*domain.Account, error) {
	id, err := u.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	a, err := u.accounts.GetAccount(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: account no longer exists", domain.ErrUnauthenticated)
	}
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, fmt.Errorf("%w: account is deactivated", domain.ErrForbidden)
	}
	return a, nil
}

func (u *AccountUseCase) Me(ctx context.Context, id domain.Identity) (*domain.Account, error) {
	return u.accounts.GetAccount(ctx, id.AccountID)
}

// UpdateProfile changes the non-empty fields of the caller's profile.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, id domain.Identity, req port.ProfileReq) (*domain.Account, error) {
	a, err := u.accounts.GetAccount(ctx, id.AccountID)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		a.Name = name
	}
	if req.Email != "" {
		if a.Email, err = normalizeEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.Company != "" {
		a.Company = strings.TrimSpace(req.Company)
	}
	if req.Bio != "" {
		a.Bio = strings.TrimSpace(req.Bio)
	}
	if err = u.accounts.UpdateProfile(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *AccountUseCase) session(a *domain.Account) (*port.Session, error) {
	token, exp, err := u.tokens.Issue(a.Identity())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &port.Session{Token: token, ExpiresAt: exp, User: a}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", domain.Validationf("a valid email is required")
	}
	return email, nil
}
