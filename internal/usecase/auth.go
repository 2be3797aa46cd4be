package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresAt   time.Time         `json:"expires_at"`
	User        entity.PublicUser `json:"user"`
}

var errBadCredentials = &DomainError{Code: CodeUnauthorized, Message: "incorrect email or password"}

type AuthUseCase struct {
	Store    SeedStore
	Hasher   PasswordHasher
	Tokens   TokenIssuer
	ClientID string
}

func NewAuthUseCase(store SeedStore, hasher PasswordHasher, tokens TokenIssuer, clientID string) *AuthUseCase {
	return &AuthUseCase{Store: store, Hasher: hasher, Tokens: tokens, ClientID: clientID}
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if errs := ValidateStruct(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	user, err := findOne[entity.User](ctx, uc.Store, entity.CollectionUsers, entity.ByClient(uc.ClientID, entity.Eq("email", input.Email)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, storageFailure("failed to load user", err)
	}
	if !user.IsActive {
		return nil, errBadCredentials
	}
	if err := uc.Hasher.Compare(user.HashedPassword, input.Password); err != nil {
		return nil, errBadCredentials
	}

	token, expiresAt, err := uc.Tokens.Issue(user.ID)
	if err != nil {
		return nil, &TechnicalError{Code: CodeToken, Message: "failed to issue token", Err: err}
	}

	return &LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user.Public(),
	}, nil
}

// Authenticate resolves a bearer token to an active user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.PublicUser, error) {
	userID, err := uc.Tokens.Parse(token)
	if err != nil {
		return nil, &DomainError{Code: CodeUnauthorized, Message: "invalid or expired token"}
	}
	user, err := uc.GetUser(ctx, userID)
	if err != nil {
		if IsDomainError(err) {
			return nil, &DomainError{Code: CodeUnauthorized, Message: "user no longer exists"}
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, &DomainError{Code: CodeUnauthorized, Message: "user is inactive"}
	}
	return user, nil
}

func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]entity.PublicUser, error) {
	users, err := findAll[entity.User](ctx, uc.Store, entity.CollectionUsers, entity.ByClient(uc.ClientID))
	if err != nil {
		return nil, storageFailure("failed to list users", err)
	}
	out := make([]entity.PublicUser, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out, nil
}

func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*entity.PublicUser, error) {
	user, err := findOne[entity.User](ctx, uc.Store, entity.CollectionUsers, entity.ByClient(uc.ClientID, entity.Eq("id", id)))
	if errors.Is(err, entity.ErrRecordNotFound) {
		return nil, NewNotFound("user")
	}
	if err != nil {
		return nil, storageFailure("failed to load user", err)
	}
	public := user.Public()
	return &public, nil
}
