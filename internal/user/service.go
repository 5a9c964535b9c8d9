package user

import (
	"context"
	"fmt"
	"strings"

	"marketflow-be/internal/apperr"
	"marketflow-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (User, error)
	Confirm(ctx context.Context, email, token string) error
	Login(ctx context.Context, email, password string) (string, User, error)
	Details(ctx context.Context, userID int) (User, error)
	UpdateDetails(ctx context.Context, params UpdateParams) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (User, error) {
	log := logger.FromCtx(ctx)

	if params.Email == "" || params.Password == "" || params.FirstName == "" || params.LastName == "" {
		return User{}, apperr.Validation("first_name, last_name, email and password are required")
	}
	if len(params.Password) < 6 {
		return User{}, apperr.Validation("password must be at least 6 characters")
	}
	if params.Type != "" && params.Type != string(RoleBuyer) && params.Type != string(RoleShop) {
		return User{}, apperr.Validationf("unknown account type: %s", params.Type)
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, params, hashed)
	if err != nil {
		log.Error("failed to create user", zap.String("email", params.Email), zap.Error(err))
		if strings.Contains(err.Error(), "users_email_key") {
			return User{}, apperr.Wrap(apperr.KindValidation, ErrEmailExists.Error(), ErrEmailExists)
		}
		return User{}, err
	}

	// Confirmation key would go out by email; delivery is out of scope,
	// the key is persisted so Confirm can match it.
	if err := s.repo.SaveConfirmToken(ctx, u.ID, uuid.NewString()); err != nil {
		log.Error("failed to save confirm token", zap.Int("user_id", u.ID), zap.Error(err))
		return User{}, err
	}

	log.Info("register service completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", params.Email),
	)

	return u, nil
}

func (s *service) Confirm(ctx context.Context, email, token string) error {
	if email == "" || token == "" {
		return apperr.Validation("email and token are required")
	}

	ok, err := s.repo.Activate(ctx, email, token)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Wrap(apperr.KindValidation, ErrTokenMismatch.Error(), ErrTokenMismatch)
	}
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Debug("login: email not found", zap.String("email", email))
		return "", User{}, apperr.Wrap(apperr.KindAuthentication, ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}

	if !u.IsActive {
		return "", User{}, apperr.Authentication("account is not confirmed")
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("login: password mismatch", zap.String("email", email))
		return "", User{}, apperr.Wrap(apperr.KindAuthentication, ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}

	token, err := GenerateToken(u.ID, string(u.Type), email)
	return token, u, err
}

func (s *service) Details(ctx context.Context, userID int) (User, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err == ErrUserNotFound {
		return User{}, apperr.Wrap(apperr.KindNotFound, ErrUserNotFound.Error(), err)
	}
	return u, err
}

func (s *service) UpdateDetails(ctx context.Context, params UpdateParams) error {
	if params.Password != nil {
		if len(*params.Password) < 6 {
			return apperr.Validation("password must be at least 6 characters")
		}
		hashed, err := HashPassword(*params.Password)
		if err != nil {
			return err
		}
		params.Password = &hashed
	}

	err := s.repo.Update(ctx, params)
	if err == ErrUserNotFound {
		return apperr.Wrap(apperr.KindNotFound, ErrUserNotFound.Error(), err)
	}
	return err
}
