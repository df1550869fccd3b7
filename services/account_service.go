package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

// AccountService manages customer accounts. Passwords are bcrypt-hashed at the
// service boundary; nothing below it ever sees or stores a clear-text password.
type AccountService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAccountService(users repository.UserRepository, log *zap.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

// Register creates a customer account. Username must be unique.
func (s *AccountService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Username == "" || user.Password == "" || user.Name == "" {
		return nil, utils.InvalidInputf("name, username and password are required")
	}

	if _, err := s.users.FindByUsername(ctx, user.Username); err == nil {
		return nil, utils.Conflictf("user already exists with username: %s", user.Username)
	} else if !utils.IsKind(err, utils.KindNotFound) {
		return nil, utils.Internal("failed to check existing user", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.Internal("failed to hash password", err)
	}
	user.Password = string(hashed)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.Internal("failed to create user", err)
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	user.Password = ""
	return user, nil
}

// Login checks the credentials and returns the account. The caller decides how
// much of the NotFound/Unauthorized distinction to expose.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorizedf("invalid credentials")
	}
	user.Password = ""
	return user, nil
}

// ResetPassword overwrites the stored password unconditionally; there is no
// token or verification step in this flow.
func (s *AccountService) ResetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return utils.InvalidInputf("new password is required")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("failed to hash password", err)
	}
	user.Password = string(hashed)

	if err := s.users.Save(ctx, user); err != nil {
		return utils.Internal("failed to reset password", err)
	}
	s.log.Info("password reset", zap.String("username", username))
	return nil
}

// GetByUsername returns the account without its password hash.
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile partially replaces profile fields: only non-zero values from
// the update are applied. The password is not touched here.
func (s *AccountService) UpdateProfile(ctx context.Context, username string, update *models.User) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.Address != "" {
		user.Address = update.Address
	}
	if update.VehicleType != "" {
		user.VehicleType = update.VehicleType
	}
	if update.VehicleModel != "" {
		user.VehicleModel = update.VehicleModel
	}
	if update.YearOfManufacture > 0 {
		user.YearOfManufacture = update.YearOfManufacture
	}
	if update.RegNo != "" {
		user.RegNo = update.RegNo
	}
	if update.DateOfBirth != nil {
		user.DateOfBirth = update.DateOfBirth
	}
	if len(update.ImageData) > 0 {
		user.ImageName = update.ImageName
		user.ImageType = update.ImageType
		user.ImageData = update.ImageData
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, utils.Internal("failed to update profile", err)
	}
	user.Password = ""
	return user, nil
}

// GetImage returns the stored profile image tuple.
func (s *AccountService) GetImage(ctx context.Context, username string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(user.ImageData) == 0 {
		return nil, utils.NotFoundf("no image stored for user: %s", username)
	}
	return user, nil
}
