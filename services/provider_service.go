package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/kunalsharma05/garagehub/cache"
	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/repository"
	"github.com/kunalsharma05/garagehub/utils"
)

// ProviderService manages garage accounts and the provider directory.
type ProviderService struct {
	providers repository.ProviderRepository
	cache     *cache.ProviderCache
	log       *zap.Logger
}

func NewProviderService(providers repository.ProviderRepository, c *cache.ProviderCache, log *zap.Logger) *ProviderService {
	return &ProviderService{providers: providers, cache: c, log: log}
}

// List returns the provider directory, serving from the cache when possible.
// Password hashes and image blobs are stripped from directory entries.
func (s *ProviderService) List(ctx context.Context) ([]models.Provider, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	providers, err := s.providers.FindAll(ctx)
	if err != nil {
		return nil, utils.Internal("failed to fetch providers", err)
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	for i := range providers {
		providers[i].Password = ""
		providers[i].ImageData = nil
	}

	s.cache.Set(ctx, providers)
	return providers, nil
}

// Register creates a garage account, optionally with a profile image tuple
// already attached to the model.
func (s *ProviderService) Register(ctx context.Context, provider *models.Provider) (*models.Provider, error) {
	if provider.GarageName == "" || provider.OwnerName == "" || provider.Password == "" {
		return nil, utils.InvalidInputf("garage name, owner name and password are required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(provider.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.Internal("failed to hash password", err)
	}
	provider.Password = string(hashed)

	if err := s.providers.Create(ctx, provider); err != nil {
		return nil, utils.Internal("failed to create provider", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("provider registered",
		zap.Uint("provider_id", provider.ID),
		zap.String("garage_name", provider.GarageName))
	provider.Password = ""
	return provider, nil
}

// Login checks garage credentials by owner name.
func (s *ProviderService) Login(ctx context.Context, ownerName, password string) (*models.Provider, error) {
	provider, err := s.providers.FindByOwnerName(ctx, ownerName)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(password)); err != nil {
		return nil, utils.Unauthorizedf("invalid credentials")
	}
	provider.Password = ""
	return provider, nil
}

// ResetPassword overwrites the stored password unconditionally.
func (s *ProviderService) ResetPassword(ctx context.Context, ownerName, newPassword string) error {
	if newPassword == "" {
		return utils.InvalidInputf("new password is required")
	}

	provider, err := s.providers.FindByOwnerName(ctx, ownerName)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.Internal("failed to hash password", err)
	}
	provider.Password = string(hashed)

	if err := s.providers.Save(ctx, provider); err != nil {
		return utils.Internal("failed to reset password", err)
	}
	s.log.Info("provider password reset", zap.String("owner_name", ownerName))
	return nil
}

// GetByID returns one provider without its password hash.
func (s *ProviderService) GetByID(ctx context.Context, id uint) (*models.Provider, error) {
	provider, err := s.providers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	provider.Password = ""
	return provider, nil
}

// UpdateProfile partially replaces profile fields; only non-zero values apply.
func (s *ProviderService) UpdateProfile(ctx context.Context, id uint, update *models.Provider) (*models.Provider, error) {
	provider, err := s.providers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.GarageName != "" {
		provider.GarageName = update.GarageName
	}
	if update.OwnerName != "" {
		provider.OwnerName = update.OwnerName
	}
	if update.GarageAddress != "" {
		provider.GarageAddress = update.GarageAddress
	}
	if update.Email != "" {
		provider.Email = update.Email
	}
	if update.PhoneNo != "" {
		provider.PhoneNo = update.PhoneNo
	}
	if update.Specializations != "" {
		provider.Specializations = update.Specializations
	}
	if update.AvailableServices != "" {
		provider.AvailableServices = update.AvailableServices
	}
	if len(update.ImageData) > 0 {
		provider.ImageName = update.ImageName
		provider.ImageType = update.ImageType
		provider.ImageData = update.ImageData
	}

	if err := s.providers.Save(ctx, provider); err != nil {
		return nil, utils.Internal("failed to update provider", err)
	}

	s.cache.Invalidate(ctx)
	provider.Password = ""
	return provider, nil
}

// GetImage returns the stored garage image tuple.
func (s *ProviderService) GetImage(ctx context.Context, id uint) (*models.Provider, error) {
	provider, err := s.providers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(provider.ImageData) == 0 {
		return nil, utils.NotFoundf("no image stored for provider: %d", id)
	}
	return provider, nil
}
