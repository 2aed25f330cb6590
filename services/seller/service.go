package seller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	sellerRepo "slotmart/database/repository/seller"
	"slotmart/models"
	"slotmart/utils"
)

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	directoryCacheKey = "sellers:directory"
	directoryCacheTTL = 5 * time.Minute
	sellerTokenTTL    = 7 * 24 * time.Hour
)

func (s *DefaultSellerService) Register(ctx context.Context, data models.SellerRegistrationData) (*models.Seller, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	seller := &models.Seller{
		Name:         data.Name,
		Email:        data.Email,
		Category:     data.Category,
		About:        data.About,
		Fee:          data.Fee,
		Available:    true,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, seller); err != nil {
		return nil, err
	}

	s.invalidateDirectory(ctx)
	public := seller.PublicView()
	return &public, nil
}

func (s *DefaultSellerService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	seller, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sellerRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(seller.ID, utils.RoleSeller, sellerTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{ID: seller.ID, Name: seller.Name, Token: token}, nil
}

func (s *DefaultSellerService) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns password-free seller profiles. The directory changes rarely
// compared to how often buyers browse it, so it is served from a short-TTL
// redis cache when one is configured.
func (s *DefaultSellerService) List(ctx context.Context) ([]models.Seller, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, directoryCacheKey).Result(); err == nil {
			var sellers []models.Seller
			if err := json.Unmarshal([]byte(data), &sellers); err == nil {
				return sellers, nil
			}
		}
	}

	sellers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]models.Seller, len(sellers))
	for i, sl := range sellers {
		public[i] = sl.PublicView()
	}

	if s.Cache != nil {
		if data, err := json.Marshal(public); err == nil {
			if err := s.Cache.Set(ctx, directoryCacheKey, data, directoryCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache seller directory", zap.Error(err))
			}
		}
	}
	return public, nil
}

// UpdateProfile applies the seller's listing changes. A fee change affects
// future bookings only; existing appointments keep their snapshotted amount.
func (s *DefaultSellerService) UpdateProfile(ctx context.Context, id string, update models.SellerProfileUpdate) (*models.Seller, error) {
	if err := s.Repo.UpdateProfile(ctx, id, update); err != nil {
		return nil, err
	}
	s.invalidateDirectory(ctx)

	seller, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := seller.PublicView()
	return &public, nil
}

func (s *DefaultSellerService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.Repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	s.invalidateDirectory(ctx)
	return nil
}

func (s *DefaultSellerService) invalidateDirectory(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, directoryCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate seller directory cache", zap.Error(err))
	}
}
