package seller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"slotmart/config"
	sellerRepo "slotmart/database/repository/seller"
	"slotmart/models"
	"slotmart/utils"
)

type stubSellerRepo struct {
	sellers map[string]*models.Seller
}

func newStubSellerRepo() *stubSellerRepo {
	return &stubSellerRepo{sellers: make(map[string]*models.Seller)}
}

func (r *stubSellerRepo) Create(ctx context.Context, s *models.Seller) error {
	if s.ID == "" {
		s.ID = "seller-" + s.Email
	}
	copied := *s
	r.sellers[s.ID] = &copied
	return nil
}

func (r *stubSellerRepo) GetByID(ctx context.Context, id string) (*models.Seller, error) {
	s, ok := r.sellers[id]
	if !ok {
		return nil, sellerRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubSellerRepo) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	for _, s := range r.sellers {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, sellerRepo.ErrNotFound
}

func (r *stubSellerRepo) List(ctx context.Context) ([]models.Seller, error) {
	out := make([]models.Seller, 0, len(r.sellers))
	for _, s := range r.sellers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSellerRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	s, ok := r.sellers[id]
	if !ok {
		return sellerRepo.ErrNotFound
	}
	s.Available = available
	return nil
}

func (r *stubSellerRepo) UpdateProfile(ctx context.Context, id string, update models.SellerProfileUpdate) error {
	s, ok := r.sellers[id]
	if !ok {
		return sellerRepo.ErrNotFound
	}
	if update.About != "" {
		s.About = update.About
	}
	if update.Fee != nil {
		s.Fee = *update.Fee
	}
	return nil
}

func (r *stubSellerRepo) ReserveSlot(ctx context.Context, sellerID, day, slot string) error {
	return nil
}

func (r *stubSellerRepo) ReleaseSlot(ctx context.Context, sellerID, day, slot string) error {
	return nil
}

func newTestService(t *testing.T) (*DefaultSellerService, *stubSellerRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	repo := newStubSellerRepo()
	return &DefaultSellerService{Repo: repo}, repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	public, err := svc.Register(ctx, models.SellerRegistrationData{
		Name:     "Studio One",
		Email:    "one@studio.test",
		Password: "correct horse",
		Category: "photography",
		Fee:      50,
	})
	require.NoError(t, err)
	assert.True(t, public.Available, "new sellers start available")
	assert.Empty(t, public.PasswordHash, "registration response carries no credentials")

	stored, err := repo.GetByID(ctx, public.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seller, err := svc.Register(ctx, models.SellerRegistrationData{
		Name:     "Studio One",
		Email:    "one@studio.test",
		Password: "correct horse",
		Category: "photography",
		Fee:      50,
	})
	require.NoError(t, err)

	resp, err := svc.Authenticate(ctx, "one@studio.test", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, seller.ID, resp.ID)

	sub, role, err := utils.ExtractPrincipalFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, seller.ID, sub)
	assert.Equal(t, utils.RoleSeller, role)

	_, err = svc.Authenticate(ctx, "one@studio.test", "wrong horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@studio.test", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestListStripsCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.SellerRegistrationData{
		Name:     "Studio One",
		Email:    "one@studio.test",
		Password: "correct horse",
		Category: "photography",
		Fee:      50,
	})
	require.NoError(t, err)

	sellers, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Empty(t, sellers[0].PasswordHash)
	assert.Nil(t, sellers[0].SlotsBooked)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seller, err := svc.Register(ctx, models.SellerRegistrationData{
		Name:     "Studio One",
		Email:    "one@studio.test",
		Password: "correct horse",
		Category: "photography",
		Fee:      50,
	})
	require.NoError(t, err)

	fee := 80.0
	updated, err := svc.UpdateProfile(ctx, seller.ID, models.SellerProfileUpdate{
		About: "Weekend portrait sessions",
		Fee:   &fee,
	})
	require.NoError(t, err)
	assert.Equal(t, "Weekend portrait sessions", updated.About)
	assert.Equal(t, 80.0, updated.Fee)
	assert.Empty(t, updated.PasswordHash)

	// Partial update leaves the other field alone.
	updated, err = svc.UpdateProfile(ctx, seller.ID, models.SellerProfileUpdate{About: "Studio sessions only"})
	require.NoError(t, err)
	assert.Equal(t, "Studio sessions only", updated.About)
	assert.Equal(t, 80.0, updated.Fee)

	_, err = svc.UpdateProfile(ctx, "ghost", models.SellerProfileUpdate{About: "x"})
	assert.ErrorIs(t, err, sellerRepo.ErrNotFound)
}

func TestSetAvailability(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	seller, err := svc.Register(ctx, models.SellerRegistrationData{
		Name:     "Studio One",
		Email:    "one@studio.test",
		Password: "correct horse",
		Category: "photography",
		Fee:      50,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetAvailability(ctx, seller.ID, false))
	stored, err := repo.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.False(t, stored.Available)

	assert.ErrorIs(t, svc.SetAvailability(ctx, "ghost", true), sellerRepo.ErrNotFound)
}
