package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
	"github.com/farmgate/farmgate-api/pkg/apperror"
)

func TestCreateProfileCanonicalizesConfig(t *testing.T) {
	repo := newFakeLogisticsRepo()
	svc := NewLogisticsService(repo)

	provider, err := svc.CreateProfile(context.Background(), &CreateProfileInput{
		UserID:       uuid.New(),
		CompanyName:  "Harvest Haulers",
		PricingModel: enum.PricingModelTieredByWeight,
		// Legacy prefixes and stray whitespace are tolerated on input
		PricingConfig: []string{"w:0-10@0.06", " 10-50@0.04 ", "50-+@0.02"},
	})
	require.NoError(t, err)

	assert.Equal(t, "0-10@0.06,10-50@0.04,50-+@0.02", provider.PricingConfig)
	assert.True(t, provider.Active)
}

func TestCreateProfileRejectsInvalidConfig(t *testing.T) {
	svc := NewLogisticsService(newFakeLogisticsRepo())

	tests := []struct {
		name    string
		model   enum.PricingModel
		entries []string
	}{
		{"overlapping tiers", enum.PricingModelTieredByWeight, []string{"0-20@0.06", "10-30@0.04"}},
		{"all entries malformed", enum.PricingModelTieredByWeight, []string{"garbage", "also@bad@data"}},
		{"tier after unbounded", enum.PricingModelTieredByDistance, []string{"0-+@0.05", "10-20@0.03"}},
		{"empty flat config", enum.PricingModelFlatRate, nil},
		{"malformed flat rate", enum.PricingModelFlatRate, []string{"not-a-number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProfile(context.Background(), &CreateProfileInput{
				UserID:        uuid.New(),
				CompanyName:   "Harvest Haulers",
				PricingModel:  tt.model,
				PricingConfig: tt.entries,
			})
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)
		})
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	repo := newFakeLogisticsRepo()
	svc := NewLogisticsService(repo)
	userID := uuid.New()

	input := &CreateProfileInput{
		UserID:        userID,
		CompanyName:   "Harvest Haulers",
		PricingModel:  enum.PricingModelFlatRate,
		PricingConfig: []string{"0.05"},
	}

	_, err := svc.CreateProfile(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateProfile(context.Background(), input)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestUpdateProfileKeepsModel(t *testing.T) {
	repo := newFakeLogisticsRepo()
	svc := NewLogisticsService(repo)
	userID := uuid.New()

	_, err := svc.CreateProfile(context.Background(), &CreateProfileInput{
		UserID:        userID,
		CompanyName:   "Harvest Haulers",
		PricingModel:  enum.PricingModelTieredByWeight,
		PricingConfig: []string{"0-10@0.06", "10-+@0.04"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:        userID,
		PricingConfig: []string{"0-20@0.05", "20-+@0.03"},
	})
	require.NoError(t, err)

	// Config changed, model stayed
	assert.Equal(t, enum.PricingModelTieredByWeight, updated.PricingModel)
	assert.Equal(t, "0-20@0.05,20-+@0.03", updated.PricingConfig)
}

func TestUpdateProfileRevalidatesConfig(t *testing.T) {
	repo := newFakeLogisticsRepo()
	svc := NewLogisticsService(repo)
	userID := uuid.New()

	_, err := svc.CreateProfile(context.Background(), &CreateProfileInput{
		UserID:        userID,
		CompanyName:   "Harvest Haulers",
		PricingModel:  enum.PricingModelTieredByWeight,
		PricingConfig: []string{"0-10@0.06", "10-+@0.04"},
	})
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:        userID,
		PricingConfig: []string{"0-20@0.05", "10-30@0.03"},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewLogisticsService(newFakeLogisticsRepo())

	_, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID:      uuid.New(),
		CompanyName: "Nobody",
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateProfileDeactivate(t *testing.T) {
	repo := newFakeLogisticsRepo()
	svc := NewLogisticsService(repo)
	userID := uuid.New()

	_, err := svc.CreateProfile(context.Background(), &CreateProfileInput{
		UserID:        userID,
		CompanyName:   "Harvest Haulers",
		PricingModel:  enum.PricingModelFlatRate,
		PricingConfig: []string{"0.05"},
	})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateProfile(context.Background(), &UpdateProfileInput{
		UserID: userID,
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	providers, err := svc.ListActiveProviders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, providers)
}
