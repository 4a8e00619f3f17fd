package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billmate-pos/internal/domain"
	"github.com/jhoicas/billmate-pos/internal/domain/entity"
)

func TestSettingsGet_AplicaDefaults(t *testing.T) {
	uc := NewSettingsUseCase(newMemSettingsRepo())
	ctx := context.Background()

	currency, err := uc.Get(ctx, entity.SettingCurrency)
	require.NoError(t, err)
	assert.Equal(t, "₹", currency)

	_, err = uc.Get(ctx, "clave_desconocida")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsSet_ValidaUmbral(t *testing.T) {
	repo := newMemSettingsRepo()
	uc := NewSettingsUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Set(ctx, entity.SettingLowStockThreshold, "8"))
	v, err := uc.Get(ctx, entity.SettingLowStockThreshold)
	require.NoError(t, err)
	assert.Equal(t, "8", v)

	assert.ErrorIs(t, uc.Set(ctx, entity.SettingLowStockThreshold, "ocho"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Set(ctx, entity.SettingLowStockThreshold, "-1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Set(ctx, entity.SettingShopName, "   "), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Set(ctx, "clave_desconocida", "x"), domain.ErrNotFound)
}

func TestSettingsGetAll_DefaultsSobreescritos(t *testing.T) {
	repo := newMemSettingsRepo()
	uc := NewSettingsUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Set(ctx, entity.SettingShopName, "Tienda Doña Rosa"))

	all, err := uc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tienda Doña Rosa", all.Settings[entity.SettingShopName])
	assert.Equal(t, "₹", all.Settings[entity.SettingCurrency], "las claves no tocadas conservan el default")
	assert.Equal(t, "5", all.Settings[entity.SettingLowStockThreshold])
}
