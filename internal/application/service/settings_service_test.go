package service

import (
	"context"
	"testing"

	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	err := svc.UpdateSettings(ctx, map[string]any{
		"shop_name":       "咖啡店",
		"member_discount": 10,
		"payment_methods": []string{"现金", "支付宝", "微信"},
	})
	require.NoError(t, err)

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "咖啡店", settings.ShopName)
	assert.Equal(t, 10.0, settings.MemberDiscount)
	assert.Equal(t, []string{"现金", "支付宝", "微信"}, settings.PaymentMethods)
}

func TestSettings_UpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.UpdateSettings(ctx, map[string]any{"shop_name": "老店"}))
	require.NoError(t, svc.UpdateSettings(ctx, map[string]any{"shop_name": "新店"}))

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "新店", settings.ShopName)
}

func TestSettings_UnknownKeysKeptInExtra(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))
	ctx := context.Background()

	require.NoError(t, svc.UpdateSettings(ctx, map[string]any{"receipt_footer": "谢谢惠顾"}))

	settings, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	require.Contains(t, settings.Extra, "receipt_footer")
	assert.Equal(t, "谢谢惠顾", settings.Extra["receipt_footer"])
}

func TestGetSetting_Unknown(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	_, err := svc.GetSetting(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateSettings_RejectsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db))

	err := svc.UpdateSettings(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
