package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
)

// ShopSettings is the typed view over the settings rows. Unknown keys are
// carried through in Extra so the store stays open-ended.
type ShopSettings struct {
	ShopName       string         `json:"shop_name"`
	MemberDiscount float64        `json:"member_discount"`
	PaymentMethods []string       `json:"payment_methods"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// SettingsService handles shop configuration
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns all settings decoded into the typed view. Values that
// fail to decode as JSON are kept as their raw string.
func (s *SettingsService) GetSettings(ctx context.Context) (*ShopSettings, error) {
	rows, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	settings := &ShopSettings{
		PaymentMethods: []string{},
		Extra:          map[string]any{},
	}
	for _, row := range rows {
		switch row.Key {
		case entity.SettingShopName:
			settings.ShopName = row.Value
		case entity.SettingMemberDiscount:
			if v, err := strconv.ParseFloat(row.Value, 64); err == nil {
				settings.MemberDiscount = v
			}
		case entity.SettingPaymentMethods:
			var methods []string
			if err := json.Unmarshal([]byte(row.Value), &methods); err == nil {
				settings.PaymentMethods = methods
			}
		default:
			settings.Extra[row.Key] = decodeSettingValue(row.Value)
		}
	}
	if len(settings.Extra) == 0 {
		settings.Extra = nil
	}

	return settings, nil
}

// GetSetting returns one setting's decoded value
func (s *SettingsService) GetSetting(ctx context.Context, key string) (any, error) {
	row, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return decodeSettingValue(row.Value), nil
}

// UpdateSettings upserts every pair in the map. Strings are stored as-is;
// any other value is stored as its JSON encoding.
func (s *SettingsService) UpdateSettings(ctx context.Context, values map[string]any) error {
	if len(values) == 0 {
		return apperror.NewBadRequestError("No settings provided")
	}

	for key, value := range values {
		if key == "" {
			return apperror.NewBadRequestError("Setting key must not be empty")
		}
		encoded, err := encodeSettingValue(value)
		if err != nil {
			return apperror.NewBadRequestError("Setting value for " + key + " is not encodable")
		}
		if err := s.settingsRepo.Upsert(ctx, key, encoded); err != nil {
			return err
		}
	}

	return nil
}

func encodeSettingValue(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// decodeSettingValue tries JSON first so numbers, booleans and arrays come
// back typed, and falls back to the raw string for plain values
func decodeSettingValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
