package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"

	"gorm.io/gorm"
)

type SettingsService interface {
	GetStoreSettings(ctx context.Context, storeCode string) (*model.StoreSettings, error)
	SaveStoreSettings(ctx context.Context, settings *model.StoreSettings) (*model.StoreSettings, error)

	ListPrinters(ctx context.Context, storeCode string) ([]model.PrinterConfig, error)
	SavePrinter(ctx context.Context, printer *model.PrinterConfig) (*model.PrinterConfig, error)
	DeletePrinter(ctx context.Context, id uint) error

	ListPaymentMethods(ctx context.Context, storeCode string) ([]model.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, method *model.PaymentMethod) (*model.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, id uint) error

	ListTemplates(ctx context.Context, storeCode string) ([]model.InvoiceTemplate, error)
	SaveTemplate(ctx context.Context, template *model.InvoiceTemplate) (*model.InvoiceTemplate, error)

	GetSetting(ctx context.Context, storeCode, key string) (string, error)
	SetSetting(ctx context.Context, storeCode, key, value string) error
	ListSettings(ctx context.Context, storeCode string) (map[string]string, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetStoreSettings falls back to a named default row so a fresh store
// works before anyone visits the settings screen.
func (s *settingsService) GetStoreSettings(ctx context.Context, storeCode string) (*model.StoreSettings, error) {
	settings, err := s.settingsRepo.FindStore(ctx, storeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.StoreSettings{StoreCode: storeCode, Name: storeCode, Currency: "VND"}, nil
		}
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) SaveStoreSettings(ctx context.Context, settings *model.StoreSettings) (*model.StoreSettings, error) {
	settings.StoreCode = strings.TrimSpace(settings.StoreCode)
	if settings.StoreCode == "" {
		return nil, fmt.Errorf("store code is required")
	}
	if strings.TrimSpace(settings.Name) == "" {
		return nil, fmt.Errorf("store name is required")
	}
	if settings.Currency == "" {
		settings.Currency = "VND"
	}

	if existing, err := s.settingsRepo.FindStore(ctx, settings.StoreCode); err == nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load store settings: %w", err)
	}

	if err := s.settingsRepo.SaveStore(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save store settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) ListPrinters(ctx context.Context, storeCode string) ([]model.PrinterConfig, error) {
	return s.settingsRepo.ListPrinters(ctx, storeCode)
}

func (s *settingsService) SavePrinter(ctx context.Context, printer *model.PrinterConfig) (*model.PrinterConfig, error) {
	if strings.TrimSpace(printer.Name) == "" {
		return nil, fmt.Errorf("printer name is required")
	}
	valid := false
	for _, t := range model.AllowedPrinterTypes {
		if printer.Type == t {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid printer type %q", printer.Type)
	}
	if printer.Port == 0 {
		printer.Port = 9100
	}
	if printer.PaperSize == "" {
		printer.PaperSize = "80mm"
	}

	if err := s.settingsRepo.SavePrinter(ctx, printer); err != nil {
		return nil, fmt.Errorf("failed to save printer: %w", err)
	}
	return printer, nil
}

func (s *settingsService) DeletePrinter(ctx context.Context, id uint) error {
	return s.settingsRepo.DeletePrinter(ctx, id)
}

func (s *settingsService) ListPaymentMethods(ctx context.Context, storeCode string) ([]model.PaymentMethod, error) {
	return s.settingsRepo.ListPaymentMethods(ctx, storeCode)
}

func (s *settingsService) SavePaymentMethod(ctx context.Context, method *model.PaymentMethod) (*model.PaymentMethod, error) {
	if strings.TrimSpace(method.Code) == "" || strings.TrimSpace(method.Name) == "" {
		return nil, fmt.Errorf("payment method code and name are required")
	}
	if err := s.settingsRepo.SavePaymentMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to save payment method: %w", err)
	}
	return method, nil
}

func (s *settingsService) DeletePaymentMethod(ctx context.Context, id uint) error {
	return s.settingsRepo.DeletePaymentMethod(ctx, id)
}

func (s *settingsService) ListTemplates(ctx context.Context, storeCode string) ([]model.InvoiceTemplate, error) {
	return s.settingsRepo.ListTemplates(ctx, storeCode)
}

func (s *settingsService) SaveTemplate(ctx context.Context, template *model.InvoiceTemplate) (*model.InvoiceTemplate, error) {
	if strings.TrimSpace(template.Name) == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if err := s.settingsRepo.SaveTemplate(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}
	return template, nil
}

func (s *settingsService) GetSetting(ctx context.Context, storeCode, key string) (string, error) {
	setting, err := s.settingsRepo.GetSetting(ctx, storeCode, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return setting.Value, nil
}

func (s *settingsService) SetSetting(ctx context.Context, storeCode, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	return s.settingsRepo.SetSetting(ctx, &model.GeneralSetting{
		Key:       key,
		Value:     value,
		StoreCode: strings.TrimSpace(storeCode),
	})
}

func (s *settingsService) ListSettings(ctx context.Context, storeCode string) (map[string]string, error) {
	settings, err := s.settingsRepo.ListSettings(ctx, storeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}
	return out, nil
}
