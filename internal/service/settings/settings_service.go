package settings

import (
	"context"

	"fitlife-service/internal/domain/settings"

	"go.uber.org/zap"
)

type SettingsStore interface {
	Get(ctx context.Context) (*settings.Settings, error)
	Update(ctx context.Context, s *settings.Settings) error
	GetNotifications(ctx context.Context) (*settings.NotificationSettings, error)
	UpdateNotifications(ctx context.Context, n *settings.NotificationSettings) error
}

type SettingsService struct {
	settingsRepo SettingsStore
	logger       *zap.Logger
}

func NewSettingsService(settingsRepo SettingsStore, logger *zap.Logger) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo, logger: logger}
}

// GetSettings returns the global configuration row.
func (s *SettingsService) GetSettings(ctx context.Context) (*settings.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings applies partial updates to the global configuration.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *settings.UpdateSettingsRequest) (*settings.Settings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.GymName != nil {
		current.GymName = *req.GymName
	}
	if req.Currency != nil {
		current.Currency = *req.Currency
	}
	if req.EnableMpesa != nil {
		current.EnableMpesa = *req.EnableMpesa
	}
	if req.EnableEmola != nil {
		current.EnableEmola = *req.EnableEmola
	}
	if req.EnableCard != nil {
		current.EnableCard = *req.EnableCard
	}
	if req.EnableNetShop != nil {
		current.EnableNetShop = *req.EnableNetShop
	}
	if req.EnableCash != nil {
		current.EnableCash = *req.EnableCash
	}
	if req.ReceiptFooter != nil {
		current.ReceiptFooter = *req.ReceiptFooter
	}

	if err := s.settingsRepo.Update(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("settings updated")

	return current, nil
}

// GetNotificationSettings returns the notification configuration row.
func (s *SettingsService) GetNotificationSettings(ctx context.Context) (*settings.NotificationSettings, error) {
	return s.settingsRepo.GetNotifications(ctx)
}

// UpdateNotificationSettings applies partial updates to the notification
// configuration.
func (s *SettingsService) UpdateNotificationSettings(ctx context.Context, req *settings.UpdateNotificationSettingsRequest) (*settings.NotificationSettings, error) {
	current, err := s.settingsRepo.GetNotifications(ctx)
	if err != nil {
		return nil, err
	}

	if req.NotifyPayments != nil {
		current.NotifyPayments = *req.NotifyPayments
	}
	if req.NotifyCheckins != nil {
		current.NotifyCheckins = *req.NotifyCheckins
	}
	if req.NotifyExpiring != nil {
		current.NotifyExpiring = *req.NotifyExpiring
	}
	if req.ExpiryDaysAhead != nil {
		current.ExpiryDaysAhead = *req.ExpiryDaysAhead
	}

	if err := s.settingsRepo.UpdateNotifications(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("notification settings updated")

	return current, nil
}
