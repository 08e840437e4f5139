package usecase

import (
	"time"

	"github.com/tu-usuario/beautybook-api/internal/application/dto"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

// SettingsUseCase gestiona el registro único de configuración del negocio.
// Get nunca falla por ausencia: si no hay registro devuelve los defaults.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve la configuración vigente, o los defaults si nunca se guardó.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
	}
	return toSettingsResponse(settings), nil
}

// Update aplica cambios parciales sobre la configuración vigente (o los
// defaults si es la primera escritura) y persiste con upsert.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
		settings.CreatedAt = time.Now()
	}

	if in.BusinessName != nil {
		settings.BusinessName = *in.BusinessName
	}
	if in.BusinessAddress != nil {
		settings.BusinessAddress = *in.BusinessAddress
	}
	if in.BusinessPhone != nil {
		settings.BusinessPhone = *in.BusinessPhone
	}
	if in.BusinessEmail != nil {
		settings.BusinessEmail = *in.BusinessEmail
	}
	if in.Timezone != nil {
		settings.Timezone = *in.Timezone
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.Language != nil {
		settings.Language = *in.Language
	}
	if in.EmailNotifications != nil {
		settings.EmailNotifications = *in.EmailNotifications
	}
	if in.SMSNotifications != nil {
		settings.SMSNotifications = *in.SMSNotifications
	}
	if in.AppointmentReminders != nil {
		settings.AppointmentReminders = *in.AppointmentReminders
	}
	if in.OrderNotifications != nil {
		settings.OrderNotifications = *in.OrderNotifications
	}
	if in.InventoryAlerts != nil {
		settings.InventoryAlerts = *in.InventoryAlerts
	}
	if in.ReminderTime != nil {
		settings.ReminderTime = *in.ReminderTime
	}
	if in.Theme != nil {
		settings.Theme = *in.Theme
	}
	if in.PrimaryColor != nil {
		settings.PrimaryColor = *in.PrimaryColor
	}
	if in.SidebarCollapsed != nil {
		settings.SidebarCollapsed = *in.SidebarCollapsed
	}
	if in.CompactMode != nil {
		settings.CompactMode = *in.CompactMode
	}
	settings.UpdatedAt = time.Now()

	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Reset vuelve la configuración a los valores por defecto.
func (uc *SettingsUseCase) Reset() (*dto.SettingsResponse, error) {
	settings := entity.DefaultSettings()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = settings.CreatedAt
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName:         s.BusinessName,
		BusinessAddress:      s.BusinessAddress,
		BusinessPhone:        s.BusinessPhone,
		BusinessEmail:        s.BusinessEmail,
		Timezone:             s.Timezone,
		Currency:             s.Currency,
		Language:             s.Language,
		EmailNotifications:   s.EmailNotifications,
		SMSNotifications:     s.SMSNotifications,
		AppointmentReminders: s.AppointmentReminders,
		OrderNotifications:   s.OrderNotifications,
		InventoryAlerts:      s.InventoryAlerts,
		ReminderTime:         s.ReminderTime,
		Theme:                s.Theme,
		PrimaryColor:         s.PrimaryColor,
		SidebarCollapsed:     s.SidebarCollapsed,
		CompactMode:          s.CompactMode,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
