package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del registro único de configuración sobre PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get lee el registro con clave fija; nil si nunca se guardó.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), `
		SELECT key, business_name, business_address, business_phone, business_email,
			timezone, currency, language, email_notifications, sms_notifications,
			appointment_reminders, order_notifications, inventory_alerts, reminder_time,
			theme, primary_color, sidebar_collapsed, compact_mode, created_at, updated_at
		FROM settings WHERE key = $1`,
		entity.SettingsKey,
	).Scan(
		&s.Key, &s.BusinessName, &s.BusinessAddress, &s.BusinessPhone, &s.BusinessEmail,
		&s.Timezone, &s.Currency, &s.Language, &s.EmailNotifications, &s.SMSNotifications,
		&s.AppointmentReminders, &s.OrderNotifications, &s.InventoryAlerts, &s.ReminderTime,
		&s.Theme, &s.PrimaryColor, &s.SidebarCollapsed, &s.CompactMode, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert escribe el registro completo con ON CONFLICT sobre la clave fija.
func (r *SettingsRepo) Upsert(settings *entity.Settings) error {
	settings.Key = entity.SettingsKey
	query := `
		INSERT INTO settings (key, business_name, business_address, business_phone, business_email,
			timezone, currency, language, email_notifications, sms_notifications,
			appointment_reminders, order_notifications, inventory_alerts, reminder_time,
			theme, primary_color, sidebar_collapsed, compact_mode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (key) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			business_address = EXCLUDED.business_address,
			business_phone = EXCLUDED.business_phone,
			business_email = EXCLUDED.business_email,
			timezone = EXCLUDED.timezone,
			currency = EXCLUDED.currency,
			language = EXCLUDED.language,
			email_notifications = EXCLUDED.email_notifications,
			sms_notifications = EXCLUDED.sms_notifications,
			appointment_reminders = EXCLUDED.appointment_reminders,
			order_notifications = EXCLUDED.order_notifications,
			inventory_alerts = EXCLUDED.inventory_alerts,
			reminder_time = EXCLUDED.reminder_time,
			theme = EXCLUDED.theme,
			primary_color = EXCLUDED.primary_color,
			sidebar_collapsed = EXCLUDED.sidebar_collapsed,
			compact_mode = EXCLUDED.compact_mode,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.Key, settings.BusinessName, settings.BusinessAddress, settings.BusinessPhone,
		settings.BusinessEmail, settings.Timezone, settings.Currency, settings.Language,
		settings.EmailNotifications, settings.SMSNotifications, settings.AppointmentReminders,
		settings.OrderNotifications, settings.InventoryAlerts, settings.ReminderTime,
		settings.Theme, settings.PrimaryColor, settings.SidebarCollapsed, settings.CompactMode,
		settings.CreatedAt, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
