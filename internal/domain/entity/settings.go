package entity

import "time"

// SettingsKey es la clave fija del único registro de configuración.
// Un solo documento direccionado por clave conocida, sin flags de unicidad.
const SettingsKey = "default"

// Settings es la configuración del negocio.
type Settings struct {
	Key             string
	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
	BusinessEmail   string
	Timezone        string
	Currency        string
	Language        string

	EmailNotifications   bool
	SMSNotifications     bool
	AppointmentReminders bool
	OrderNotifications   bool
	InventoryAlerts      bool
	ReminderTime         int // minutos de antelación

	Theme            string // light, dark, system
	PrimaryColor     string
	SidebarCollapsed bool
	CompactMode      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings devuelve la configuración por defecto del negocio.
func DefaultSettings() *Settings {
	return &Settings{
		Key:                  SettingsKey,
		BusinessName:         "BeautyBook",
		Timezone:             "Asia/Ho_Chi_Minh",
		Currency:             "VND",
		Language:             "vi",
		EmailNotifications:   true,
		SMSNotifications:     false,
		AppointmentReminders: true,
		OrderNotifications:   true,
		InventoryAlerts:      true,
		ReminderTime:         30,
		Theme:                "system",
		PrimaryColor:         "purple",
	}
}
