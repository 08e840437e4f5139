package dto

import "time"

// UpdateSettingsRequest edición parcial de la configuración del negocio.
type UpdateSettingsRequest struct {
	BusinessName    *string `json:"businessName"`
	BusinessAddress *string `json:"businessAddress"`
	BusinessPhone   *string `json:"businessPhone"`
	BusinessEmail   *string `json:"businessEmail"`
	Timezone        *string `json:"timezone"`
	Currency        *string `json:"currency"`
	Language        *string `json:"language"`

	EmailNotifications   *bool `json:"emailNotifications"`
	SMSNotifications     *bool `json:"smsNotifications"`
	AppointmentReminders *bool `json:"appointmentReminders"`
	OrderNotifications   *bool `json:"orderNotifications"`
	InventoryAlerts      *bool `json:"inventoryAlerts"`
	ReminderTime         *int  `json:"reminderTime"`

	Theme            *string `json:"theme"`
	PrimaryColor     *string `json:"primaryColor"`
	SidebarCollapsed *bool   `json:"sidebarCollapsed"`
	CompactMode      *bool   `json:"compactMode"`
}

// SettingsResponse configuración serializada.
type SettingsResponse struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	BusinessPhone   string `json:"businessPhone,omitempty"`
	BusinessEmail   string `json:"businessEmail,omitempty"`
	Timezone        string `json:"timezone"`
	Currency        string `json:"currency"`
	Language        string `json:"language"`

	EmailNotifications   bool `json:"emailNotifications"`
	SMSNotifications     bool `json:"smsNotifications"`
	AppointmentReminders bool `json:"appointmentReminders"`
	OrderNotifications   bool `json:"orderNotifications"`
	InventoryAlerts      bool `json:"inventoryAlerts"`
	ReminderTime         int  `json:"reminderTime"`

	Theme            string `json:"theme"`
	PrimaryColor     string `json:"primaryColor"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
	CompactMode      bool   `json:"compactMode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
