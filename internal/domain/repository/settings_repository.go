package repository

import "github.com/tu-usuario/beautybook-api/internal/domain/entity"

// SettingsRepository define el puerto del registro único de configuración,
// direccionado por entity.SettingsKey.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Upsert(settings *entity.Settings) error
}
