// Package authz centraliza la autorización: una política (principal, acción)
// -> permitir/denegar, en lugar de comparaciones de rol dispersas en handlers.
package authz

// Principal es la identidad ya verificada por el middleware de auth.
type Principal struct {
	UserID string
	Role   string // "admin" | "employee"
}

// Action es una capacidad nombrada del sistema.
type Action string

// Acciones restringidas. Todo lo no listado aquí está permitido a cualquier
// usuario autenticado.
const (
	ActionOrderUpdate    Action = "order.update"
	ActionOrderDelete    Action = "order.delete"
	ActionCustomerDelete Action = "customer.delete"
	ActionProductWrite   Action = "product.write"
	ActionServiceWrite   Action = "service.write"
	ActionStockWrite     Action = "stock.write"
	ActionUserManage     Action = "user.manage"
	ActionReportView     Action = "report.view"
	ActionSettingsWrite  Action = "settings.write"
)

// adminOnly son las acciones reservadas al rol admin.
var adminOnly = map[Action]bool{
	ActionOrderUpdate:    true,
	ActionOrderDelete:    true,
	ActionCustomerDelete: true,
	ActionProductWrite:   true,
	ActionServiceWrite:   true,
	ActionStockWrite:     true,
	ActionUserManage:     true,
	ActionReportView:     true,
	ActionSettingsWrite:  true,
}

// Allow decide si el principal puede ejecutar la acción.
func Allow(p Principal, action Action) bool {
	if p.Role == "admin" {
		return true
	}
	return !adminOnly[action]
}
