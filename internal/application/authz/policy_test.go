package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/beautybook-api/internal/application/authz"
)

var (
	admin    = authz.Principal{UserID: "u1", Role: "admin"}
	employee = authz.Principal{UserID: "u2", Role: "employee"}
)

// Admin puede ejecutar cualquier acción, incluidas las restringidas.
func TestAllow_AdminTodoPermitido(t *testing.T) {
	actions := []authz.Action{
		authz.ActionOrderUpdate,
		authz.ActionOrderDelete,
		authz.ActionCustomerDelete,
		authz.ActionProductWrite,
		authz.ActionServiceWrite,
		authz.ActionStockWrite,
		authz.ActionUserManage,
		authz.ActionReportView,
		authz.ActionSettingsWrite,
	}
	for _, a := range actions {
		assert.True(t, authz.Allow(admin, a), "admin debe poder ejecutar %s", a)
	}
}

// Employee tiene denegadas las acciones reservadas a admin.
func TestAllow_EmployeeDenegadoEnRestringidas(t *testing.T) {
	denied := []authz.Action{
		authz.ActionOrderUpdate,
		authz.ActionOrderDelete,
		authz.ActionCustomerDelete,
		authz.ActionProductWrite,
		authz.ActionServiceWrite,
		authz.ActionStockWrite,
		authz.ActionUserManage,
		authz.ActionReportView,
		authz.ActionSettingsWrite,
	}
	for _, a := range denied {
		assert.False(t, authz.Allow(employee, a), "employee no debe poder ejecutar %s", a)
	}
}

// Lo no listado como restringido está permitido a cualquier autenticado.
func TestAllow_AccionNoRestringidaPermitida(t *testing.T) {
	assert.True(t, authz.Allow(employee, authz.Action("order.create")))
	assert.True(t, authz.Allow(employee, authz.Action("appointment.create")))
}

// Un rol desconocido recibe el mismo trato que employee.
func TestAllow_RolDesconocidoComoEmployee(t *testing.T) {
	guest := authz.Principal{UserID: "u3", Role: "guest"}
	assert.False(t, authz.Allow(guest, authz.ActionOrderDelete))
	assert.True(t, authz.Allow(guest, authz.Action("order.create")))
}
