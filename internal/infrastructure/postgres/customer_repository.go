package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/beautybook-api/internal/domain"
	"github.com/tu-usuario/beautybook-api/internal/domain/entity"
	"github.com/tu-usuario/beautybook-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, phone, email, line_id, gender, date_of_birth, notes, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente. La constraint única de phone respalda la
// validación de la capa de aplicación.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, phone, email, line_id, gender, date_of_birth, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.LineID,
		customer.Gender, customer.DateOfBirth, customer.Notes, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.get(`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByPhone obtiene un cliente por teléfono.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	return r.get(`SELECT `+customerColumns+` FROM customers WHERE phone = $1`, phone)
}

func (r *CustomerRepo) get(query, arg string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.LineID, &c.Gender,
		&c.DateOfBirth, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, phone = $3, email = $4, line_id = $5, gender = $6,
			date_of_birth = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.LineID,
		customer.Gender, customer.DateOfBirth, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// List busca clientes por nombre, teléfono o email, paginado, con total.
func (r *CustomerRepo) List(filter repository.CustomerFilter) ([]*entity.Customer, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d)", len(args), len(args), len(args))
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM customers"+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `SELECT ` + customerColumns + ` FROM customers` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	customers, err := r.queryCustomers(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

// ListByBirthMonth lista los clientes que cumplen años en el mes dado.
func (r *CustomerRepo) ListByBirthMonth(month int) ([]*entity.Customer, error) {
	return r.queryCustomers(
		`SELECT `+customerColumns+` FROM customers
		 WHERE date_of_birth IS NOT NULL AND EXTRACT(MONTH FROM date_of_birth) = $1
		 ORDER BY EXTRACT(DAY FROM date_of_birth) ASC`,
		month,
	)
}

// Delete borra un cliente; citas y recordatorios caen en cascada.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) queryCustomers(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email, &c.LineID, &c.Gender,
			&c.DateOfBirth, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}
