package repository

import (
	"context"
	"database/sql"
	"fmt"

	"printworks/internal/domain"
	"printworks/internal/errors"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	query := `
		SELECT id, name, isActive, createdAt
		FROM Customers
		WHERE id = ?
	`

	var customer domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID, &customer.Name, &customer.IsActive, &customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}

	return &customer, nil
}
