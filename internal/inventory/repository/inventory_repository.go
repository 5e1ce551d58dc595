package repository

import (
	"context"
	"database/sql"
	"fmt"

	"printworks/internal/domain"
	"printworks/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindFabricsByCustomer(ctx context.Context, customerID int) ([]domain.FabricInfo, error) {
	query := `
		SELECT id, customerId, name, composition, width, availableLength
		FROM Fabrics
		WHERE customerId = ?
		  AND isDeleted = 0
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("querying fabrics: %w", err)
	}
	defer rows.Close()

	var fabrics []domain.FabricInfo
	for rows.Next() {
		var f domain.FabricInfo
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.Name, &f.Composition, &f.Width, &f.AvailableLength); err != nil {
			return nil, fmt.Errorf("scanning fabric row: %w", err)
		}
		fabrics = append(fabrics, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fabric rows: %w", err)
	}

	return fabrics, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (*domain.FabricInfo, error) {
	query := `
		SELECT id, customerId, name, composition, width, availableLength
		FROM Fabrics
		WHERE id = ?
		  AND isDeleted = 0
	`

	var f domain.FabricInfo
	err := r.db.QueryRowContext(ctx, query, id).Scan(&f.ID, &f.CustomerID, &f.Name, &f.Composition, &f.Width, &f.AvailableLength)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("fabric with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying fabric by id: %w", err)
	}

	return &f, nil
}

func (r *MySQLRepository) ListPaperGSM(ctx context.Context) ([]int, error) {
	return r.queryInts(ctx, `SELECT DISTINCT gsm FROM PaperStock ORDER BY gsm`)
}

func (r *MySQLRepository) ListPaperWidths(ctx context.Context, gsm int) ([]int, error) {
	return r.queryInts(ctx, `SELECT DISTINCT width FROM PaperStock WHERE gsm = ? ORDER BY width`, gsm)
}

func (r *MySQLRepository) queryInts(ctx context.Context, query string, args ...interface{}) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying paper stock: %w", err)
	}
	defer rows.Close()

	var values []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning paper stock row: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating paper stock rows: %w", err)
	}

	return values, nil
}
