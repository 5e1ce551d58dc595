package repository

import (
	"context"
	"database/sql"
	"fmt"

	"printworks/internal/domain"
)

type MySQLCostItemRepository struct {
	db *sql.DB
}

func NewMySQLCostItemRepository(db *sql.DB) *MySQLCostItemRepository {
	return &MySQLCostItemRepository{db: db}
}

// InsertAll stores the non-empty slots, keeping their slot index.
func (r *MySQLCostItemRepository) InsertAll(ctx context.Context, tx *sql.Tx, orderID uint, items domain.CostItems) error {
	query := `INSERT INTO OrderCostItems (orderId, slot, description, price, quantity, total) VALUES (?, ?, ?, ?, ?, ?)`

	for slot, item := range items {
		if item.IsEmpty() {
			continue
		}
		_, err := tx.ExecContext(ctx, query, orderID, slot, item.Description, item.Price, item.Quantity, item.Total)
		if err != nil {
			return fmt.Errorf("inserting cost item %d: %w", slot, err)
		}
	}

	return nil
}

func (r *MySQLCostItemRepository) FindByOrderID(ctx context.Context, orderID uint) (domain.CostItems, error) {
	var items domain.CostItems

	rows, err := r.db.QueryContext(ctx,
		`SELECT slot, description, price, quantity, total FROM OrderCostItems WHERE orderId = ? ORDER BY slot`,
		orderID,
	)
	if err != nil {
		return items, fmt.Errorf("querying cost items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			slot int
			item domain.CostItem
		)
		if err := rows.Scan(&slot, &item.Description, &item.Price, &item.Quantity, &item.Total); err != nil {
			return items, fmt.Errorf("scanning cost item row: %w", err)
		}
		if slot < 0 || slot >= domain.MaxCostItems {
			continue
		}
		items[slot] = item
	}

	if err := rows.Err(); err != nil {
		return items, fmt.Errorf("iterating cost item rows: %w", err)
	}

	return items, nil
}
