package repository

import (
	"context"
	"database/sql"
	"fmt"

	"printworks/internal/domain"
	"printworks/internal/errors"
	"printworks/internal/spk"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (publicId, spk, customerId, productType, quantity, unit,
		                    fabricId, paperGsm, paperWidth, unitPrice, discountType, discountValue,
		                    taxEnabled, taxPercent, totalPrice, notes, priority, orderDate, targetDate, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.PublicID, order.SpkNumber, order.CustomerID, order.ProductType, order.Quantity, string(order.Unit),
		order.FabricID, order.PaperGSM, order.PaperWidth, order.UnitPrice, string(order.DiscountType), order.DiscountValue,
		order.TaxEnabled, order.TaxPercent, order.TotalPrice, order.Notes, order.Priority,
		order.OrderDate, order.TargetDate, order.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindBySpk(ctx context.Context, spkNumber string) (*domain.Order, error) {
	query := `
		SELECT id, publicId, spk, customerId, productType, quantity, unit,
		       fabricId, paperGsm, paperWidth, unitPrice, discountType, discountValue,
		       taxEnabled, taxPercent, totalPrice, COALESCE(notes, ''), priority,
		       orderDate, targetDate, status, createdAt, updatedAt
		FROM Orders
		WHERE spk = ?
	`

	var (
		order        domain.Order
		unit         string
		discountType string
	)
	err := r.db.QueryRowContext(ctx, query, spkNumber).Scan(
		&order.ID, &order.PublicID, &order.SpkNumber, &order.CustomerID, &order.ProductType, &order.Quantity, &unit,
		&order.FabricID, &order.PaperGSM, &order.PaperWidth, &order.UnitPrice, &discountType, &order.DiscountValue,
		&order.TaxEnabled, &order.TaxPercent, &order.TotalPrice, &order.Notes, &order.Priority,
		&order.OrderDate, &order.TargetDate, &order.Status, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with spk %s not found", spkNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by spk: %w", err)
	}

	order.Unit = domain.Unit(unit)
	order.DiscountType = domain.DiscountType(discountType)
	return &order, nil
}

// ExistsBySpk runs inside tx so a concurrent insert of the same number is
// seen by the unique index at the latest.
func (r *MySQLOrderRepository) ExistsBySpk(ctx context.Context, tx *sql.Tx, spkNumber string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM Orders WHERE spk = ?`, spkNumber).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking spk existence: %w", err)
	}
	return n > 0, nil
}

func (r *MySQLOrderRepository) ListSpks(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT spk FROM Orders ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying spks: %w", err)
	}
	defer rows.Close()

	spks := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning spk row: %w", err)
		}
		spks = append(spks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spk rows: %w", err)
	}

	return spks, nil
}

// MaxSequence scans stored numbers with prefix and returns the highest
// sequence, or 0 when there is none.
func (r *MySQLOrderRepository) MaxSequence(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
	rows, err := tx.QueryContext(ctx, `SELECT spk FROM Orders WHERE spk LIKE ?`, prefix+"%")
	if err != nil {
		return 0, fmt.Errorf("querying spks by prefix: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return 0, fmt.Errorf("scanning spk row: %w", err)
		}
		existing = append(existing, s)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating spk rows: %w", err)
	}

	highest, _ := spk.MaxSequence(existing, prefix)
	return highest, nil
}

func (r *MySQLOrderRepository) ListRepeatOrders(ctx context.Context, customerID int, limit int) ([]domain.RepeatOrder, error) {
	query := `
		SELECT spk, orderDate, productType, COALESCE(notes, '')
		FROM Orders
		WHERE customerId = ?
		ORDER BY orderDate DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying repeat orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.RepeatOrder{}
	for rows.Next() {
		var (
			o           domain.RepeatOrder
			productType string
			notes       string
		)
		if err := rows.Scan(&o.SpkNumber, &o.OrderDate, &productType, &notes); err != nil {
			return nil, fmt.Errorf("scanning repeat order row: %w", err)
		}
		o.Details = repeatDetails(productType, notes)
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating repeat order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) FindRepeatOrder(ctx context.Context, spkNumber string) (*domain.RepeatOrder, error) {
	query := `
		SELECT spk, orderDate, productType, COALESCE(notes, '')
		FROM Orders
		WHERE spk = ?
	`

	var (
		o           domain.RepeatOrder
		productType string
		notes       string
	)
	err := r.db.QueryRowContext(ctx, query, spkNumber).Scan(&o.SpkNumber, &o.OrderDate, &productType, &notes)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with spk %s not found", spkNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying repeat order: %w", err)
	}

	o.Details = repeatDetails(productType, notes)
	return &o, nil
}
