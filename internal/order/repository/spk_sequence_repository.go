package repository

import (
	"context"
	"database/sql"
	"fmt"

	"printworks/internal/errors"
)

type MySQLSpkSequenceRepository struct {
	db *sql.DB
}

func NewMySQLSpkSequenceRepository(db *sql.DB) *MySQLSpkSequenceRepository {
	return &MySQLSpkSequenceRepository{db: db}
}

// FindForUpdate locks the counter row of prefix for the rest of tx.
func (r *MySQLSpkSequenceRepository) FindForUpdate(ctx context.Context, tx *sql.Tx, prefix string) (int, error) {
	var last int
	err := tx.QueryRowContext(ctx,
		`SELECT lastSequence FROM SpkSequences WHERE prefix = ? FOR UPDATE`,
		prefix,
	).Scan(&last)

	if err == sql.ErrNoRows {
		return 0, errors.NewNotFoundError(fmt.Sprintf("spk sequence for prefix %s not found", prefix))
	}
	if err != nil {
		return 0, fmt.Errorf("locking spk sequence: %w", err)
	}

	return last, nil
}

func (r *MySQLSpkSequenceRepository) Insert(ctx context.Context, tx *sql.Tx, prefix string, last int) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO SpkSequences (prefix, lastSequence) VALUES (?, ?)`, prefix, last)
	if err != nil {
		return fmt.Errorf("inserting spk sequence: %w", err)
	}
	return nil
}

func (r *MySQLSpkSequenceRepository) Update(ctx context.Context, tx *sql.Tx, prefix string, last int) error {
	result, err := tx.ExecContext(ctx, `UPDATE SpkSequences SET lastSequence = ? WHERE prefix = ?`, last, prefix)
	if err != nil {
		return fmt.Errorf("updating spk sequence: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("spk sequence for prefix %s not found", prefix))
	}

	return nil
}
