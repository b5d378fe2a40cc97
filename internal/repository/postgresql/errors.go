package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

func collectRowsError(err error) error {
	return fmt.Errorf("failed to collect rows: %w", err)
}

func pageTxError(err error) error {
	return fmt.Errorf("failed to read page: %w", err)
}

// collectRowError reports a missing row as domain.ErrInspectionDataNotFound.
func collectRowError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrInspectionDataNotFound
	}

	return fmt.Errorf("failed to collect row: %w", err)
}
