package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/signup/internal/database"
	"github.com/jask/signup/internal/database/repository"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB       *sql.DB
	Accounts *repository.AccountRepo
}

// Reset deletes every account. It keeps the schema intact.
func (s *MaintenanceService) Reset(ctx context.Context) (int64, error) {
	if s.DB == nil || s.Accounts == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		n, err := s.Accounts.DeleteAll(ctx, tx)
		if err != nil {
			return fmt.Errorf("reset accounts: %w", err)
		}
		removed = n
		return nil
	}); err != nil {
		return 0, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return removed, nil
}
