package inventory

import (
	"database/sql"

	"go.uber.org/zap"

	"printworks/internal/inventory/repository"
)

type Module struct {
	Controller *Controller
	// Fabrics is shared with the order module for fabric lookups.
	Fabrics *repository.MySQLRepository
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	uc := NewUseCase(svc, logger)
	return &Module{
		Controller: NewController(uc, logger),
		Fabrics:    repo,
	}
}
