package pgsql

import (
	portsrepo "github.com/SscSPs/visa_portal_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every Postgres-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo:     newPgxProfileRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		PaymentPlanRepo: newPgxPaymentPlanRepository(dbPool),
		DocumentRepo:    newPgxDocumentRepository(dbPool),
		LoginRepo:       newPgxLoginHistoryRepository(dbPool),
	}
}
