package repository

import (
	"context"
	"time"

	"github.com/jhoicas/privilege-pass-api/internal/domain/entity"
)

// TransactionPatch campos actualizables de una transacción.
type TransactionPatch struct {
	Status        *entity.TransactionStatus
	Archived      *bool
	ScheduledDate *time.Time
}

// TransactionRepository define el puerto de persistencia para Transaction.
type TransactionRepository interface {
	List(ctx context.Context) ([]*entity.Transaction, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, id string, patch TransactionPatch) error
}
