package repository

import (
	"context"
	"time"

	"github.com/agronhq/agron/internal/domain/model"
)

// DeliveryJobRepository describes persistence operations for delivery jobs.
// Accept is a compare-and-set on the open slot: with concurrent callers
// exactly one wins, the rest get ErrJobNotOpen. All progression methods
// propagate to the owning order inside the same transaction.
type DeliveryJobRepository interface {
	GetByID(ctx context.Context, id int64) (*model.DeliveryJob, error)
	ListOpen(ctx context.Context) ([]model.DeliveryJob, error)
	ListByTransporter(ctx context.Context, transporterID int64) ([]model.DeliveryJob, error)
	Accept(ctx context.Context, jobID, transporterID int64, estimatedPickup, estimatedDelivery time.Time) (*model.DeliveryJob, error)
	MarkPickedUp(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error)
	MarkDelivered(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error)
	Abandon(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error)
	StatisticsByTransporter(ctx context.Context, transporterID int64) (*model.JobStatistics, error)
}
