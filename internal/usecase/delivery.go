package usecase

import (
	"context"
	"time"

	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
)

// DeliveryUseCase manages the transporter-facing job board. Estimated pickup
// and delivery timestamps are derived from configured lead times at
// acceptance.
type DeliveryUseCase struct {
	jobs         repository.DeliveryJobRepository
	pickupLead   time.Duration
	deliveryLead time.Duration
}

// NewDeliveryUseCase constructs DeliveryUseCase.
func NewDeliveryUseCase(jobs repository.DeliveryJobRepository, pickupLead, deliveryLead time.Duration) *DeliveryUseCase {
	return &DeliveryUseCase{jobs: jobs, pickupLead: pickupLead, deliveryLead: deliveryLead}
}

// Board lists open jobs available to any transporter.
func (u *DeliveryUseCase) Board(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.ListOpen(ctx)
}

// Mine lists jobs held by the acting transporter.
func (u *DeliveryUseCase) Mine(ctx context.Context, actor model.Actor) ([]model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.ListByTransporter(ctx, actor.ID)
}

// Get fetches a single job.
func (u *DeliveryUseCase) Get(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.GetByID(ctx, jobID)
}

// Accept claims an open job for the acting transporter. Exactly one of any
// set of concurrent callers wins the slot.
func (u *DeliveryUseCase) Accept(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	now := time.Now()
	return u.jobs.Accept(ctx, jobID, actor.ID, now.Add(u.pickupLead), now.Add(u.deliveryLead))
}

// MarkPickedUp records pickup and moves the order in transit.
func (u *DeliveryUseCase) MarkPickedUp(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.MarkPickedUp(ctx, jobID, actor.ID)
}

// MarkDelivered records delivery and completes the order.
func (u *DeliveryUseCase) MarkDelivered(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.MarkDelivered(ctx, jobID, actor.ID)
}

// Statistics aggregates the acting transporter's jobs by status.
func (u *DeliveryUseCase) Statistics(ctx context.Context, actor model.Actor) (*model.JobStatistics, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.StatisticsByTransporter(ctx, actor.ID)
}

// Abandon returns an accepted job to the open board.
func (u *DeliveryUseCase) Abandon(ctx context.Context, actor model.Actor, jobID int64) (*model.DeliveryJob, error) {
	if err := requireRole(actor, model.RoleTransporter); err != nil {
		return nil, err
	}
	return u.jobs.Abandon(ctx, jobID, actor.ID)
}
