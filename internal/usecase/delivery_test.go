package usecase_test

import (
	"context"
	"errors"
	. "github.com/agronhq/agron/internal/usecase"
	"testing"
	"time"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	testhelpers "github.com/agronhq/agron/internal/test"
)

func TestDeliveryUseCaseRoleGate(t *testing.T) {
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{}, time.Hour, 2*time.Hour)
	buyer := model.Actor{ID: 1, Role: model.RoleBuyer}

	calls := []func() error{
		func() error { _, err := uc.Board(context.Background(), buyer); return err },
		func() error { _, err := uc.Mine(context.Background(), buyer); return err },
		func() error { _, err := uc.Get(context.Background(), buyer, 1); return err },
		func() error { _, err := uc.Accept(context.Background(), buyer, 1); return err },
		func() error { _, err := uc.MarkPickedUp(context.Background(), buyer, 1); return err },
		func() error { _, err := uc.MarkDelivered(context.Background(), buyer, 1); return err },
		func() error { _, err := uc.Abandon(context.Background(), buyer, 1); return err },
		func() error { _, err := uc.Statistics(context.Background(), buyer); return err },
	}
	for i, call := range calls {
		if err := call(); !errors.Is(err, domainErrors.ErrUnauthorized) {
			t.Fatalf("call %d: expected unauthorized, got %v", i, err)
		}
	}
}

func TestDeliveryUseCaseAcceptEstimates(t *testing.T) {
	pickupLead := 24 * time.Hour
	deliveryLead := 72 * time.Hour
	var gotPickup, gotDelivery time.Time
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{
		AcceptFn: func(_ context.Context, jobID, transporterID int64, estPickup, estDelivery time.Time) (*model.DeliveryJob, error) {
			if jobID != 7 || transporterID != 42 {
				t.Fatalf("unexpected arguments: %d %d", jobID, transporterID)
			}
			gotPickup, gotDelivery = estPickup, estDelivery
			return &model.DeliveryJob{ID: jobID, Status: model.JobStatusAccepted}, nil
		},
	}, pickupLead, deliveryLead)

	before := time.Now()
	job, err := uc.Accept(context.Background(), model.Actor{ID: 42, Role: model.RoleTransporter}, 7)
	after := time.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Status != model.JobStatusAccepted {
		t.Fatalf("unexpected status: %s", job.Status)
	}
	if gotPickup.Before(before.Add(pickupLead)) || gotPickup.After(after.Add(pickupLead)) {
		t.Fatalf("pickup estimate outside lead window: %v", gotPickup)
	}
	if gotDelivery.Sub(gotPickup) != deliveryLead-pickupLead {
		t.Fatalf("delivery estimate not derived from same instant")
	}
}

func TestDeliveryUseCaseAcceptPropagatesLoss(t *testing.T) {
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{
		AcceptFn: func(context.Context, int64, int64, time.Time, time.Time) (*model.DeliveryJob, error) {
			return nil, domainErrors.ErrJobNotOpen
		},
	}, time.Hour, 2*time.Hour)

	if _, err := uc.Accept(context.Background(), model.Actor{ID: 1, Role: model.RoleTransporter}, 1); !errors.Is(err, domainErrors.ErrJobNotOpen) {
		t.Fatalf("expected job not open, got %v", err)
	}
}

func TestDeliveryUseCaseProgression(t *testing.T) {
	transporter := model.Actor{ID: 5, Role: model.RoleTransporter}
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{
		MarkPickedUpFn: func(_ context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
			if transporterID != 5 {
				t.Fatalf("unexpected transporter: %d", transporterID)
			}
			return &model.DeliveryJob{ID: jobID, Status: model.JobStatusPickedUp}, nil
		},
		MarkDeliveredFn: func(_ context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
			return &model.DeliveryJob{ID: jobID, Status: model.JobStatusDelivered}, nil
		},
		AbandonFn: func(_ context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
			return &model.DeliveryJob{ID: jobID, Status: model.JobStatusOpen}, nil
		},
	}, time.Hour, 2*time.Hour)

	job, err := uc.MarkPickedUp(context.Background(), transporter, 1)
	if err != nil || job.Status != model.JobStatusPickedUp {
		t.Fatalf("unexpected result: %v %v", job, err)
	}
	job, err = uc.MarkDelivered(context.Background(), transporter, 1)
	if err != nil || job.Status != model.JobStatusDelivered {
		t.Fatalf("unexpected result: %v %v", job, err)
	}
	job, err = uc.Abandon(context.Background(), transporter, 1)
	if err != nil || job.Status != model.JobStatusOpen {
		t.Fatalf("unexpected result: %v %v", job, err)
	}
}

func TestDeliveryUseCaseStatistics(t *testing.T) {
	transporter := model.Actor{ID: 9, Role: model.RoleTransporter}
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{
		StatisticsFn: func(_ context.Context, transporterID int64) (*model.JobStatistics, error) {
			if transporterID != 9 {
				t.Fatalf("unexpected transporter: %d", transporterID)
			}
			return &model.JobStatistics{Total: 3, ByStatus: map[model.JobStatus]int{model.JobStatusDelivered: 3}}, nil
		},
	}, time.Hour, 2*time.Hour)

	stats, err := uc.Statistics(context.Background(), transporter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.ByStatus[model.JobStatusDelivered] != 3 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}

func TestDeliveryUseCaseListing(t *testing.T) {
	transporter := model.Actor{ID: 9, Role: model.RoleTransporter}
	uc := NewDeliveryUseCase(&testhelpers.DeliveryJobRepositoryStub{
		ListOpenFn: func(context.Context) ([]model.DeliveryJob, error) {
			return []model.DeliveryJob{{ID: 1, Status: model.JobStatusOpen}}, nil
		},
		ListByTransporterFn: func(_ context.Context, transporterID int64) ([]model.DeliveryJob, error) {
			if transporterID != 9 {
				t.Fatalf("unexpected transporter: %d", transporterID)
			}
			return []model.DeliveryJob{{ID: 2, Status: model.JobStatusAccepted}}, nil
		},
	}, time.Hour, 2*time.Hour)

	open, err := uc.Board(context.Background(), transporter)
	if err != nil || len(open) != 1 {
		t.Fatalf("unexpected board: %v %v", open, err)
	}
	mine, err := uc.Mine(context.Background(), transporter)
	if err != nil || len(mine) != 1 {
		t.Fatalf("unexpected mine: %v %v", mine, err)
	}
}
