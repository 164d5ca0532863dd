package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"farmer", "buyer", "transporter"} {
		if _, ok := ParseRole(raw); !ok {
			t.Fatalf("expected %q to parse", raw)
		}
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatal("unexpected role parsed")
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		ok       bool
	}{
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusInTransit, false},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusInTransit, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusDelivered, false},
		{OrderStatusInTransit, OrderStatusDelivered, true},
		{OrderStatusInTransit, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", c.from, c.to, c.ok, got)
		}
	}
}

func TestTerminalStatusesAreAbsorbing(t *testing.T) {
	all := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled}
	for _, terminal := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
		if !terminal.Terminal() {
			t.Fatalf("%s should be terminal", terminal)
		}
		for _, target := range all {
			if terminal.CanTransitionTo(target) {
				t.Fatalf("terminal status %s must not transition to %s", terminal, target)
			}
		}
	}
}

func TestJobStatusLifecycle(t *testing.T) {
	if !JobStatusOpen.Active() || !JobStatusAccepted.Active() || !JobStatusPickedUp.Active() {
		t.Fatal("open/accepted/picked_up jobs should be active")
	}
	if JobStatusDelivered.Active() || JobStatusCancelled.Active() {
		t.Fatal("delivered/cancelled jobs should not be active")
	}
	if _, ok := ParseJobStatus("assigned"); ok {
		t.Fatal("legacy status should not parse")
	}
}

func newTestOrder(status OrderStatus, transporterID *int64) *Order {
	return &Order{
		ID:            1,
		CropID:        10,
		BuyerID:       2,
		FarmerID:      3,
		TransporterID: transporterID,
		Quantity:      decimal.NewFromInt(5),
		TotalPrice:    decimal.NewFromInt(25000),
		Status:        status,
	}
}

func TestAuthorizeOrderTransitionTable(t *testing.T) {
	transporterID := int64(4)

	cases := []struct {
		name    string
		actor   Actor
		from    OrderStatus
		target  OrderStatus
		withTID bool
		wantErr error
	}{
		{"farmer confirms", Actor{3, RoleFarmer}, OrderStatusPending, OrderStatusConfirmed, false, nil},
		{"other farmer confirms", Actor{99, RoleFarmer}, OrderStatusPending, OrderStatusConfirmed, false, domainErrors.ErrUnauthorized},
		{"buyer confirms", Actor{2, RoleBuyer}, OrderStatusPending, OrderStatusConfirmed, false, domainErrors.ErrUnauthorized},
		{"buyer cancels pending", Actor{2, RoleBuyer}, OrderStatusPending, OrderStatusCancelled, false, nil},
		{"buyer cancels confirmed", Actor{2, RoleBuyer}, OrderStatusConfirmed, OrderStatusCancelled, true, nil},
		{"farmer cancels", Actor{3, RoleFarmer}, OrderStatusPending, OrderStatusCancelled, false, domainErrors.ErrUnauthorized},
		{"transporter picks up", Actor{4, RoleTransporter}, OrderStatusConfirmed, OrderStatusInTransit, true, nil},
		{"unassigned transporter picks up", Actor{4, RoleTransporter}, OrderStatusConfirmed, OrderStatusInTransit, false, domainErrors.ErrUnauthorized},
		{"wrong transporter picks up", Actor{77, RoleTransporter}, OrderStatusConfirmed, OrderStatusInTransit, true, domainErrors.ErrUnauthorized},
		{"transporter delivers", Actor{4, RoleTransporter}, OrderStatusInTransit, OrderStatusDelivered, true, nil},
		{"transporter cancels", Actor{4, RoleTransporter}, OrderStatusConfirmed, OrderStatusCancelled, true, domainErrors.ErrUnauthorized},
		{"skip to delivered", Actor{3, RoleFarmer}, OrderStatusPending, OrderStatusDelivered, false, domainErrors.ErrInvalidTransition},
		{"cancel in transit", Actor{2, RoleBuyer}, OrderStatusInTransit, OrderStatusCancelled, true, domainErrors.ErrInvalidTransition},
		{"mutate delivered", Actor{3, RoleFarmer}, OrderStatusDelivered, OrderStatusConfirmed, false, domainErrors.ErrInvalidTransition},
		{"mutate cancelled", Actor{2, RoleBuyer}, OrderStatusCancelled, OrderStatusCancelled, false, domainErrors.ErrInvalidTransition},
		{"unknown status", Actor{3, RoleFarmer}, OrderStatusPending, OrderStatus("shipped"), false, domainErrors.ErrInvalidStatus},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var tid *int64
			if c.withTID {
				tid = &transporterID
			}
			order := newTestOrder(c.from, tid)
			err := AuthorizeOrderTransition(c.actor, order, c.target)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

// Every (role, from, target) pair outside the authorization table must be
// rejected, never silently accepted.
func TestAuthorizeOrderTransitionCompleteness(t *testing.T) {
	transporterID := int64(4)
	statuses := []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled}
	actors := []Actor{{3, RoleFarmer}, {2, RoleBuyer}, {4, RoleTransporter}}

	allowed := map[string]bool{
		"farmer:pending:confirmed":         true,
		"buyer:pending:cancelled":          true,
		"buyer:confirmed:cancelled":        true,
		"transporter:confirmed:in_transit": true,
		"transporter:in_transit:delivered": true,
	}

	for _, actor := range actors {
		for _, from := range statuses {
			for _, target := range statuses {
				order := newTestOrder(from, &transporterID)
				err := AuthorizeOrderTransition(actor, order, target)
				key := string(actor.Role) + ":" + string(from) + ":" + string(target)
				if allowed[key] {
					if err != nil {
						t.Fatalf("%s: expected success, got %v", key, err)
					}
					continue
				}
				if err == nil {
					t.Fatalf("%s: expected rejection", key)
				}
				if !errors.Is(err, domainErrors.ErrUnauthorized) && !errors.Is(err, domainErrors.ErrInvalidTransition) {
					t.Fatalf("%s: unexpected error %v", key, err)
				}
			}
		}
	}
}

func TestCropTotalPrice(t *testing.T) {
	crop := &Crop{Price: decimal.NewFromInt(5000)}
	total := crop.TotalPrice(decimal.NewFromInt(30))
	if !total.Equal(decimal.NewFromInt(150000)) {
		t.Fatalf("unexpected total %s", total)
	}
}

func TestOrderInvolvesActor(t *testing.T) {
	tid := int64(4)
	order := newTestOrder(OrderStatusConfirmed, &tid)
	for _, actor := range []Actor{{3, RoleFarmer}, {2, RoleBuyer}, {4, RoleTransporter}} {
		if !order.InvolvesActor(actor) {
			t.Fatalf("expected %v to be involved", actor)
		}
	}
	for _, actor := range []Actor{{2, RoleFarmer}, {3, RoleBuyer}, {9, RoleTransporter}} {
		if order.InvolvesActor(actor) {
			t.Fatalf("expected %v to be excluded", actor)
		}
	}
}
