package model

import "time"

// JobStatus describes the delivery job lifecycle.
type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusPickedUp  JobStatus = "picked_up"
	JobStatusDelivered JobStatus = "delivered"
	JobStatusCancelled JobStatus = "cancelled"
)

// ParseJobStatus converts a raw string into a JobStatus.
func ParseJobStatus(raw string) (JobStatus, bool) {
	switch JobStatus(raw) {
	case JobStatusOpen, JobStatusAccepted, JobStatusPickedUp,
		JobStatusDelivered, JobStatusCancelled:
		return JobStatus(raw), true
	}
	return "", false
}

// Valid reports whether the status is a known job status.
func (s JobStatus) Valid() bool {
	_, ok := ParseJobStatus(string(s))
	return ok
}

// Terminal reports whether the status is absorbing.
func (s JobStatus) Terminal() bool {
	return s == JobStatusDelivered || s == JobStatusCancelled
}

// Active reports whether the job still occupies its order's delivery slot.
func (s JobStatus) Active() bool {
	return !s.Terminal()
}

// DeliveryJob is a transportation task derived from an order. At most one
// active job exists per order; the transporter slot is filled at acceptance.
type DeliveryJob struct {
	ID                    int64
	OrderID               int64
	TransporterID         *int64
	Status                JobStatus
	PickupLocation        string
	DeliveryLocation      string
	EstimatedPickupDate   *time.Time
	EstimatedDeliveryDate *time.Time
	ActualPickupDate      *time.Time
	ActualDeliveryDate    *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AssignedTo reports whether the job is held by the given transporter.
func (j *DeliveryJob) AssignedTo(transporterID int64) bool {
	return j.TransporterID != nil && *j.TransporterID == transporterID
}

// JobStatistics aggregates a transporter's jobs by status.
type JobStatistics struct {
	Total    int
	ByStatus map[JobStatus]int
}
