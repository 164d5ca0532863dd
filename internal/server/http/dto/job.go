package dto

import (
	"time"

	"github.com/agronhq/agron/internal/domain/model"
)

// AcceptJobRequest identifies the job a transporter wants to claim.
type AcceptJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// JobResponse is the wire representation of a delivery job.
type JobResponse struct {
	ID                    int64      `json:"id"`
	OrderID               int64      `json:"order_id"`
	TransporterID         *int64     `json:"transporter_id,omitempty"`
	Status                string     `json:"status"`
	PickupLocation        string     `json:"pickup_location"`
	DeliveryLocation      string     `json:"delivery_location"`
	EstimatedPickupDate   *time.Time `json:"estimated_pickup_date,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	ActualPickupDate      *time.Time `json:"actual_pickup_date,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// JobStatisticsResponse aggregates a transporter's job history.
type JobStatisticsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// ToJobStatisticsResponse maps statistics onto the wire representation.
func ToJobStatisticsResponse(stats model.JobStatistics) JobStatisticsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}
	return JobStatisticsResponse{
		Total:    stats.Total,
		ByStatus: byStatus,
	}
}

// ToJobResponse maps a delivery job onto its wire representation.
func ToJobResponse(job model.DeliveryJob) JobResponse {
	return JobResponse{
		ID:                    job.ID,
		OrderID:               job.OrderID,
		TransporterID:         job.TransporterID,
		Status:                string(job.Status),
		PickupLocation:        job.PickupLocation,
		DeliveryLocation:      job.DeliveryLocation,
		EstimatedPickupDate:   job.EstimatedPickupDate,
		EstimatedDeliveryDate: job.EstimatedDeliveryDate,
		ActualPickupDate:      job.ActualPickupDate,
		ActualDeliveryDate:    job.ActualDeliveryDate,
		CreatedAt:             job.CreatedAt,
		UpdatedAt:             job.UpdatedAt,
	}
}
