package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Crops() CropRepository
	Orders() OrderRepository
	DeliveryJobs() DeliveryJobRepository
}
