package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type cropRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type jobRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Crops() repository.CropRepository {
	return &cropRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) DeliveryJobs() repository.DeliveryJobRepository {
	return &jobRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS crops (
            id BIGSERIAL PRIMARY KEY,
            farmer_id BIGINT NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            type TEXT NOT NULL,
            quantity NUMERIC(12,2) NOT NULL,
            unit TEXT NOT NULL,
            price NUMERIC(12,2) NOT NULL,
            currency TEXT NOT NULL DEFAULT 'NGN',
            location TEXT NOT NULL,
            availability_date DATE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'available',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            crop_id BIGINT NOT NULL REFERENCES crops(id),
            buyer_id BIGINT NOT NULL REFERENCES users(id),
            farmer_id BIGINT NOT NULL REFERENCES users(id),
            transporter_id BIGINT REFERENCES users(id),
            quantity NUMERIC(12,2) NOT NULL,
            unit TEXT NOT NULL,
            total_price NUMERIC(14,2) NOT NULL,
            currency TEXT NOT NULL DEFAULT 'NGN',
            status TEXT NOT NULL DEFAULT 'pending',
            pickup_location TEXT NOT NULL,
            delivery_location TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS delivery_jobs (
            id BIGSERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            transporter_id BIGINT REFERENCES users(id),
            status TEXT NOT NULL DEFAULT 'open',
            pickup_location TEXT NOT NULL,
            delivery_location TEXT NOT NULL,
            estimated_pickup_date TIMESTAMPTZ,
            estimated_delivery_date TIMESTAMPTZ,
            actual_pickup_date TIMESTAMPTZ,
            actual_delivery_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_crops_farmer ON crops(farmer_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_crops_status_type ON crops(status, type)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_buyer ON orders(buyer_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_farmer ON orders(farmer_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_crop ON orders(crop_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_status ON delivery_jobs(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_transporter ON delivery_jobs(transporter_id, status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

const cropColumns = `id, farmer_id, name, type, quantity, unit, price, currency, location, availability_date, description, status, created_at, updated_at`

func scanCrop(row rowScanner) (*model.Crop, error) {
	var c model.Crop
	err := row.Scan(&c.ID, &c.FarmerID, &c.Name, &c.Type, &c.Quantity, &c.Unit, &c.Price, &c.Currency,
		&c.Location, &c.AvailabilityDate, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const orderColumns = `id, crop_id, buyer_id, farmer_id, transporter_id, quantity, unit, total_price, currency, status, pickup_location, delivery_location, created_at, updated_at`

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CropID, &o.BuyerID, &o.FarmerID, &o.TransporterID, &o.Quantity, &o.Unit,
		&o.TotalPrice, &o.Currency, &o.Status, &o.PickupLocation, &o.DeliveryLocation, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

const jobColumns = `id, order_id, transporter_id, status, pickup_location, delivery_location, estimated_pickup_date, estimated_delivery_date, actual_pickup_date, actual_delivery_date, created_at, updated_at`

func scanJob(row rowScanner) (*model.DeliveryJob, error) {
	var j model.DeliveryJob
	err := row.Scan(&j.ID, &j.OrderID, &j.TransporterID, &j.Status, &j.PickupLocation, &j.DeliveryLocation,
		&j.EstimatedPickupDate, &j.EstimatedDeliveryDate, &j.ActualPickupDate, &j.ActualDeliveryDate,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CropRepository implementation ---

func (r *cropRepository) Create(ctx context.Context, crop *model.Crop) (*model.Crop, error) {
	const query = `INSERT INTO crops (farmer_id, name, type, quantity, unit, price, currency, location, availability_date, description, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING id, created_at, updated_at`
	created := *crop
	err := r.storage.pool.QueryRow(ctx, query,
		crop.FarmerID, crop.Name, crop.Type, crop.Quantity, crop.Unit, crop.Price, crop.Currency,
		crop.Location, crop.AvailabilityDate, crop.Description, model.CropStatusAvailable,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	created.Status = model.CropStatusAvailable
	return &created, nil
}

func (r *cropRepository) GetByID(ctx context.Context, id int64) (*model.Crop, error) {
	crop, err := scanCrop(r.storage.pool.QueryRow(ctx, `SELECT `+cropColumns+` FROM crops WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return crop, nil
}

func (r *cropRepository) List(ctx context.Context, filter repository.CropFilter) ([]model.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops`
	var (
		clauses []string
		args    []any
	)
	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("type=$%d", len(args)))
	}
	if filter.Region != "" {
		args = append(args, "%"+filter.Region+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.FarmerID != 0 {
		args = append(args, filter.FarmerID)
		clauses = append(clauses, fmt.Sprintf("farmer_id=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Crop
	for rows.Next() {
		crop, err := scanCrop(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *crop)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cropRepository) Update(ctx context.Context, farmerID int64, crop *model.Crop) (*model.Crop, error) {
	var updated *model.Crop
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockCropOwner(ctx, tx, crop.ID, farmerID); err != nil {
			return err
		}

		const update = `UPDATE crops
                        SET name=$1, type=$2, quantity=$3, unit=$4, price=$5, currency=$6,
                            location=$7, availability_date=$8, description=$9, updated_at=NOW()
                        WHERE id=$10
                        RETURNING ` + cropColumns
		row := tx.QueryRow(ctx, update,
			crop.Name, crop.Type, crop.Quantity, crop.Unit, crop.Price, crop.Currency,
			crop.Location, crop.AvailabilityDate, crop.Description, crop.ID)
		c, err := scanCrop(row)
		if err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *cropRepository) UpdateStatus(ctx context.Context, cropID, farmerID int64, status model.CropStatus) (*model.Crop, error) {
	var updated *model.Crop
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockCropOwner(ctx, tx, cropID, farmerID); err != nil {
			return err
		}

		row := tx.QueryRow(ctx, `UPDATE crops SET status=$1, updated_at=NOW() WHERE id=$2 RETURNING `+cropColumns, status, cropID)
		c, err := scanCrop(row)
		if err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *cropRepository) Delete(ctx context.Context, cropID, farmerID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := lockCropOwner(ctx, tx, cropID, farmerID); err != nil {
			return err
		}

		const activeQuery = `SELECT COUNT(*) FROM orders WHERE crop_id=$1 AND status IN ('pending', 'confirmed', 'in_transit')`
		var active int
		if err := tx.QueryRow(ctx, activeQuery, cropID).Scan(&active); err != nil {
			return err
		}
		if active > 0 {
			return domainErrors.ErrActiveOrders
		}

		_, err := tx.Exec(ctx, `DELETE FROM crops WHERE id=$1`, cropID)
		return err
	})
}

func (r *cropRepository) Types(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT type FROM crops ORDER BY type`)
}

func (r *cropRepository) Regions(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT location FROM crops ORDER BY location`)
}

func (r *cropRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// lockCropOwner locks the crop row and verifies ownership.
func lockCropOwner(ctx context.Context, tx pgx.Tx, cropID, farmerID int64) error {
	var owner int64
	err := tx.QueryRow(ctx, `SELECT farmer_id FROM crops WHERE id=$1 FOR UPDATE`, cropID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	if owner != farmerID {
		return domainErrors.ErrUnauthorized
	}
	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Place(ctx context.Context, params repository.PlaceOrderParams) (*model.Order, error) {
	if !params.Quantity.IsPositive() {
		return nil, domainErrors.ErrInvalidQuantity
	}

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const cropQuery = `SELECT farmer_id, quantity, unit, price, currency, status FROM crops WHERE id=$1 FOR UPDATE`
		var (
			farmerID         int64
			available, price decimal.Decimal
			unit, currency   string
			status           model.CropStatus
		)
		err := tx.QueryRow(ctx, cropQuery, params.CropID).Scan(&farmerID, &available, &unit, &price, &currency, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if status != model.CropStatusAvailable {
			return domainErrors.ErrCropUnavailable
		}
		if params.Quantity.GreaterThan(available) {
			return domainErrors.ErrInsufficientQuantity
		}

		remaining := available.Sub(params.Quantity)
		newStatus := status
		if !remaining.IsPositive() {
			newStatus = model.CropStatusSold
		}
		if _, err := tx.Exec(ctx, `UPDATE crops SET quantity=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			remaining, newStatus, params.CropID); err != nil {
			return err
		}

		totalPrice := price.Mul(params.Quantity)
		const insertOrder = `INSERT INTO orders (crop_id, buyer_id, farmer_id, quantity, unit, total_price, currency, status, pickup_location, delivery_location)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                             RETURNING id, created_at, updated_at`
		o := model.Order{
			CropID:           params.CropID,
			BuyerID:          params.BuyerID,
			FarmerID:         farmerID,
			Quantity:         params.Quantity,
			Unit:             unit,
			TotalPrice:       totalPrice,
			Currency:         currency,
			Status:           model.OrderStatusPending,
			PickupLocation:   params.PickupLocation,
			DeliveryLocation: params.DeliveryLocation,
		}
		err = tx.QueryRow(ctx, insertOrder,
			o.CropID, o.BuyerID, o.FarmerID, o.Quantity, o.Unit, o.TotalPrice, o.Currency,
			o.Status, o.PickupLocation, o.DeliveryLocation,
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return err
		}

		if params.DeliveryLocation != nil {
			const insertJob = `INSERT INTO delivery_jobs (order_id, status, pickup_location, delivery_location) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, insertJob, o.ID, model.JobStatusOpen, o.PickupLocation, *params.DeliveryLocation); err != nil {
				return err
			}
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID, buyerID int64) (*model.Order, error) {
	return r.transition(ctx, orderID, model.Actor{ID: buyerID, Role: model.RoleBuyer}, model.OrderStatusCancelled)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, actor model.Actor, target model.OrderStatus) (*model.Order, error) {
	return r.transition(ctx, orderID, actor, target)
}

func (r *orderRepository) transition(ctx context.Context, orderID int64, actor model.Actor, target model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		order, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, orderID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if err := model.AuthorizeOrderTransition(actor, order, target); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, target, orderID); err != nil {
			return err
		}
		order.Status = target

		switch target {
		case model.OrderStatusCancelled:
			if err := restoreCropQuantity(ctx, tx, order.CropID, order.Quantity); err != nil {
				return err
			}
			const cancelJob = `UPDATE delivery_jobs SET status=$1, updated_at=NOW() WHERE order_id=$2 AND status IN ('open', 'accepted')`
			if _, err := tx.Exec(ctx, cancelJob, model.JobStatusCancelled, orderID); err != nil {
				return err
			}
		case model.OrderStatusInTransit:
			const pickUpJob = `UPDATE delivery_jobs SET status=$1, actual_pickup_date=NOW(), updated_at=NOW() WHERE order_id=$2 AND status='accepted'`
			if _, err := tx.Exec(ctx, pickUpJob, model.JobStatusPickedUp, orderID); err != nil {
				return err
			}
		case model.OrderStatusDelivered:
			const deliverJob = `UPDATE delivery_jobs SET status=$1, actual_delivery_date=NOW(), updated_at=NOW() WHERE order_id=$2 AND status IN ('accepted', 'picked_up')`
			if _, err := tx.Exec(ctx, deliverJob, model.JobStatusDelivered, orderID); err != nil {
				return err
			}
		}

		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// restoreCropQuantity returns a cancelled order's quantity to its crop and
// reverts a sold listing back to available once stock exists again.
func restoreCropQuantity(ctx context.Context, tx pgx.Tx, cropID int64, quantity decimal.Decimal) error {
	var (
		current decimal.Decimal
		status  model.CropStatus
	)
	err := tx.QueryRow(ctx, `SELECT quantity, status FROM crops WHERE id=$1 FOR UPDATE`, cropID).Scan(&current, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainErrors.ErrNotFound
		}
		return err
	}

	restored := current.Add(quantity)
	newStatus := status
	if status == model.CropStatusSold && restored.IsPositive() {
		newStatus = model.CropStatusAvailable
	}
	_, err = tx.Exec(ctx, `UPDATE crops SET quantity=$1, status=$2, updated_at=NOW() WHERE id=$3`, restored, newStatus, cropID)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func actorColumn(role model.Role) (string, error) {
	switch role {
	case model.RoleFarmer:
		return "farmer_id", nil
	case model.RoleBuyer:
		return "buyer_id", nil
	case model.RoleTransporter:
		return "transporter_id", nil
	}
	return "", domainErrors.ErrInvalidRole
}

func (r *orderRepository) ListByActor(ctx context.Context, actor model.Actor, status model.OrderStatus) ([]model.Order, error) {
	column, err := actorColumn(actor.Role)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + column + `=$1`
	args := []any{actor.ID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status=$%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) StatisticsByActor(ctx context.Context, actor model.Actor) (*model.OrderStatistics, error) {
	column, err := actorColumn(actor.Role)
	if err != nil {
		return nil, err
	}

	query := `SELECT status, COUNT(*), COALESCE(SUM(total_price), 0) FROM orders WHERE ` + column + `=$1 GROUP BY status`
	rows, err := r.storage.pool.Query(ctx, query, actor.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &model.OrderStatistics{
		ByStatus:   make(map[model.OrderStatus]int),
		TotalValue: decimal.Zero,
	}
	for rows.Next() {
		var (
			status model.OrderStatus
			count  int
			value  decimal.Decimal
		)
		if err := rows.Scan(&status, &count, &value); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.Total += count
		if status == model.OrderStatusDelivered {
			stats.TotalValue = stats.TotalValue.Add(value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// --- DeliveryJobRepository implementation ---

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*model.DeliveryJob, error) {
	job, err := scanJob(r.storage.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM delivery_jobs WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) ListOpen(ctx context.Context) ([]model.DeliveryJob, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM delivery_jobs WHERE status='open' ORDER BY created_at DESC`)
}

func (r *jobRepository) ListByTransporter(ctx context.Context, transporterID int64) ([]model.DeliveryJob, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM delivery_jobs WHERE transporter_id=$1 ORDER BY created_at DESC`, transporterID)
}

func (r *jobRepository) list(ctx context.Context, query string, args ...any) ([]model.DeliveryJob, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DeliveryJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Accept claims an open job for the transporter. The status guard in the
// UPDATE makes acceptance a compare-and-set: with concurrent callers only one
// statement matches the open row, the rest observe zero rows and lose.
func (r *jobRepository) Accept(ctx context.Context, jobID, transporterID int64, estimatedPickup, estimatedDelivery time.Time) (*model.DeliveryJob, error) {
	var accepted *model.DeliveryJob
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		orderID, orderStatus, err := lockOrderForJob(ctx, tx, jobID)
		if err != nil {
			return err
		}

		const claim = `UPDATE delivery_jobs
                       SET transporter_id=$1, status=$2, estimated_pickup_date=$3, estimated_delivery_date=$4, updated_at=NOW()
                       WHERE id=$5 AND status='open'
                       RETURNING ` + jobColumns
		job, err := scanJob(tx.QueryRow(ctx, claim, transporterID, model.JobStatusAccepted, estimatedPickup, estimatedDelivery, jobID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrJobNotOpen
			}
			return err
		}

		if orderStatus == model.OrderStatusPending {
			orderStatus = model.OrderStatusConfirmed
		}
		if _, err := tx.Exec(ctx, `UPDATE orders SET transporter_id=$1, status=$2, updated_at=NOW() WHERE id=$3`,
			transporterID, orderStatus, orderID); err != nil {
			return err
		}

		accepted = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

func (r *jobRepository) MarkPickedUp(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	return r.progress(ctx, jobID, transporterID, model.JobStatusAccepted, model.JobStatusPickedUp)
}

func (r *jobRepository) MarkDelivered(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	return r.progress(ctx, jobID, transporterID, model.JobStatusPickedUp, model.JobStatusDelivered)
}

func (r *jobRepository) progress(ctx context.Context, jobID, transporterID int64, from, to model.JobStatus) (*model.DeliveryJob, error) {
	var updated *model.DeliveryJob
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, _, err := lockOrderForJob(ctx, tx, jobID); err != nil {
			return err
		}
		job, err := lockJob(ctx, tx, jobID)
		if err != nil {
			return err
		}
		if !job.AssignedTo(transporterID) {
			return domainErrors.ErrUnauthorized
		}
		if job.Status != from {
			return domainErrors.ErrInvalidTransition
		}

		var (
			update      string
			orderStatus model.OrderStatus
		)
		switch to {
		case model.JobStatusPickedUp:
			update = `UPDATE delivery_jobs SET status=$1, actual_pickup_date=NOW(), updated_at=NOW() WHERE id=$2 RETURNING ` + jobColumns
			orderStatus = model.OrderStatusInTransit
		case model.JobStatusDelivered:
			update = `UPDATE delivery_jobs SET status=$1, actual_delivery_date=NOW(), updated_at=NOW() WHERE id=$2 RETURNING ` + jobColumns
			orderStatus = model.OrderStatusDelivered
		default:
			return domainErrors.ErrInvalidTransition
		}

		job, err = scanJob(tx.QueryRow(ctx, update, to, jobID))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, orderStatus, job.OrderID); err != nil {
			return err
		}

		updated = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Abandon lets the assigned transporter give up an accepted job before
// pickup. The job returns to the open board and the order keeps its status
// with the transporter slot cleared.
func (r *jobRepository) Abandon(ctx context.Context, jobID, transporterID int64) (*model.DeliveryJob, error) {
	var reopened *model.DeliveryJob
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, _, err := lockOrderForJob(ctx, tx, jobID); err != nil {
			return err
		}
		job, err := lockJob(ctx, tx, jobID)
		if err != nil {
			return err
		}
		if !job.AssignedTo(transporterID) {
			return domainErrors.ErrUnauthorized
		}
		if job.Status != model.JobStatusAccepted {
			return domainErrors.ErrInvalidTransition
		}

		const reopen = `UPDATE delivery_jobs
                        SET transporter_id=NULL, status=$1, estimated_pickup_date=NULL, estimated_delivery_date=NULL, updated_at=NOW()
                        WHERE id=$2
                        RETURNING ` + jobColumns
		job, err = scanJob(tx.QueryRow(ctx, reopen, model.JobStatusOpen, jobID))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `UPDATE orders SET transporter_id=NULL, updated_at=NOW() WHERE id=$1`, job.OrderID); err != nil {
			return err
		}

		reopened = job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reopened, nil
}

func (r *jobRepository) StatisticsByTransporter(ctx context.Context, transporterID int64) (*model.JobStatistics, error) {
	const query = `SELECT status, COUNT(*) FROM delivery_jobs WHERE transporter_id=$1 GROUP BY status`
	rows, err := r.storage.pool.Query(ctx, query, transporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &model.JobStatistics{ByStatus: make(map[model.JobStatus]int)}
	for rows.Next() {
		var (
			status model.JobStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// lockOrderForJob locks the parent order of a job before any job row is
// touched. Every writer that spans both tables takes the order lock first,
// matching the order-side transition path, so concurrent order and job
// updates for the same order serialize instead of deadlocking. The unlocked
// read of order_id is safe because a job never changes its order.
func lockOrderForJob(ctx context.Context, tx pgx.Tx, jobID int64) (int64, model.OrderStatus, error) {
	var orderID int64
	err := tx.QueryRow(ctx, `SELECT order_id FROM delivery_jobs WHERE id=$1`, jobID).Scan(&orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, "", domainErrors.ErrNotFound
		}
		return 0, "", err
	}

	var status model.OrderStatus
	if err := tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&status); err != nil {
		return 0, "", err
	}
	return orderID, status, nil
}

func lockJob(ctx context.Context, tx pgx.Tx, jobID int64) (*model.DeliveryJob, error) {
	job, err := scanJob(tx.QueryRow(ctx, `SELECT `+jobColumns+` FROM delivery_jobs WHERE id=$1 FOR UPDATE`, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
