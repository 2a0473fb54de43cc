// Package order provides the order repository: placing orders from a
// session's item list, listing and filtering them for the kitchen view,
// status transitions, and purging of stale rows.
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/solvelysaid/orderdesk/internal/chat"
	"github.com/solvelysaid/orderdesk/internal/models"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order: not found")

// ErrBadStatus is returned for a status outside waiting/cooking/served.
var ErrBadStatus = errors.New("order: invalid status")

// Repo is the order repository.
type Repo struct {
	db *gorm.DB
}

// NewRepo creates a Repo.
func NewRepo(db *gorm.DB) (*Repo, error) {
	if db == nil {
		return nil, fmt.Errorf("order: repo: db is required")
	}
	return &Repo{db: db}, nil
}

// Create stores a new order for a table. Items are serialized as JSON and
// the order starts in the waiting status with a fresh UUID. An order may
// carry only a summary text when the caller has no structured items.
func (r *Repo) Create(tableNumber string, items []chat.Item, summary string) (*models.Order, error) {
	if tableNumber == "" {
		return nil, fmt.Errorf("order: create: table number is required")
	}
	if len(items) == 0 && summary == "" {
		return nil, fmt.Errorf("order: create: no items or summary")
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("order: create: encode items: %w", err)
	}
	o := &models.Order{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		Items:       string(encoded),
		Summary:     summary,
		Status:      models.OrderStatusWaiting,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(o).Error; err != nil {
		return nil, fmt.Errorf("order: create: %w", err)
	}
	return o, nil
}

// List returns orders newest first. An empty tableNumber returns every
// order; otherwise only that table's.
func (r *Repo) List(tableNumber string) ([]models.Order, error) {
	q := r.db.Order("created_at DESC")
	if tableNumber != "" {
		q = q.Where("table_number = ?", tableNumber)
	}
	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("order: list: %w", err)
	}
	return orders, nil
}

// Get returns one order by id.
func (r *Repo) Get(id string) (*models.Order, error) {
	var o models.Order
	err := r.db.Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("order: get %s: %w", id, err)
	}
	return &o, nil
}

// Delete removes an order by id.
func (r *Repo) Delete(id string) error {
	result := r.db.Delete(&models.Order{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("order: delete %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus moves an order to waiting, cooking, or served.
func (r *Repo) UpdateStatus(id, status string) error {
	switch status {
	case models.OrderStatusWaiting, models.OrderStatusCooking, models.OrderStatusServed:
	default:
		return ErrBadStatus
	}
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("order: status %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// PurgeOlderThan deletes orders created more than age ago and returns how
// many rows went away.
func (r *Repo) PurgeOlderThan(age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	result := r.db.Where("created_at < ?", cutoff).Delete(&models.Order{})
	if result.Error != nil {
		return 0, fmt.Errorf("order: purge: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Items decodes an order's JSON item list.
func Items(o *models.Order) ([]chat.Item, error) {
	var items []chat.Item
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, fmt.Errorf("order: decode items for %s: %w", o.ID, err)
	}
	return items, nil
}
