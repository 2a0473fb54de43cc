package models

import "time"

// Order statuses. New orders start as waiting; the kitchen front end moves
// them forward.
const (
	OrderStatusWaiting = "waiting"
	OrderStatusCooking = "cooking"
	OrderStatusServed  = "served"
)

// Order is a persisted order record written once the assistant's output has
// been confirmed for a table. Items is a JSON array of item objects
// ({name, note}); Summary is the free-text summary shown to staff.
type Order struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TableNumber string    `gorm:"size:16;not null;index" json:"table_number"`
	Items       string    `gorm:"type:json" json:"items"`
	Summary     string    `gorm:"type:text" json:"summary"`
	Status      string    `gorm:"size:16;default:waiting;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
