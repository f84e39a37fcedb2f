package database

import "time"

// Storage keys. The whole application state lives under a single key;
// the notification dismissal timestamp is a separate durable signal.
const (
	KeyAppState      = "astrenRestaurantData"
	KeyLastDismissed = "notificationLastDismissed"
)

// StateBlob is a row in the key-value table the storefront persists
// into. Values are serialized JSON or plain text, never interpreted by
// this layer.
type StateBlob struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
