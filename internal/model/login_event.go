package model

import "time"

const (
	LoginOutcomeGranted = "granted"
	LoginOutcomeDenied  = "denied"
)

// LoginEvent is the audit record for one decided login attempt. It is
// published to RabbitMQ by the auth service and persisted by the
// login event worker.
type LoginEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"size:64;not null;index" json:"username"`
	Outcome    string    `gorm:"size:16;not null;index" json:"outcome"`
	RemoteAddr string    `gorm:"size:64" json:"remote_addr"`
	CreatedAt  time.Time `json:"created_at"`
}
