package models

import (
	"time"
)

// Attorney represents a reviewer with elevated permissions over candidates
type Attorney struct {
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never serialize password hash
	ID             *int64    `json:"id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
