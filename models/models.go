package models

import (
	"time"

	_ "github.com/lib/pq"
)

type User struct {
	ID        int    `json:"id" example:"1"`
	Email     string `json:"email" example:"user@example.com"`
	Password  string `json:"password" example:""`
	FullName  string `json:"full_name" example:"Anish Kumar"`
	Suspended bool   `json:"suspended" example:"false"`
}

type Session struct {
	UserID    int       `json:"user_id"`
	SessionID string    `json:"session_id"`
	HostName  string    `json:"host_name"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestp"`
	ExpiresAt time.Time `json:"expires_at"`
}
