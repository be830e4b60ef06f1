package models

import "time"

type Notification struct {
	ID        string    `json:"id"`
	ViewID    string    `json:"view_id,omitempty"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
