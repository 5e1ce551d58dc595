package domain

import "time"

type Customer struct {
	ID        int
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
