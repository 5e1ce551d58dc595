package domain

import "time"

type RepeatOrder struct {
	SpkNumber string    `json:"spk"`
	OrderDate time.Time `json:"orderDate"`
	Details   string    `json:"details"`
}
