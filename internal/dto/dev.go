package dto

import (
	"time"

	"github.com/google/uuid"
)

// SeedAccountParams are the query parameters of the development seed endpoint.
type SeedAccountParams struct {
	Count int `query:"count" json:"count" validate:"gte=1,lte=5000"`
	Days  int `query:"days" json:"days" validate:"gte=1,lte=730"`
}

type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type SeedAccountResponse struct {
	Message      string    `json:"message"`
	AccountID    uuid.UUID `json:"account_id"`
	Created      int       `json:"transactions_created"`
	FinalBalance string    `json:"final_balance"`
	DateRange    DateRange `json:"date_range"`
}

type ClearAccountResponse struct {
	Message   string    `json:"message"`
	AccountID uuid.UUID `json:"account_id"`
	Deleted   int64     `json:"transactions_deleted"`
}
