package domain

import "time"

type Tier struct {
	ID         string    `json:"id"`
	Nome       string    `json:"nome"`
	MarginMeta *float64  `json:"margin_meta"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TierInput struct {
	Nome       *string  `json:"nome" validate:"omitempty,min=1"`
	MarginMeta *float64 `json:"margin_meta" validate:"omitempty,gte=0,lte=100"`
}
