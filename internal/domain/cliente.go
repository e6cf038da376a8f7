package domain

import "time"

type Cliente struct {
	ID         string    `json:"id"`
	TierID     string    `json:"tier_id"`
	Nome       string    `json:"nome"`
	LogoURL    *string   `json:"logo_url"`
	MarginMeta *float64  `json:"margin_meta"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ClienteInput struct {
	TierID     *string  `json:"tier_id" validate:"omitempty,min=1"`
	Nome       *string  `json:"nome" validate:"omitempty,min=1"`
	LogoURL    *string  `json:"logo_url" validate:"omitempty,url"`
	MarginMeta *float64 `json:"margin_meta" validate:"omitempty,gte=0,lte=100"`
}
