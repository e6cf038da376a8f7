package domain

import "time"

type AuditAction string

const (
	AuditApproveUser  AuditAction = "approve_user"
	AuditPromoteAdmin AuditAction = "promote_admin"
	AuditSetUserTiers AuditAction = "set_user_tiers"
)

type AuditLog struct {
	ID           string         `json:"id"`
	ActorID      string         `json:"actor_id"`
	ActorEmail   string         `json:"actor_email"`
	TargetUserID *string        `json:"target_user_id"`
	Action       AuditAction    `json:"action"`
	Metadata     map[string]any `json:"metadata"`
	CreatedAt    time.Time      `json:"created_at"`
}

type AuditFilter struct {
	From *time.Time
	To   *time.Time
}
