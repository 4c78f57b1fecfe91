package domain

import "time"

// AuditAction names the mutation recorded by an AuditEvent.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditEvent records who changed which finance record and how.
type AuditEvent struct {
	ID         string      `json:"id" bson:"_id" gorm:"primaryKey;size:36"`
	Entity     string      `json:"entity" bson:"entity" gorm:"size:64;index;not null"`
	RecordID   string      `json:"record_id" bson:"record_id" gorm:"size:36;index;not null"`
	Action     AuditAction `json:"action" bson:"action" gorm:"size:16;not null"`
	ActorID    string      `json:"actor_id" bson:"actor_id" gorm:"size:36"`
	OccurredAt time.Time   `json:"occurred_at" bson:"occurred_at" gorm:"not null"`
}

func (AuditEvent) TableName() string { return "audit_log" }
