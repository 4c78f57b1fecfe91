package domain

import "time"

// Record is implemented by every finance entity managed through the generic
// CRUD routes. TableName doubles as the gorm table and the mongo collection.
type Record interface {
	EntityName() string
	TableName() string
	RecordID() string
	SetRecordID(id string)
	Stamp(now time.Time, created bool)
}

// Defaulter is implemented by records that fill unset fields before they are
// written.
type Defaulter interface {
	ApplyDefaults()
}

// RecordPtr constrains a type parameter to a pointer to a Record struct.
type RecordPtr[T any] interface {
	*T
	Record
}

// Timestamps holds the timestamps shared by every record.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" bson:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" gorm:"column:updated_at"`
}

func (s *Timestamps) Stamp(now time.Time, created bool) {
	if created {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}
