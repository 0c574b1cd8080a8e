// Package auditrepo persists the append-only audit trail. The attribute
// snapshot is stored as jsonb so the read side can filter and render it
// without a rigid schema.
package auditrepo

import (
	"encoding/json"
	"time"

	"travelorders/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for audit rows. There is no
// deleted_at column: the trail is never pruned by the application.
type EntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID     uuid.UUID `gorm:"type:uuid;index;not null"`
	SubjectType string    `gorm:"index;not null"`
	SubjectID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Action      string    `gorm:"index;not null"`
	Properties  []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_entries".
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) (EntryDTO, error) {
	properties, err := json.Marshal(entry.Properties())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:          entry.ID().Bytes(),
		ActorID:     entry.ActorID().Bytes(),
		SubjectType: string(entry.SubjectType()),
		SubjectID:   entry.SubjectID().Bytes(),
		Action:      entry.Action(),
		Properties:  properties,
		CreatedAt:   entry.CreatedAt(),
	}, nil
}
