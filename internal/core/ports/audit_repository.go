package ports

import (
	"context"

	"travelorders/internal/core/domain/model/audit"
)

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only: there is no update or delete operation, and a
// failure to append is a storage fault surfaced to the caller.
type AuditRepository interface {
	// Add appends one immutable audit entry.
	Add(ctx context.Context, entry *audit.Entry) error
}
