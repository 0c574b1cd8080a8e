package queries

import (
	"context"
	"encoding/json"
	"strings"

	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/ports"
	"travelorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAuditEntriesQueryHandler retrieves audit trail pages, newest first.
// Only administrators may read the trail; regular users observe the system
// through their orders and notifications instead.
type ListAuditEntriesQueryHandler struct {
	db    *gorm.DB
	users ports.UserDirectory
}

// NewListAuditEntriesQueryHandler creates a handler for audit list queries.
func NewListAuditEntriesQueryHandler(db *gorm.DB, users ports.UserDirectory) ListAuditEntriesQueryHandler {
	return ListAuditEntriesQueryHandler{db: db, users: users}
}

// Handle executes the list query. The time window filter is inclusive on
// both ends.
func (h ListAuditEntriesQueryHandler) Handle(
	ctx context.Context,
	query ListAuditEntriesQuery,
) (ListAuditEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAuditEntriesQueryResponse{}, err
	}

	actor, err := h.users.GetByID(ctx, query.ActorID())
	if err != nil {
		return ListAuditEntriesQueryResponse{}, err
	}
	if !actor.IsAdmin() {
		return ListAuditEntriesQueryResponse{},
			errs.NewForbiddenError("list-audit", "only administrators can read the audit trail")
	}

	where, args := buildAuditFilters(query.Filter())

	var total int64
	err = h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM audit_entries WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListAuditEntriesQueryResponse{}, err
	}

	pageArgs := append(args, query.PerPage(), (query.Page()-1)*query.PerPage())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			subject_type,
			subject_id,
			action,
			properties,
			created_at
		FROM audit_entries
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListAuditEntriesQueryResponse{}, err
	}
	defer rows.Close()

	items := make([]AuditEntryResponse, 0)
	for rows.Next() {
		var item AuditEntryResponse
		var id, actorID, subjectID uuid.UUID
		var properties []byte

		err = rows.Scan(
			&id,
			&actorID,
			&item.SubjectType,
			&subjectID,
			&item.Action,
			&properties,
			&item.CreatedAt,
		)
		if err != nil {
			return ListAuditEntriesQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListAuditEntriesQueryResponse{}, err
		}
		if item.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return ListAuditEntriesQueryResponse{}, err
		}
		if item.SubjectID, err = kernel.UUIDFromBytes(subjectID[:]); err != nil {
			return ListAuditEntriesQueryResponse{}, err
		}
		if len(properties) > 0 {
			if err = json.Unmarshal(properties, &item.Properties); err != nil {
				return ListAuditEntriesQueryResponse{}, err
			}
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return ListAuditEntriesQueryResponse{}, err
	}

	return ListAuditEntriesQueryResponse{
		Items:   items,
		Total:   total,
		Page:    query.Page(),
		PerPage: query.PerPage(),
	}, nil
}

func buildAuditFilters(filter ListAuditEntriesFilter) (string, []any) {
	conditions := []string{"1=1"}
	args := make([]any, 0)

	if filter.Action != "" {
		conditions = append(conditions, "action = ?")
		args = append(args, filter.Action)
	}
	if filter.SubjectType != "" {
		conditions = append(conditions, "subject_type = ?")
		args = append(args, filter.SubjectType)
	}
	if filter.ActorID != nil {
		conditions = append(conditions, "actor_id = ?")
		args = append(args, filter.ActorID.Bytes())
	}
	if filter.From != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *filter.To)
	}

	return strings.Join(conditions, " AND "), args
}
