package http

import (
	"time"

	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/order"
	"travelorders/internal/core/domain/model/status"
)

// travelDateLayout is the wire format for travel dates. Orders carry dates,
// not instants; timestamps such as created_at stay RFC 3339.
const travelDateLayout = "2006-01-02"

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders. OwnerID is
// optional; administrators set it to open an order on another user's behalf.
type CreateOrderRequest struct {
	OwnerID       string `json:"owner_id,omitempty"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

// UpdateOrderRequest is the payload for PATCH /api/v1/orders/{orderId}.
// Absent fields keep their stored values.
type UpdateOrderRequest struct {
	Destination   *string `json:"destination,omitempty"`
	DepartureDate *string `json:"departure_date,omitempty"`
	ReturnDate    *string `json:"return_date,omitempty"`
}

// ChangeOrderStatusRequest is the payload for POST /api/v1/orders/{orderId}/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// CreateOrderStatusRequest is the payload for POST /api/v1/order-statuses.
type CreateOrderStatusRequest struct {
	Name string `json:"name"`
}

// OrderResponse is the JSON rendering of one travel order.
type OrderResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	RequesterName string    `json:"requester_name"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	ReturnDate    string    `json:"return_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PageResponse wraps a result page with its pagination envelope.
type PageResponse[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// StatusResponse is the JSON rendering of one order status.
type StatusResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsCustom bool   `json:"is_custom"`
}

// NotificationResponse is the JSON rendering of one notification.
type NotificationResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Message     string     `json:"message"`
	OrderID     string     `json:"order_id"`
	Destination string     `json:"destination"`
	OldStatus   string     `json:"old_status"`
	NewStatus   string     `json:"new_status"`
	ReadAt      *time.Time `json:"read_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UnreadCountResponse is the body of GET /api/v1/notifications/unread-count.
type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

// AuditEntryResponse is the JSON rendering of one audit trail entry.
type AuditEntryResponse struct {
	ID          string         `json:"id"`
	ActorID     string         `json:"actor_id"`
	SubjectType string         `json:"subject_type"`
	SubjectID   string         `json:"subject_id"`
	Action      string         `json:"action"`
	Properties  map[string]any `json:"properties"`
	CreatedAt   time.Time      `json:"created_at"`
}

func orderToResponse(o *order.Order) OrderResponse {
	current := o.Status()
	return OrderResponse{
		ID:            o.ID().String(),
		OwnerID:       o.OwnerID().String(),
		RequesterName: o.RequesterName(),
		Destination:   o.Destination(),
		DepartureDate: o.Period().Departure().Format(travelDateLayout),
		ReturnDate:    o.Period().Return().Format(travelDateLayout),
		Status:        current.Name(),
		CreatedAt:     o.CreatedAt(),
	}
}

func orderItemToResponse(item queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:            item.ID.String(),
		OwnerID:       item.OwnerID.String(),
		RequesterName: item.RequesterName,
		Destination:   item.Destination,
		DepartureDate: item.DepartureDate.Format(travelDateLayout),
		ReturnDate:    item.ReturnDate.Format(travelDateLayout),
		Status:        item.StatusName,
		CreatedAt:     item.CreatedAt,
	}
}

func statusToResponse(s *status.Status) StatusResponse {
	return StatusResponse{
		ID:       s.ID().String(),
		Name:     s.Name(),
		IsCustom: s.IsCustom(),
	}
}

func statusItemToResponse(item queries.StatusResponse) StatusResponse {
	return StatusResponse{
		ID:       item.ID.String(),
		Name:     item.Name,
		IsCustom: item.IsCustom,
	}
}

func notificationItemToResponse(item queries.NotificationResponse) NotificationResponse {
	return NotificationResponse{
		ID:          item.ID.String(),
		Type:        item.Type,
		Title:       item.Title,
		Message:     item.Message,
		OrderID:     item.OrderID.String(),
		Destination: item.Destination,
		OldStatus:   item.OldStatusName,
		NewStatus:   item.NewStatusName,
		ReadAt:      item.ReadAt,
		CreatedAt:   item.CreatedAt,
	}
}

func auditItemToResponse(item queries.AuditEntryResponse) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          item.ID.String(),
		ActorID:     item.ActorID.String(),
		SubjectType: item.SubjectType,
		SubjectID:   item.SubjectID.String(),
		Action:      item.Action,
		Properties:  item.Properties,
		CreatedAt:   item.CreatedAt,
	}
}
