// Package http exposes the travel order workflow as a JSON API on Echo. The
// acting user is identified by the X-User-Id header; authentication itself is
// handled by the gateway in front of this service.
package http

import (
	"net/http"
	"strconv"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the identifier of the acting user.
const ActorHeader = "X-User-Id"

// Server wires HTTP requests to application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	changeOrderStatusHandler  commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	createStatusHandler       commands.CreateOrderStatusCommandHandler
	deleteStatusHandler       commands.DeleteOrderStatusCommandHandler
	markReadHandler           commands.MarkNotificationReadCommandHandler
	markAllReadHandler        commands.MarkAllNotificationsReadCommandHandler
	deleteNotificationHandler commands.DeleteNotificationCommandHandler
	clearNotificationsHandler commands.DeleteAllNotificationsCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	listStatusesHandler      queries.ListOrderStatusesQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
	unreadCountHandler       queries.UnreadNotificationCountQueryHandler
	listAuditHandler         queries.ListAuditEntriesQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createStatusHandler commands.CreateOrderStatusCommandHandler,
	deleteStatusHandler commands.DeleteOrderStatusCommandHandler,
	markReadHandler commands.MarkNotificationReadCommandHandler,
	markAllReadHandler commands.MarkAllNotificationsReadCommandHandler,
	deleteNotificationHandler commands.DeleteNotificationCommandHandler,
	clearNotificationsHandler commands.DeleteAllNotificationsCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listStatusesHandler queries.ListOrderStatusesQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
	unreadCountHandler queries.UnreadNotificationCountQueryHandler,
	listAuditHandler queries.ListAuditEntriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		createStatusHandler:       createStatusHandler,
		deleteStatusHandler:       deleteStatusHandler,
		markReadHandler:           markReadHandler,
		markAllReadHandler:        markAllReadHandler,
		deleteNotificationHandler: deleteNotificationHandler,
		clearNotificationsHandler: clearNotificationsHandler,
		listOrdersHandler:         listOrdersHandler,
		getOrderHandler:           getOrderHandler,
		listStatusesHandler:       listStatusesHandler,
		listNotificationsHandler:  listNotificationsHandler,
		unreadCountHandler:        unreadCountHandler,
		listAuditHandler:          listAuditHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)
	api.POST("/orders/:orderId/status", s.ChangeOrderStatus)

	api.GET("/order-statuses", s.ListOrderStatuses)
	api.POST("/order-statuses", s.CreateOrderStatus)
	api.DELETE("/order-statuses/:statusId", s.DeleteOrderStatus)

	api.GET("/notifications", s.ListNotifications)
	api.GET("/notifications/unread-count", s.UnreadNotificationCount)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.POST("/notifications/:notificationId/read", s.MarkNotificationRead)
	api.DELETE("/notifications/:notificationId", s.DeleteNotification)
	api.DELETE("/notifications", s.DeleteAllNotifications)

	api.GET("/audit-entries", s.ListAuditEntries)
}

// requireActor extracts the acting user from the X-User-Id header. On failure
// it writes the 401 response and reports ok=false.
func requireActor(ctx echo.Context) (kernel.UUID, bool) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		_ = unauthorized(ctx, "missing "+ActorHeader+" header")
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		_ = unauthorized(ctx, "malformed "+ActorHeader+" header")
		return kernel.UUID{}, false
	}

	return id, true
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	departure, err := time.Parse(travelDateLayout, req.DepartureDate)
	if err != nil {
		return badRequest(ctx, "departure_date must be formatted as "+travelDateLayout)
	}
	returnDate, err := time.Parse(travelDateLayout, req.ReturnDate)
	if err != nil {
		return badRequest(ctx, "return_date must be formatted as "+travelDateLayout)
	}

	var cmd commands.CreateOrderCommand
	if req.OwnerID != "" {
		ownerID, ownerErr := kernel.UUIDFromString(req.OwnerID)
		if ownerErr != nil {
			return badRequest(ctx, "owner_id must be a UUID")
		}
		cmd, err = commands.NewCreateOrderCommandForUser(actor, ownerID, req.Destination, departure, returnDate)
	} else {
		cmd, err = commands.NewCreateOrderCommand(actor, req.Destination, departure, returnDate)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	var err error
	filter := queries.ListOrdersFilter{
		StatusName:          ctx.QueryParam("status"),
		DestinationContains: ctx.QueryParam("destination"),
	}
	if filter.DepartureFrom, err = parseDateParam(ctx, "departure_from"); err != nil {
		return badRequest(ctx, "departure_from must be formatted as "+travelDateLayout)
	}
	if filter.DepartureTo, err = parseDateParam(ctx, "departure_to"); err != nil {
		return badRequest(ctx, "departure_to must be formatted as "+travelDateLayout)
	}

	page, perPage, err := parsePaginationParams(ctx)
	if err != nil {
		return badRequest(ctx, "page and per_page must be integers")
	}

	query, err := queries.NewListOrdersQuery(actor, filter, page, perPage)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]OrderResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = orderItemToResponse(item)
	}

	return ctx.JSON(http.StatusOK, PageResponse[OrderResponse]{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "orderId must be a UUID")
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderItemToResponse(item))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "orderId must be a UUID")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var departure, returnDate *time.Time
	if req.DepartureDate != nil {
		parsed, parseErr := time.Parse(travelDateLayout, *req.DepartureDate)
		if parseErr != nil {
			return badRequest(ctx, "departure_date must be formatted as "+travelDateLayout)
		}
		departure = &parsed
	}
	if req.ReturnDate != nil {
		parsed, parseErr := time.Parse(travelDateLayout, *req.ReturnDate)
		if parseErr != nil {
			return badRequest(ctx, "return_date must be formatted as "+travelDateLayout)
		}
		returnDate = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, orderID, req.Destination, departure, returnDate)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "orderId must be a UUID")
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "orderId must be a UUID")
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ListOrderStatuses handles GET /api/v1/order-statuses.
func (s *Server) ListOrderStatuses(ctx echo.Context) error {
	if _, ok := requireActor(ctx); !ok {
		return nil
	}

	query := queries.NewListOrderStatusesQuery()

	statuses, err := s.listStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]StatusResponse, len(statuses))
	for i, item := range statuses {
		response[i] = statusItemToResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderStatus handles POST /api/v1/order-statuses.
func (s *Server) CreateOrderStatus(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	var req CreateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOrderStatusCommand(actor, req.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, statusToResponse(created))
}

// DeleteOrderStatus handles DELETE /api/v1/order-statuses/{statusId}.
func (s *Server) DeleteOrderStatus(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	statusID, err := kernel.UUIDFromString(ctx.Param("statusId"))
	if err != nil {
		return badRequest(ctx, "statusId must be a UUID")
	}

	cmd, err := commands.NewDeleteOrderStatusCommand(actor, statusID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	unreadOnly := ctx.QueryParam("unread") == "true"

	page, perPage, err := parsePaginationParams(ctx)
	if err != nil {
		return badRequest(ctx, "page and per_page must be integers")
	}

	query, err := queries.NewListNotificationsQuery(actor, unreadOnly, page, perPage)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]NotificationResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = notificationItemToResponse(item)
	}

	return ctx.JSON(http.StatusOK, PageResponse[NotificationResponse]{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// UnreadNotificationCount handles GET /api/v1/notifications/unread-count.
func (s *Server) UnreadNotificationCount(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	query, err := queries.NewUnreadNotificationCountQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	count, err := s.unreadCountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UnreadCountResponse{Unread: count})
}

// MarkNotificationRead handles POST /api/v1/notifications/{notificationId}/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return badRequest(ctx, "notificationId must be a UUID")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(actor, notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markAllReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/{notificationId}.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return badRequest(ctx, "notificationId must be a UUID")
	}

	cmd, err := commands.NewDeleteNotificationCommand(actor, notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAllNotifications handles DELETE /api/v1/notifications.
func (s *Server) DeleteAllNotifications(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	cmd, err := commands.NewDeleteAllNotificationsCommand(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearNotificationsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListAuditEntries handles GET /api/v1/audit-entries.
func (s *Server) ListAuditEntries(ctx echo.Context) error {
	actor, ok := requireActor(ctx)
	if !ok {
		return nil
	}

	var err error
	filter := queries.ListAuditEntriesFilter{
		Action:      ctx.QueryParam("action"),
		SubjectType: ctx.QueryParam("subject_type"),
	}
	if raw := ctx.QueryParam("actor_id"); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "actor_id must be a UUID")
		}
		filter.ActorID = &id
	}
	if filter.From, err = parseDateParam(ctx, "from"); err != nil {
		return badRequest(ctx, "from must be formatted as "+travelDateLayout)
	}
	if filter.To, err = parseDateParam(ctx, "to"); err != nil {
		return badRequest(ctx, "to must be formatted as "+travelDateLayout)
	}

	page, perPage, err := parsePaginationParams(ctx)
	if err != nil {
		return badRequest(ctx, "page and per_page must be integers")
	}

	query, err := queries.NewListAuditEntriesQuery(actor, filter, page, perPage)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]AuditEntryResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = auditItemToResponse(item)
	}

	return ctx.JSON(http.StatusOK, PageResponse[AuditEntryResponse]{
		Items:   items,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// parseDateParam reads an optional date query parameter.
func parseDateParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(travelDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parsePaginationParams reads the optional page and per_page query parameters.
// Zero values defer to the use case defaults.
func parsePaginationParams(ctx echo.Context) (page, perPage int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	if raw := ctx.QueryParam("per_page"); raw != "" {
		if perPage, err = strconv.Atoi(raw); err != nil {
			return 0, 0, err
		}
	}
	return page, perPage, nil
}
