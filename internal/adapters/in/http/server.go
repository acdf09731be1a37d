// Package http exposes the workflow commands and queries over a REST API.
// Every route is tenant scoped through the X-Tenant-ID header; domain errors
// are translated to HTTP status codes in one place.
package http

import (
	"net/http"
	"time"

	"winetrade/internal/core/application/usecases/commands"
	"winetrade/internal/core/application/usecases/queries"
	"winetrade/internal/core/domain/model/importcase"
	"winetrade/internal/core/domain/model/kernel"
	"winetrade/internal/core/domain/model/offer"
	"winetrade/internal/core/domain/model/order"
	"winetrade/internal/core/domain/model/request"

	"github.com/labstack/echo/v4"
)

const tenantHeader = "X-Tenant-ID"

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	createRequest    commands.CreateRequestCommandHandler
	setRequestStatus commands.SetRequestStatusCommandHandler

	createOffer    commands.CreateOfferCommandHandler
	setOfferStatus commands.SetOfferStatusCommandHandler
	acceptOffer    commands.AcceptOfferCommandHandler

	setOrderStatus       commands.SetOrderStatusCommandHandler
	confirmOrder         commands.ConfirmOrderCommandHandler
	declineOrder         commands.DeclineOrderCommandHandler
	createCaseForOrder   commands.CreateImportCaseForOrderCommandHandler
	createImportCase     commands.CreateImportCaseCommandHandler
	setImportCaseStatus  commands.SetImportCaseStatusCommandHandler
	attachSupplierImport commands.AttachSupplierImportCommandHandler

	getImportCase           queries.GetImportCaseQueryHandler
	getDocumentRequirements queries.GetDocumentRequirementsQueryHandler
	canTransition           queries.CanTransitionQueryHandler
	getLinkedImports        queries.GetLinkedSupplierImportsQueryHandler
	getOrderEvents          queries.GetOrderEventsQueryHandler
}

// NewServer creates the HTTP server over the given handlers.
func NewServer(
	createRequest commands.CreateRequestCommandHandler,
	setRequestStatus commands.SetRequestStatusCommandHandler,
	createOffer commands.CreateOfferCommandHandler,
	setOfferStatus commands.SetOfferStatusCommandHandler,
	acceptOffer commands.AcceptOfferCommandHandler,
	setOrderStatus commands.SetOrderStatusCommandHandler,
	confirmOrder commands.ConfirmOrderCommandHandler,
	declineOrder commands.DeclineOrderCommandHandler,
	createCaseForOrder commands.CreateImportCaseForOrderCommandHandler,
	createImportCase commands.CreateImportCaseCommandHandler,
	setImportCaseStatus commands.SetImportCaseStatusCommandHandler,
	attachSupplierImport commands.AttachSupplierImportCommandHandler,
	getImportCase queries.GetImportCaseQueryHandler,
	getDocumentRequirements queries.GetDocumentRequirementsQueryHandler,
	canTransition queries.CanTransitionQueryHandler,
	getLinkedImports queries.GetLinkedSupplierImportsQueryHandler,
	getOrderEvents queries.GetOrderEventsQueryHandler,
) *Server {
	return &Server{
		createRequest:           createRequest,
		setRequestStatus:        setRequestStatus,
		createOffer:             createOffer,
		setOfferStatus:          setOfferStatus,
		acceptOffer:             acceptOffer,
		setOrderStatus:          setOrderStatus,
		confirmOrder:            confirmOrder,
		declineOrder:            declineOrder,
		createCaseForOrder:      createCaseForOrder,
		createImportCase:        createImportCase,
		setImportCaseStatus:     setImportCaseStatus,
		attachSupplierImport:    attachSupplierImport,
		getImportCase:           getImportCase,
		getDocumentRequirements: getDocumentRequirements,
		canTransition:           canTransition,
		getLinkedImports:        getLinkedImports,
		getOrderEvents:          getOrderEvents,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.POST("/requests/:id/status", s.SetRequestStatus)

	api.POST("/offers", s.CreateOffer)
	api.POST("/offers/:id/status", s.SetOfferStatus)
	api.POST("/offers/:id/accept", s.AcceptOffer)

	api.POST("/orders/:id/status", s.SetOrderStatus)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/decline", s.DeclineOrder)
	api.POST("/orders/:id/import-case", s.CreateImportCaseForOrder)
	api.GET("/orders/:id/events", s.GetOrderEvents)

	api.POST("/import-cases", s.CreateImportCase)
	api.GET("/import-cases/:id", s.GetImportCase)
	api.POST("/import-cases/:id/status", s.SetImportCaseStatus)
	api.GET("/import-cases/:id/documents", s.GetDocumentRequirements)
	api.GET("/import-cases/:id/can-transition", s.CanTransition)
	api.POST("/import-cases/:id/supplier-imports", s.AttachSupplierImport)
	api.GET("/import-cases/:id/supplier-imports", s.GetLinkedSupplierImports)
}

// ErrorBody is the uniform error payload of the API.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func transitionBody(result commands.SetOrderStatusResult) map[string]any {
	return map[string]any{
		"from":     result.From,
		"to":       result.To,
		"degraded": result.Degraded,
	}
}

func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), ErrorBody{
		Code:    statusOf(err),
		Message: err.Error(),
	})
}

func (s *Server) tenantID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(tenantHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "missing "+tenantHeader+" header")
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "malformed "+tenantHeader+" header")
	}
	return id, nil
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "malformed identifier in path")
	}
	return id, nil
}

// CreateRequest handles POST /api/v1/requests.
func (s *Server) CreateRequest(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		RestaurantID    string `json:"restaurant_id"`
		QuantityBottles int    `json:"quantity_bottles"`
		Delivery        struct {
			Street     string `json:"street"`
			PostalCode string `json:"postal_code"`
			City       string `json:"city"`
			Country    string `json:"country"`
		} `json:"delivery"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed restaurant_id")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(requestID, tenantID, restaurantID, body.QuantityBottles, request.DeliveryDetails{
		Street:     body.Delivery.Street,
		PostalCode: body.Delivery.PostalCode,
		City:       body.Delivery.City,
		Country:    body.Delivery.Country,
	})
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.createRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": requestID.String()})
}

// SetRequestStatus handles POST /api/v1/requests/:id/status.
func (s *Server) SetRequestStatus(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	requestID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Target string `json:"target"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetRequestStatusCommand(requestID, tenantID, request.Status(body.Target))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.setRequestStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOffer handles POST /api/v1/offers.
func (s *Server) CreateOffer(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		RequestID    string     `json:"request_id"`
		RestaurantID string     `json:"restaurant_id"`
		SupplierID   string     `json:"supplier_id"`
		Currency     string     `json:"currency"`
		IsFranco     bool       `json:"is_franco"`
		ShippingCost float64    `json:"shipping_cost"`
		ValidUntil   *time.Time `json:"valid_until"`
		Lines        []struct {
			WineName  string  `json:"wine_name"`
			Producer  string  `json:"producer"`
			Vintage   int     `json:"vintage"`
			Quantity  int     `json:"quantity"`
			Unit      string  `json:"unit"`
			UnitPrice float64 `json:"unit_price"`
		} `json:"lines"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request_id")
	}
	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed restaurant_id")
	}
	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed supplier_id")
	}

	lines := make([]offer.Line, 0, len(body.Lines))
	for _, l := range body.Lines {
		lines = append(lines, offer.Line{
			WineName:  l.WineName,
			Producer:  l.Producer,
			Vintage:   l.Vintage,
			Quantity:  l.Quantity,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
		})
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOfferCommand(
		offerID, tenantID, requestID, restaurantID, supplierID,
		body.Currency, body.IsFranco, body.ShippingCost, body.ValidUntil, lines,
	)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.createOffer.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": offerID.String()})
}

// SetOfferStatus handles POST /api/v1/offers/:id/status.
func (s *Server) SetOfferStatus(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	offerID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Target string `json:"target"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetOfferStatusCommand(offerID, tenantID, offer.Status(body.Target))
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.setOfferStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept. This is the trade
// workflow entry point: it accepts the offer and creates the order, opening
// an import case for EU-sourced trades.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	offerID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Actor string `json:"actor"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, tenantID, body.Actor)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.acceptOffer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	response := map[string]any{
		"order_id": result.OrderID.String(),
		"degraded": result.Degraded,
	}
	if result.ImportCaseID != nil {
		response["import_case_id"] = result.ImportCaseID.String()
	}
	return ctx.JSON(http.StatusCreated, response)
}

// SetOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Target string `json:"target"`
		Actor  string `json:"actor"`
		Note   string `json:"note"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, tenantID, order.Status(body.Target), body.Actor, body.Note)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.setOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transitionBody(result))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		SupplierID string `json:"supplier_id"`
		Actor      string `json:"actor"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed supplier_id")
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, tenantID, supplierID, body.Actor)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.confirmOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transitionBody(result))
}

// DeclineOrder handles POST /api/v1/orders/:id/decline.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		SupplierID string `json:"supplier_id"`
		Actor      string `json:"actor"`
		Reason     string `json:"reason"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed supplier_id")
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, tenantID, supplierID, body.Actor, body.Reason)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.declineOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, transitionBody(result))
}

// CreateImportCaseForOrder handles POST /api/v1/orders/:id/import-case.
func (s *Server) CreateImportCaseForOrder(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Actor string `json:"actor"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCreateImportCaseForOrderCommand(kernel.NewUUID(), orderID, tenantID, body.Actor)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.createCaseForOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"import_case_id": result.ImportCaseID.String(),
		"degraded":       result.Degraded,
	})
}

// GetOrderEvents handles GET /api/v1/orders/:id/events.
func (s *Server) GetOrderEvents(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	orderID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderEventsQuery(orderID, tenantID)
	if err != nil {
		return fail(ctx, err)
	}
	response, err := s.getOrderEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateImportCase handles POST /api/v1/import-cases, the operator path that
// registers a case without an order.
func (s *Server) CreateImportCase(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		RestaurantID       string  `json:"restaurant_id"`
		ImporterID         string  `json:"importer_id"`
		DeliveryLocationID string  `json:"delivery_location_id"`
		SupplierID         *string `json:"supplier_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	restaurantID, err := kernel.UUIDFromString(body.RestaurantID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed restaurant_id")
	}
	importerID, err := kernel.UUIDFromString(body.ImporterID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed importer_id")
	}
	locationID, err := kernel.UUIDFromString(body.DeliveryLocationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed delivery_location_id")
	}
	var supplierID *kernel.UUID
	if body.SupplierID != nil {
		id, idErr := kernel.UUIDFromString(*body.SupplierID)
		if idErr != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed supplier_id")
		}
		supplierID = &id
	}

	caseID := kernel.NewUUID()
	cmd, err := commands.NewCreateImportCaseCommand(caseID, tenantID, restaurantID, importerID, locationID, supplierID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.createImportCase.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": caseID.String()})
}

// GetImportCase handles GET /api/v1/import-cases/:id.
func (s *Server) GetImportCase(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetImportCaseQuery(caseID, tenantID)
	if err != nil {
		return fail(ctx, err)
	}
	response, err := s.getImportCase.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, ErrorBody{
			Code:    http.StatusNotFound,
			Message: "import case not found",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetImportCaseStatus handles POST /api/v1/import-cases/:id/status.
func (s *Server) SetImportCaseStatus(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Target    string `json:"target"`
		ChangedBy string `json:"changed_by"`
		Note      string `json:"note"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewSetImportCaseStatusCommand(caseID, tenantID, importcase.Status(body.Target), body.ChangedBy, body.Note)
	if err != nil {
		return fail(ctx, err)
	}
	result, err := s.setImportCaseStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"from":         result.From,
		"to":           result.To,
		"allowed_next": result.AllowedNext,
		"degraded":     result.Degraded,
	})
}

// GetDocumentRequirements handles GET /api/v1/import-cases/:id/documents.
// An optional "target" query parameter checks the documents against that
// status instead of the case's current one.
func (s *Server) GetDocumentRequirements(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDocumentRequirementsQuery(caseID, tenantID, importcase.Status(ctx.QueryParam("target")))
	if err != nil {
		return fail(ctx, err)
	}
	response, err := s.getDocumentRequirements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, ErrorBody{
			Code:    http.StatusNotFound,
			Message: "import case not found",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CanTransition handles GET /api/v1/import-cases/:id/can-transition. The
// probed status is passed as the "target" query parameter.
func (s *Server) CanTransition(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewCanTransitionQuery(caseID, tenantID, importcase.Status(ctx.QueryParam("target")))
	if err != nil {
		return fail(ctx, err)
	}
	response, err := s.canTransition.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if response == nil {
		return ctx.JSON(http.StatusNotFound, ErrorBody{
			Code:    http.StatusNotFound,
			Message: "import case not found",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AttachSupplierImport handles POST /api/v1/import-cases/:id/supplier-imports.
func (s *Server) AttachSupplierImport(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	var body struct {
		BatchID string `json:"batch_id"`
	}
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	batchID, err := kernel.UUIDFromString(body.BatchID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed batch_id")
	}

	cmd, err := commands.NewAttachSupplierImportCommand(caseID, batchID, tenantID)
	if err != nil {
		return fail(ctx, err)
	}
	if err = s.attachSupplierImport.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLinkedSupplierImports handles GET /api/v1/import-cases/:id/supplier-imports.
func (s *Server) GetLinkedSupplierImports(ctx echo.Context) error {
	tenantID, err := s.tenantID(ctx)
	if err != nil {
		return err
	}
	caseID, err := pathID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetLinkedSupplierImportsQuery(caseID, tenantID)
	if err != nil {
		return fail(ctx, err)
	}
	response, err := s.getLinkedImports.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
