// Package http exposes the shipment ledger over a REST API. The caller's
// address arrives in the X-Caller-Address header; role checks happen in the
// application layer, so the transport stays a thin mapping between JSON and
// commands/queries.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/commands"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/application/usecases/queries"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/access"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/kernel"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/core/domain/model/shipment"
	"github.com/hoang-le-edu/smart-logistics-sub000/internal/pkg/errs"
)

// CallerHeader carries the authenticated address of the requester.
const CallerHeader = "X-Caller-Address"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	grantRoleHandler       commands.GrantRoleCommandHandler
	revokeRoleHandler      commands.RevokeRoleCommandHandler
	setDisplayNameHandler  commands.SetDisplayNameCommandHandler
	createOrderHandler     commands.CreateOrderCommandHandler
	createShipmentHandler  commands.CreateShipmentCommandHandler
	attachDocumentHandler  commands.AttachDocumentCommandHandler
	updateMilestoneHandler commands.UpdateMilestoneCommandHandler
	openEscrowHandler      commands.OpenEscrowCommandHandler
	depositHandler         commands.DepositCommandHandler
	releaseHandler         commands.ReleaseMilestoneCommandHandler
	refundHandler          commands.RefundEscrowCommandHandler
	mintHandler            commands.MintCommandHandler
	approveHandler         commands.ApproveCommandHandler

	getShipmentHandler  queries.GetShipmentQueryHandler
	getDocumentsHandler queries.GetShipmentDocumentsQueryHandler
	getByAddressHandler queries.GetShipmentsByAddressQueryHandler
	getTotalHandler     queries.GetTotalShipmentsQueryHandler
	getEscrowHandler    queries.GetEscrowDetailsQueryHandler
	hasRoleHandler      queries.HasRoleQueryHandler
	getBalanceHandler   queries.GetBalanceQueryHandler
}

// NewServer creates the HTTP server with every command and query handler.
func NewServer(
	grantRoleHandler commands.GrantRoleCommandHandler,
	revokeRoleHandler commands.RevokeRoleCommandHandler,
	setDisplayNameHandler commands.SetDisplayNameCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	attachDocumentHandler commands.AttachDocumentCommandHandler,
	updateMilestoneHandler commands.UpdateMilestoneCommandHandler,
	openEscrowHandler commands.OpenEscrowCommandHandler,
	depositHandler commands.DepositCommandHandler,
	releaseHandler commands.ReleaseMilestoneCommandHandler,
	refundHandler commands.RefundEscrowCommandHandler,
	mintHandler commands.MintCommandHandler,
	approveHandler commands.ApproveCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	getDocumentsHandler queries.GetShipmentDocumentsQueryHandler,
	getByAddressHandler queries.GetShipmentsByAddressQueryHandler,
	getTotalHandler queries.GetTotalShipmentsQueryHandler,
	getEscrowHandler queries.GetEscrowDetailsQueryHandler,
	hasRoleHandler queries.HasRoleQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
) *Server {
	return &Server{
		grantRoleHandler:       grantRoleHandler,
		revokeRoleHandler:      revokeRoleHandler,
		setDisplayNameHandler:  setDisplayNameHandler,
		createOrderHandler:     createOrderHandler,
		createShipmentHandler:  createShipmentHandler,
		attachDocumentHandler:  attachDocumentHandler,
		updateMilestoneHandler: updateMilestoneHandler,
		openEscrowHandler:      openEscrowHandler,
		depositHandler:         depositHandler,
		releaseHandler:         releaseHandler,
		refundHandler:          refundHandler,
		mintHandler:            mintHandler,
		approveHandler:         approveHandler,
		getShipmentHandler:     getShipmentHandler,
		getDocumentsHandler:    getDocumentsHandler,
		getByAddressHandler:    getByAddressHandler,
		getTotalHandler:        getTotalHandler,
		getEscrowHandler:       getEscrowHandler,
		hasRoleHandler:         hasRoleHandler,
		getBalanceHandler:      getBalanceHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/accounts/:address/roles", s.GrantRole)
	api.DELETE("/accounts/:address/roles/:role", s.RevokeRole)
	api.GET("/accounts/:address/roles/:role", s.HasRole)
	api.PUT("/accounts/:address/display-name", s.SetDisplayName)
	api.GET("/accounts/:address/balance", s.GetBalance)

	api.POST("/tokens/mint", s.Mint)
	api.POST("/tokens/approve", s.Approve)

	api.POST("/orders", s.CreateOrder)

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetShipmentsByAddress)
	api.GET("/shipments/total", s.GetTotalShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.POST("/shipments/:id/milestone", s.UpdateMilestone)
	api.GET("/shipments/:id/documents", s.GetShipmentDocuments)
	api.POST("/shipments/:id/documents", s.AttachDocument)
	api.POST("/shipments/:id/escrow", s.OpenEscrow)
	api.GET("/shipments/:id/escrow", s.GetEscrowDetails)
	api.POST("/shipments/:id/escrow/deposit", s.Deposit)
	api.POST("/shipments/:id/escrow/release", s.ReleaseMilestone)
	api.POST("/shipments/:id/escrow/refund", s.RefundEscrow)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (s *Server) caller(ctx echo.Context) (kernel.Address, error) {
	return kernel.NewAddress(ctx.Request().Header.Get(CallerHeader))
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusOf(err), ErrorResponse{
		Code:    statusOf(err),
		Message: err.Error(),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrIllegalState),
		errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrDeadlineExceeded):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// GrantRoleRequest is the body of POST /accounts/:address/roles.
type GrantRoleRequest struct {
	Role string `json:"role"`
}

// GrantRole handles POST /api/v1/accounts/:address/roles.
func (s *Server) GrantRole(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req GrantRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	account, err := kernel.NewAddress(ctx.Param("address"))
	if err != nil {
		return writeError(ctx, err)
	}

	role, err := access.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGrantRoleCommand(sender, account, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.grantRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevokeRole handles DELETE /api/v1/accounts/:address/roles/:role.
func (s *Server) RevokeRole(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := kernel.NewAddress(ctx.Param("address"))
	if err != nil {
		return writeError(ctx, err)
	}

	role, err := access.RoleFromString(ctx.Param("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRevokeRoleCommand(sender, account, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.revokeRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// HasRoleResponse is the body of GET /accounts/:address/roles/:role.
type HasRoleResponse struct {
	HasRole bool `json:"hasRole"`
}

// HasRole handles GET /api/v1/accounts/:address/roles/:role.
func (s *Server) HasRole(ctx echo.Context) error {
	query, err := queries.NewHasRoleQuery(ctx.Param("address"), ctx.Param("role"))
	if err != nil {
		return writeError(ctx, err)
	}

	hasRole, err := s.hasRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HasRoleResponse{HasRole: hasRole})
}

// SetDisplayNameRequest is the body of PUT /accounts/:address/display-name.
type SetDisplayNameRequest struct {
	DisplayName string `json:"displayName"`
}

// SetDisplayName handles PUT /api/v1/accounts/:address/display-name.
func (s *Server) SetDisplayName(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req SetDisplayNameRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	account, err := kernel.NewAddress(ctx.Param("address"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetDisplayNameCommand(sender, account, req.DisplayName)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setDisplayNameHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BalanceResponse is the body of GET /accounts/:address/balance.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

// GetBalance handles GET /api/v1/accounts/:address/balance.
func (s *Server) GetBalance(ctx echo.Context) error {
	query, err := queries.NewGetBalanceQuery(ctx.Param("address"))
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		Address: ctx.Param("address"),
		Balance: balance,
	})
}

// MintRequest is the body of POST /tokens/mint.
type MintRequest struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

// Mint handles POST /api/v1/tokens/mint.
func (s *Server) Mint(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req MintRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	to, err := kernel.NewAddress(req.To)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMintCommand(sender, to, req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.mintHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveRequest is the body of POST /tokens/approve.
type ApproveRequest struct {
	Spender string `json:"spender"`
	Amount  int64  `json:"amount"`
}

// Approve handles POST /api/v1/tokens/approve. The caller grants the spender
// (normally the escrow vault) the right to pull tokens from their balance.
func (s *Server) Approve(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ApproveRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	spender, err := kernel.NewAddress(req.Spender)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveCommand(sender, spender, req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	ContentRef string `json:"contentRef"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID uint64 `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	contentRef, err := kernel.NewContentRef(req.ContentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(sender, contentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// CreateShipmentRequest is the body of POST /shipments.
// Fee of zero creates the shipment without an escrow; Deadline is optional
// and defaults to the configured escrow TTL. Documents are attached at
// creation time, tagged with the creating staff member.
type CreateShipmentRequest struct {
	Buyer      string                 `json:"buyer"`
	ContentRef string                 `json:"contentRef"`
	Documents  []InitialDocumentEntry `json:"documents,omitempty"`
	Fee        int64                  `json:"fee"`
	Deadline   *time.Time             `json:"deadline,omitempty"`
}

// InitialDocumentEntry is one document in a CreateShipmentRequest.
type InitialDocumentEntry struct {
	DocType    string `json:"docType"`
	ContentRef string `json:"contentRef"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	buyer, err := kernel.NewAddress(req.Buyer)
	if err != nil {
		return writeError(ctx, err)
	}

	contentRef, err := kernel.NewContentRef(req.ContentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	documents := make([]commands.InitialDocument, 0, len(req.Documents))
	for _, entry := range req.Documents {
		ref, err := kernel.NewContentRef(entry.ContentRef)
		if err != nil {
			return writeError(ctx, err)
		}
		documents = append(documents, commands.InitialDocument{DocType: entry.DocType, ContentRef: ref})
	}

	var deadline time.Time
	if req.Deadline != nil {
		deadline = *req.Deadline
	}

	cmd, err := commands.NewCreateShipmentCommand(sender, buyer, contentRef, documents, req.Fee, deadline)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateMilestoneRequest is the body of POST /shipments/:id/milestone.
// Status carries the numeric target code; Reason is required only for
// cancellations and failures.
type UpdateMilestoneRequest struct {
	Status int    `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// UpdateMilestone handles POST /api/v1/shipments/:id/milestone.
func (s *Server) UpdateMilestone(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateMilestoneRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := shipment.StatusFromCode(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateMilestoneCommand(sender, id, target, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateMilestoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AttachDocumentRequest is the body of POST /shipments/:id/documents.
type AttachDocumentRequest struct {
	DocType    string `json:"docType"`
	ContentRef string `json:"contentRef"`
}

// AttachDocument handles POST /api/v1/shipments/:id/documents.
func (s *Server) AttachDocument(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AttachDocumentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	contentRef, err := kernel.NewContentRef(req.ContentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAttachDocumentCommand(sender, id, req.DocType, contentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.attachDocumentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentDocuments handles GET /api/v1/shipments/:id/documents.
func (s *Server) GetShipmentDocuments(ctx echo.Context) error {
	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentDocumentsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	documents, err := s.getDocumentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, documents)
}

// GetShipmentsByAddress handles GET /api/v1/shipments?address=...
func (s *Server) GetShipmentsByAddress(ctx echo.Context) error {
	query, err := queries.NewGetShipmentsByAddressQuery(ctx.QueryParam("address"))
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.getByAddressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// TotalShipmentsResponse is the body of GET /shipments/total.
type TotalShipmentsResponse struct {
	Total uint64 `json:"total"`
}

// GetTotalShipments handles GET /api/v1/shipments/total.
func (s *Server) GetTotalShipments(ctx echo.Context) error {
	query, err := queries.NewGetTotalShipmentsQuery()
	if err != nil {
		return writeError(ctx, err)
	}

	total, err := s.getTotalHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TotalShipmentsResponse{Total: total})
}

// OpenEscrowRequest is the body of POST /shipments/:id/escrow.
type OpenEscrowRequest struct {
	Amount   int64      `json:"amount"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// OpenEscrow handles POST /api/v1/shipments/:id/escrow.
func (s *Server) OpenEscrow(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req OpenEscrowRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var deadline time.Time
	if req.Deadline != nil {
		deadline = *req.Deadline
	}

	cmd, err := commands.NewOpenEscrowCommand(sender, id, req.Amount, deadline)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.openEscrowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetEscrowDetails handles GET /api/v1/shipments/:id/escrow.
func (s *Server) GetEscrowDetails(ctx echo.Context) error {
	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetEscrowDetailsQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getEscrowHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DepositRequest is the body of POST /shipments/:id/escrow/deposit.
type DepositRequest struct {
	Amount int64 `json:"amount"`
}

// Deposit handles POST /api/v1/shipments/:id/escrow/deposit.
func (s *Server) Deposit(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req DepositRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDepositCommand(sender, id, req.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.depositHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReleaseMilestoneRequest is the body of POST /shipments/:id/escrow/release.
type ReleaseMilestoneRequest struct {
	Milestone int `json:"milestone"`
}

// ReleaseMilestone handles POST /api/v1/shipments/:id/escrow/release.
func (s *Server) ReleaseMilestone(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req ReleaseMilestoneRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReleaseMilestoneCommand(sender, id, req.Milestone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.releaseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundEscrow handles POST /api/v1/shipments/:id/escrow/refund.
func (s *Server) RefundEscrow(ctx echo.Context) error {
	sender, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := shipmentID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRefundEscrowCommand(sender, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.refundHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func shipmentID(ctx echo.Context) (uint64, error) {
	var id uint64
	if err := echo.PathParamsBinder(ctx).Uint64("id", &id).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	if id == 0 {
		return 0, errs.NewValueIsRequiredError("id")
	}

	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
