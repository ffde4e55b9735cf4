// Package http exposes the marketplace over REST. Handlers translate echo
// requests into commands and queries, and translate domain errors into
// status codes. Identity arrives in the X-Actor-Id and X-Actor-Role headers;
// authentication itself happens upstream.
package http

import (
	"errors"
	"net/http"
	"time"

	"livehaul/internal/core/application/usecases/commands"
	"livehaul/internal/core/application/usecases/queries"
	"livehaul/internal/core/domain/model/kernel"
	"livehaul/internal/core/domain/model/load"
	"livehaul/internal/core/domain/model/payment"
	"livehaul/internal/core/domain/model/trip"
	"livehaul/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Actor identity headers. Requests without them fail authorization, not
// parsing.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	assignLoadHandler     commands.AssignLoadCommandHandler
	transitionTripHandler commands.TransitionTripStatusCommandHandler
	preTripCheckHandler   commands.CapturePreTripCheckCommandHandler
	captureEpodHandler    commands.CaptureEpodCommandHandler
	recordExpenseHandler  commands.RecordExpenseCommandHandler
	fundPaymentHandler    commands.FundPaymentCommandHandler
	openDisputeHandler    commands.OpenDisputeCommandHandler
	resolveDisputeHandler commands.ResolveDisputeCommandHandler

	getPaymentHandler   queries.GetPaymentQueryHandler
	getOpenLoadsHandler queries.GetOpenLoadsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	assignLoadHandler commands.AssignLoadCommandHandler,
	transitionTripHandler commands.TransitionTripStatusCommandHandler,
	preTripCheckHandler commands.CapturePreTripCheckCommandHandler,
	captureEpodHandler commands.CaptureEpodCommandHandler,
	recordExpenseHandler commands.RecordExpenseCommandHandler,
	fundPaymentHandler commands.FundPaymentCommandHandler,
	openDisputeHandler commands.OpenDisputeCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	getPaymentHandler queries.GetPaymentQueryHandler,
	getOpenLoadsHandler queries.GetOpenLoadsQueryHandler,
) *Server {
	return &Server{
		assignLoadHandler:     assignLoadHandler,
		transitionTripHandler: transitionTripHandler,
		preTripCheckHandler:   preTripCheckHandler,
		captureEpodHandler:    captureEpodHandler,
		recordExpenseHandler:  recordExpenseHandler,
		fundPaymentHandler:    fundPaymentHandler,
		openDisputeHandler:    openDisputeHandler,
		resolveDisputeHandler: resolveDisputeHandler,
		getPaymentHandler:     getPaymentHandler,
		getOpenLoadsHandler:   getOpenLoadsHandler,
	}
}

// RegisterRoutes mounts every marketplace endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/loads/open", s.GetOpenLoads)
	v1.POST("/loads/:loadId/assign", s.AssignLoad)

	v1.POST("/trips/:tripId/status", s.TransitionTripStatus)
	v1.PUT("/trips/:tripId/pretrip-check", s.CapturePreTripCheck)
	v1.PUT("/trips/:tripId/epod", s.CaptureEpod)
	v1.POST("/trips/:tripId/expenses", s.RecordExpense)
	v1.GET("/trips/:tripId/payment", s.GetPaymentByTrip)

	v1.POST("/payments/:paymentId/fund", s.FundPayment)
	v1.GET("/payments/:paymentId", s.GetPayment)
	v1.POST("/payments/:paymentId/disputes", s.OpenDispute)
	v1.POST("/disputes/:disputeId/resolve", s.ResolveDispute)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// AssignLoad handles POST /api/v1/loads/:loadId/assign - hands a posted load
// to a carrier, provisioning the trip and opening the escrow payment.
func (s *Server) AssignLoad(ctx echo.Context) error {
	loadID, err := pathUUID(ctx, "loadId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body AssignLoadRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	carrierUserID, err := kernel.UUIDFromString(body.CarrierUserID)
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsRequiredErrorWithCause("carrier_user_id", err))
	}

	actorID, actorRole := actor(ctx)
	cmd, err := commands.NewAssignLoadCommand(loadID, actorID, actorRole, carrierUserID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.assignLoadHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignLoadResponse{
		Load:    loadToResponse(result.Load),
		Trip:    tripToResponse(result.Trip),
		Payment: paymentToResponse(result.Payment),
	})
}

// GetOpenLoads handles GET /api/v1/loads/open - the marketplace board.
func (s *Server) GetOpenLoads(ctx echo.Context) error {
	query := queries.NewGetOpenLoadsQuery()

	entries, err := s.getOpenLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]OpenLoadResponse, len(entries))
	for i, entry := range entries {
		response[i] = OpenLoadResponse{
			ID:          entry.ID.String(),
			Species:     entry.Species,
			HeadCount:   entry.HeadCount,
			WeightKg:    entry.WeightKg,
			Pickup:      entry.Pickup,
			Dropoff:     entry.Dropoff,
			DistanceKm:  entry.DistanceKm,
			OfferAmount: entry.OfferAmount,
			Currency:    entry.Currency,
			PostedAt:    entry.PostedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionTripStatus handles POST /api/v1/trips/:tripId/status.
func (s *Server) TransitionTripStatus(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body TransitionTripStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewTransitionTripStatusCommand(tripID, body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	updated, err := s.transitionTripHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tripToResponse(updated))
}

// CapturePreTripCheck handles PUT /api/v1/trips/:tripId/pretrip-check.
// A repeated capture replaces the previous snapshot.
func (s *Server) CapturePreTripCheck(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body PreTripCheckRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	driverID, err := optionalUUID(body.DriverID, "driver_id")
	if err != nil {
		return s.respondError(ctx, err)
	}
	truckID, err := optionalUUID(body.TruckID, "truck_id")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCapturePreTripCheckCommand(
		tripID, driverID, truckID,
		body.Roadworthy, body.AnimalsFit, body.Notes,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	check, err := s.preTripCheckHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PreTripCheckResponse{
		TripID:     check.TripID.String(),
		DriverID:   check.DriverID.String(),
		TruckID:    check.TruckID.String(),
		Roadworthy: check.Roadworthy,
		AnimalsFit: check.AnimalsFitToLoad,
		Notes:      check.Notes,
		CheckedAt:  check.CheckedAt,
	})
}

// CaptureEpod handles PUT /api/v1/trips/:tripId/epod - delivery proof, which
// completes the trip and releases a funded payment.
func (s *Server) CaptureEpod(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body EpodRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	actorID, _ := actor(ctx)
	cmd, err := commands.NewCaptureEpodCommand(
		tripID, actorID,
		body.DeliveredAt, body.ReceiverName, body.PhotoURL, body.Notes,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.captureEpodHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CaptureEpodResponse{
		Epod:    epodToResponse(result.Epod),
		Trip:    tripToResponse(result.Trip),
		Payment: paymentToResponse(result.Payment),
	})
}

// RecordExpense handles POST /api/v1/trips/:tripId/expenses.
func (s *Server) RecordExpense(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body ExpenseRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	driverUserID, err := optionalUUID(body.DriverUserID, "driver_user_id")
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRecordExpenseCommand(
		tripID, driverUserID,
		body.Category, body.Amount, body.Currency, body.Note,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	expense, err := s.recordExpenseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := ExpenseResponse{
		ID:         expense.ID.String(),
		TripID:     expense.TripID.String(),
		Category:   expense.Category,
		Amount:     expense.Amount,
		Currency:   expense.Currency,
		Note:       expense.Note,
		RecordedAt: expense.RecordedAt,
	}
	if expense.DriverID != nil {
		driverID := expense.DriverID.String()
		response.DriverID = &driverID
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetPaymentByTrip handles GET /api/v1/trips/:tripId/payment.
func (s *Server) GetPaymentByTrip(ctx echo.Context) error {
	tripID, err := pathUUID(ctx, "tripId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentQueryByTrip(tripID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	entry, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentViewToResponse(entry))
}

// FundPayment handles POST /api/v1/payments/:paymentId/fund - the shipper
// (or an admin) places the offer amount in escrow.
func (s *Server) FundPayment(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	actorID, actorRole := actor(ctx)
	cmd, err := commands.NewFundPaymentCommand(paymentID, actorID, actorRole)
	if err != nil {
		return s.respondError(ctx, err)
	}

	funded, err := s.fundPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentToResponse(funded))
}

// GetPayment handles GET /api/v1/payments/:paymentId. The settlement view
// reflects the latest resolved dispute, if any.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetPaymentQueryByID(paymentID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	entry, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentViewToResponse(entry))
}

// OpenDispute handles POST /api/v1/payments/:paymentId/disputes.
func (s *Server) OpenDispute(ctx echo.Context) error {
	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body OpenDisputeRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	actorID, _ := actor(ctx)
	cmd, err := commands.NewOpenDisputeCommand(paymentID, actorID, body.Reason)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dispute, err := s.openDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, disputeToResponse(dispute))
}

// ResolveDispute handles POST /api/v1/disputes/:disputeId/resolve.
// Admin only; a split resolution must conserve the payment total.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	disputeID, err := pathUUID(ctx, "disputeId")
	if err != nil {
		return s.respondError(ctx, err)
	}

	var body ResolveDisputeRequest
	if err = ctx.Bind(&body); err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	actorID, actorRole := actor(ctx)
	cmd, err := commands.NewResolveDisputeCommand(
		disputeID, actorID, actorRole,
		body.Resolution, body.PayeeAmount, body.PayerRefund,
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	resolved, err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, disputeToResponse(resolved))
}

// actor extracts the caller's identity from the request headers. A missing
// or malformed id yields the zero UUID, which command constructors turn into
// an authorization failure.
func actor(ctx echo.Context) (kernel.UUID, kernel.Role) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
	if err != nil {
		id = kernel.UUID{}
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		role = kernel.Role("")
	}

	return id, role
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// optionalUUID parses an optional body field; empty means absent.
func optionalUUID(raw, name string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &id, nil
}

// respondError maps domain errors onto HTTP status codes.
func (s *Server) respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrInvalidStatus):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func loadToResponse(l *load.Load) LoadResponse {
	response := LoadResponse{
		ID:          l.ID().String(),
		ShipperID:   l.ShipperID().String(),
		Species:     l.Cargo().Species,
		HeadCount:   l.Cargo().HeadCount,
		WeightKg:    l.Cargo().WeightKg,
		Pickup:      l.Route().Pickup,
		Dropoff:     l.Route().Dropoff,
		DistanceKm:  l.Route().DistanceKm,
		OfferAmount: l.Terms().OfferAmount,
		Currency:    l.Terms().Currency,
		PaymentMode: string(l.Terms().Mode),
		Status:      l.Status().String(),
		AssignedAt:  l.AssignedAt(),
		StartedAt:   l.StartedAt(),
		CompletedAt: l.CompletedAt(),
	}
	if carrierID := l.CarrierID(); carrierID != nil {
		id := carrierID.String()
		response.CarrierID = &id
	}
	return response
}

func tripToResponse(t *trip.Trip) TripResponse {
	stops := make([]RestStopResponse, len(t.RestStops()))
	for i, stop := range t.RestStops() {
		stops[i] = RestStopResponse{
			Seq:      stop.Seq,
			OffsetKm: stop.OffsetKm,
			Note:     stop.Note,
		}
	}

	return TripResponse{
		ID:         t.ID().String(),
		LoadID:     t.LoadID().String(),
		CarrierID:  t.CarrierID().String(),
		TruckID:    t.TruckID().String(),
		DriverID:   t.DriverID().String(),
		Status:     t.Status().String(),
		DistanceKm: t.DistanceKm(),
		RestStops:  stops,
	}
}

func epodToResponse(e *trip.Epod) EpodResponse {
	return EpodResponse{
		TripID:       e.TripID.String(),
		DeliveredAt:  e.DeliveredAt,
		ReceiverName: e.ReceiverName,
		PhotoURL:     e.PhotoURL,
		Notes:        e.Notes,
	}
}

func paymentToResponse(p *payment.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}

	return &PaymentResponse{
		ID:               p.ID().String(),
		LoadID:           p.LoadID().String(),
		TripID:           p.TripID().String(),
		PayerID:          p.PayerID().String(),
		PayeeID:          p.PayeeID().String(),
		Amount:           p.Amount(),
		Currency:         p.Currency(),
		Status:           string(p.Status()),
		CommissionRate:   p.CommissionRate(),
		CommissionAmount: p.CommissionAmount(),
		PayoutAmount:     p.PayoutAmount(),
		FundedAt:         p.FundedAt(),
		ReleasedAt:       p.ReleasedAt(),
	}
}

func paymentViewToResponse(view queries.GetPaymentQueryResponse) PaymentViewResponse {
	return PaymentViewResponse{
		PaymentResponse: PaymentResponse{
			ID:               view.ID.String(),
			LoadID:           view.LoadID.String(),
			TripID:           view.TripID.String(),
			PayerID:          view.PayerID.String(),
			PayeeID:          view.PayeeID.String(),
			Amount:           view.Amount,
			Currency:         view.Currency,
			Status:           string(view.Status),
			CommissionRate:   view.CommissionRate,
			CommissionAmount: view.CommissionAmount,
			PayoutAmount:     view.PayoutAmount,
			FundedAt:         view.FundedAt,
			ReleasedAt:       view.ReleasedAt,
		},
		Disputed: view.Disputed,
		Settlement: SettlementResponse{
			PayeeAmount: view.Settlement.PayeeAmount,
			PayerRefund: view.Settlement.PayerRefund,
			Commission:  view.Settlement.Commission,
			Overridden:  view.Settlement.Overridden,
		},
	}
}

func disputeToResponse(d *payment.Dispute) DisputeResponse {
	response := DisputeResponse{
		ID:          d.ID.String(),
		PaymentID:   d.PaymentID.String(),
		RaisedBy:    d.RaisedBy.String(),
		Reason:      d.Reason,
		Status:      string(d.Status),
		PayeeAmount: d.PayeeAmount,
		PayerRefund: d.PayerRefund,
		CreatedAt:   d.CreatedAt,
		ResolvedAt:  d.ResolvedAt,
	}
	if d.ResolvedBy != nil {
		resolvedBy := d.ResolvedBy.String()
		response.ResolvedBy = &resolvedBy
	}
	return response
}

// Request and response bodies.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type AssignLoadRequest struct {
	CarrierUserID string `json:"carrier_user_id"`
}

type TransitionTripStatusRequest struct {
	Status string `json:"status"`
}

type PreTripCheckRequest struct {
	DriverID   string `json:"driver_id"`
	TruckID    string `json:"truck_id"`
	Roadworthy bool   `json:"roadworthy"`
	AnimalsFit bool   `json:"animals_fit"`
	Notes      string `json:"notes"`
}

type EpodRequest struct {
	DeliveredAt  time.Time `json:"delivered_at"`
	ReceiverName string    `json:"receiver_name"`
	PhotoURL     string    `json:"photo_url"`
	Notes        string    `json:"notes"`
}

type ExpenseRequest struct {
	DriverUserID string  `json:"driver_user_id"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	Note         string  `json:"note"`
}

type OpenDisputeRequest struct {
	Reason string `json:"reason"`
}

type ResolveDisputeRequest struct {
	Resolution  string  `json:"resolution"`
	PayeeAmount float64 `json:"payee_amount"`
	PayerRefund float64 `json:"payer_refund"`
}

type LoadResponse struct {
	ID          string     `json:"id"`
	ShipperID   string     `json:"shipper_id"`
	Species     string     `json:"species"`
	HeadCount   int        `json:"head_count"`
	WeightKg    float64    `json:"weight_kg"`
	Pickup      string     `json:"pickup"`
	Dropoff     string     `json:"dropoff"`
	DistanceKm  *float64   `json:"distance_km,omitempty"`
	OfferAmount float64    `json:"offer_amount"`
	Currency    string     `json:"currency"`
	PaymentMode string     `json:"payment_mode"`
	Status      string     `json:"status"`
	CarrierID   *string    `json:"carrier_id,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type OpenLoadResponse struct {
	ID          string    `json:"id"`
	Species     string    `json:"species"`
	HeadCount   int       `json:"head_count"`
	WeightKg    float64   `json:"weight_kg"`
	Pickup      string    `json:"pickup"`
	Dropoff     string    `json:"dropoff"`
	DistanceKm  *float64  `json:"distance_km,omitempty"`
	OfferAmount float64   `json:"offer_amount"`
	Currency    string    `json:"currency"`
	PostedAt    time.Time `json:"posted_at"`
}

type RestStopResponse struct {
	Seq      int     `json:"seq"`
	OffsetKm float64 `json:"offset_km"`
	Note     string  `json:"note"`
}

type TripResponse struct {
	ID         string             `json:"id"`
	LoadID     string             `json:"load_id"`
	CarrierID  string             `json:"carrier_id"`
	TruckID    string             `json:"truck_id"`
	DriverID   string             `json:"driver_id"`
	Status     string             `json:"status"`
	DistanceKm *float64           `json:"distance_km,omitempty"`
	RestStops  []RestStopResponse `json:"rest_stops"`
}

type PreTripCheckResponse struct {
	TripID     string    `json:"trip_id"`
	DriverID   string    `json:"driver_id"`
	TruckID    string    `json:"truck_id"`
	Roadworthy bool      `json:"roadworthy"`
	AnimalsFit bool      `json:"animals_fit"`
	Notes      string    `json:"notes,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

type EpodResponse struct {
	TripID       string    `json:"trip_id"`
	DeliveredAt  time.Time `json:"delivered_at"`
	ReceiverName string    `json:"receiver_name"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

type ExpenseResponse struct {
	ID         string    `json:"id"`
	TripID     string    `json:"trip_id"`
	DriverID   *string   `json:"driver_id,omitempty"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type PaymentResponse struct {
	ID               string     `json:"id"`
	LoadID           string     `json:"load_id"`
	TripID           string     `json:"trip_id"`
	PayerID          string     `json:"payer_id"`
	PayeeID          string     `json:"payee_id"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	CommissionRate   float64    `json:"commission_rate"`
	CommissionAmount float64    `json:"commission_amount"`
	PayoutAmount     float64    `json:"payout_amount"`
	FundedAt         *time.Time `json:"funded_at,omitempty"`
	ReleasedAt       *time.Time `json:"released_at,omitempty"`
}

type SettlementResponse struct {
	PayeeAmount float64 `json:"payee_amount"`
	PayerRefund float64 `json:"payer_refund"`
	Commission  float64 `json:"commission"`
	Overridden  bool    `json:"overridden"`
}

type PaymentViewResponse struct {
	PaymentResponse
	Disputed   bool               `json:"disputed"`
	Settlement SettlementResponse `json:"settlement"`
}

type DisputeResponse struct {
	ID          string     `json:"id"`
	PaymentID   string     `json:"payment_id"`
	RaisedBy    string     `json:"raised_by"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	PayeeAmount *float64   `json:"payee_amount,omitempty"`
	PayerRefund *float64   `json:"payer_refund,omitempty"`
	ResolvedBy  *string    `json:"resolved_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type AssignLoadResponse struct {
	Load    LoadResponse     `json:"load"`
	Trip    TripResponse     `json:"trip"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

type CaptureEpodResponse struct {
	Epod    EpodResponse     `json:"epod"`
	Trip    TripResponse     `json:"trip"`
	Payment *PaymentResponse `json:"payment"`
}
