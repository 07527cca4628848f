package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error)
	GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error)
	List(ctx context.Context) ([]*domain.Session, error)
}

type ReservationSvc interface {
	Register(ctx context.Context, sessionID string, contact domain.Contact) (*domain.Registration, error)
	ConfirmRegistration(ctx context.Context, registrationID string) error
	Cancel(ctx context.Context, registrationID string) (*domain.CancelOutcome, error)
	AddGuests(ctx context.Context, registrationID string, requested int) (*domain.SplitOutcome, error)
	RemoveGuests(ctx context.Context, registrationID string, guestIDs []string) (*domain.RemoveOutcome, error)
	RenameGuests(ctx context.Context, registrationID string, renames []domain.GuestRename) error
	JoinWaitlist(ctx context.Context, sessionID string, contact domain.Contact) (*domain.WaitlistEntry, error)
	ReduceWaitlist(ctx context.Context, registrationID string, count int) error
}

type IntentSvc interface {
	ReserveIntent(ctx context.Context, input domain.ReserveIntentInput) (*domain.PendingIntent, error)
	ConfirmIntent(ctx context.Context, intentID string) (*domain.IntentOutcome, error)
}

type SweepSvc interface {
	Sweep(ctx context.Context) (*domain.SweepReport, error)
}

type Handler struct {
	sessionService     SessionSvc
	reservationService ReservationSvc
	intentService      IntentSvc
	sweepService       SweepSvc
}

func NewHandler(sessionService SessionSvc, reservationService ReservationSvc, intentService IntentSvc, sweepService SweepSvc) *Handler {
	return &Handler{
		sessionService:     sessionService,
		reservationService: reservationService,
		intentService:      intentService,
		sweepService:       sweepService,
	}
}

func contactFromRequest(req dto.ContactRequest) domain.Contact {
	return domain.Contact{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}
}

// Sessions

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateSessionInput{
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        startsAt,
		MaxCapacity:     req.MaxCapacity,
		PaymentTTL:      time.Duration(req.PaymentTTLMinutes) * time.Minute,
		RequiresPayment: req.RequiresPayment,
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) GetSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	details, err := h.sessionService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionDetailsResponse(details))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.reservationService.Register(c.Request.Context(), sessionID, contactFromRequest(req.Contact))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ConfirmRegistration(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	if err := h.reservationService.ConfirmRegistration(c.Request.Context(), registrationID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) CancelRegistration(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	outcome, err := h.reservationService.Cancel(c.Request.Context(), registrationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Freed:    outcome.Freed,
		Promoted: outcome.Promotion.Promoted,
	})
}

// Guests

func (h *Handler) AddGuests(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.AddGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.reservationService.AddGuests(c.Request.Context(), registrationID, req.Count)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *Handler) RemoveGuests(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.RemoveGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.reservationService.RemoveGuests(c.Request.Context(), registrationID, req.GuestIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RemoveGuestsResponse{
		Removed:  outcome.Removed,
		Promoted: outcome.Promotion.Promoted,
	})
}

func (h *Handler) RenameGuests(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.RenameGuestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	renames := make([]domain.GuestRename, 0, len(req.Renames))
	for _, rn := range req.Renames {
		renames = append(renames, domain.GuestRename{ID: rn.ID, Name: rn.Name})
	}

	if err := h.reservationService.RenameGuests(c.Request.Context(), registrationID, renames); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "renamed"})
}

// Waitlist

func (h *Handler) JoinWaitlist(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.reservationService.JoinWaitlist(c.Request.Context(), sessionID, contactFromRequest(req.Contact))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWaitlistEntryResponse(entry))
}

func (h *Handler) ReduceWaitlist(c *ginext.Context) {
	registrationID := c.Param("id")
	if _, err := uuid.Parse(registrationID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.ReduceWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.reservationService.ReduceWaitlist(c.Request.Context(), registrationID, req.Count); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "reduced"})
}

// Intents

func (h *Handler) ReserveIntent(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.ReserveIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ReserveIntentInput{
		SessionID:      sessionID,
		Kind:           domain.IntentKind(req.Kind),
		RegistrationID: req.RegistrationID,
		Requested:      req.Count,
	}
	if req.Contact != nil {
		input.Contact = contactFromRequest(*req.Contact)
	}

	intent, err := h.intentService.ReserveIntent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIntentResponse(intent))
}

func (h *Handler) ConfirmIntent(c *ginext.Context) {
	intentID := c.Param("id")
	if _, err := uuid.Parse(intentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid intent id"})
		return
	}

	outcome, err := h.intentService.ConfirmIntent(c.Request.Context(), intentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Admin

func (h *Handler) Sweep(c *ginext.Context) {
	report, err := h.sweepService.Sweep(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrWaitlistNotFound),
		errors.Is(err, domain.ErrIntentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableSpots),
		errors.Is(err, domain.ErrSpotsAvailable),
		errors.Is(err, domain.ErrRegistrationNotPending),
		errors.Is(err, domain.ErrPaymentExpired),
		errors.Is(err, domain.ErrIntentAlreadyConfirmed),
		errors.Is(err, domain.ErrIntentExpired):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
