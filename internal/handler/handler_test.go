package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/handler/dto"
	hmocks "github.com/ntsvetkov/ClubSpot/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	sessionSvc     *hmocks.MockSessionSvc
	reservationSvc *hmocks.MockReservationSvc
	intentSvc      *hmocks.MockIntentSvc
	sweepSvc       *hmocks.MockSweepSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		sessionSvc:     hmocks.NewMockSessionSvc(t),
		reservationSvc: hmocks.NewMockReservationSvc(t),
		intentSvc:      hmocks.NewMockIntentSvc(t),
		sweepSvc:       hmocks.NewMockSweepSvc(t),
	}

	h := NewHandler(m.sessionSvc, m.reservationSvc, m.intentSvc, m.sweepSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/register", h.Register)
		api.POST("/registrations/:id/confirm", h.ConfirmRegistration)
		api.DELETE("/registrations/:id", h.CancelRegistration)
		api.POST("/registrations/:id/guests", h.AddGuests)
		api.DELETE("/registrations/:id/guests", h.RemoveGuests)
		api.PATCH("/registrations/:id/guests", h.RenameGuests)
		api.POST("/sessions/:id/waitlist", h.JoinWaitlist)
		api.POST("/registrations/:id/waitlist/reduce", h.ReduceWaitlist)
		api.POST("/sessions/:id/intents", h.ReserveIntent)
		api.POST("/intents/:id/confirm", h.ConfirmIntent)
		api.POST("/admin/sweep", h.Sweep)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func contactReq() dto.ContactRequest {
	return dto.ContactRequest{Name: "Alice", Email: "alice@example.com"}
}

// --- Sessions ---

func TestHandler_CreateSession_Success(t *testing.T) {
	m, r := setupRouter(t)

	starts := time.Now().Add(48 * time.Hour)
	session := &domain.Session{
		ID:              uuid.New().String(),
		Title:           "Tuesday doubles",
		StartsAt:        starts,
		MaxCapacity:     12,
		RequiresPayment: true,
		PaymentTTL:      30 * time.Minute,
	}
	m.sessionSvc.EXPECT().CreateSession(mock.Anything, mock.Anything).Return(session, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", dto.CreateSessionRequest{
		Title:       "Tuesday doubles",
		StartsAt:    starts.Format(time.RFC3339),
		MaxCapacity: 12,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Tuesday doubles", resp.Title)
	assert.Equal(t, 12, resp.AvailableSpots)
}

func TestHandler_CreateSession_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", dto.CreateSessionRequest{
		Title:       "x",
		StartsAt:    "next tuesday",
		MaxCapacity: 4,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSession_Success(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	details := &domain.SessionDetails{
		Session:         domain.Session{ID: sessionID, Title: "Open play", MaxCapacity: 10, ConfirmedAttendees: 7},
		AvailableSpots:  3,
		WaitlistedUnits: 2,
	}
	m.sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SessionDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.AvailableSpots)
	assert.Equal(t, 2, resp.WaitlistedUnits)
}

func TestHandler_GetSession_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSession_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	m.sessionSvc.EXPECT().GetDetails(mock.Anything, sessionID).Return(nil, domain.ErrSessionNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/sessions/"+sessionID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	reg := &domain.Registration{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Contact:   domain.Contact{Name: "Alice", Email: "alice@example.com"},
		Status:    domain.RegistrationStatusPending,
	}
	m.reservationSvc.EXPECT().Register(mock.Anything, sessionID, mock.Anything).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/register",
		dto.RegisterRequest{Contact: contactReq()})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_Register_SessionFull(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	m.reservationSvc.EXPECT().Register(mock.Anything, sessionID, mock.Anything).
		Return(nil, domain.ErrNoAvailableSpots)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/register",
		dto.RegisterRequest{Contact: contactReq()})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmRegistration_Expired(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.reservationSvc.EXPECT().ConfirmRegistration(mock.Anything, regID).Return(domain.ErrPaymentExpired)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	outcome := &domain.CancelOutcome{
		SessionID: uuid.New().String(),
		Freed:     2,
		Promotion: domain.PromotionReport{Promoted: 1},
	}
	m.reservationSvc.EXPECT().Cancel(mock.Anything, regID).Return(outcome, nil)

	w := doJSON(t, r, http.MethodDelete, "/api/registrations/"+regID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Freed)
	assert.Equal(t, 1, resp.Promoted)
}

// --- Guests ---

func TestHandler_AddGuests_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.reservationSvc.EXPECT().AddGuests(mock.Anything, regID, 4).
		Return(&domain.SplitOutcome{Added: 2, Waitlisted: 2}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/guests",
		dto.AddGuestsRequest{Count: 4})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.SplitOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Added)
	assert.Equal(t, 2, resp.Waitlisted)
}

func TestHandler_RemoveGuests_UnknownGuest(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.reservationSvc.EXPECT().RemoveGuests(mock.Anything, regID, []string{"g1"}).
		Return(nil, domain.ErrGuestNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/registrations/"+regID+"/guests",
		dto.RemoveGuestsRequest{GuestIDs: []string{"g1"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RenameGuests_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	guestID := uuid.New().String()
	m.reservationSvc.EXPECT().RenameGuests(mock.Anything, regID, []domain.GuestRename{{ID: guestID, Name: "Dana"}}).
		Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/registrations/"+regID+"/guests",
		dto.RenameGuestsRequest{Renames: []dto.RenameGuestRequest{{ID: guestID, Name: "Dana"}}})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Waitlist ---

func TestHandler_JoinWaitlist_SpotsStillOpen(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	m.reservationSvc.EXPECT().JoinWaitlist(mock.Anything, sessionID, mock.Anything).
		Return(nil, domain.ErrSpotsAvailable)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/waitlist",
		dto.JoinWaitlistRequest{Contact: contactReq()})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinWaitlist_Success(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	entry := &domain.WaitlistEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      domain.WaitlistKindNewSpot,
		Requested: 1,
	}
	m.reservationSvc.EXPECT().JoinWaitlist(mock.Anything, sessionID, mock.Anything).Return(entry, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/waitlist",
		dto.JoinWaitlistRequest{Contact: contactReq()})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.WaitlistEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new_spot", resp.Kind)
}

func TestHandler_ReduceWaitlist_Success(t *testing.T) {
	m, r := setupRouter(t)

	regID := uuid.New().String()
	m.reservationSvc.EXPECT().ReduceWaitlist(mock.Anything, regID, 2).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/registrations/"+regID+"/waitlist/reduce",
		dto.ReduceWaitlistRequest{Count: 2})

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Intents ---

func TestHandler_ReserveIntent_Success(t *testing.T) {
	m, r := setupRouter(t)

	sessionID := uuid.New().String()
	intent := &domain.PendingIntent{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Kind:       domain.IntentKindNewSpot,
		Requested:  3,
		ToConfirm:  2,
		ToWaitlist: 1,
		ExpiresAt:  time.Now().Add(30 * time.Minute),
	}
	m.intentSvc.EXPECT().ReserveIntent(mock.Anything, mock.Anything).Return(intent, nil)

	contact := contactReq()
	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/intents",
		dto.ReserveIntentRequest{Kind: "new_spot", Count: 3, Contact: &contact})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.IntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ToConfirm)
	assert.Equal(t, 1, resp.ToWaitlist)
}

func TestHandler_ReserveIntent_BadKind(t *testing.T) {
	_, r := setupRouter(t)

	sessionID := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/sessions/"+sessionID+"/intents",
		dto.ReserveIntentRequest{Kind: "teleport", Count: 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmIntent_Success(t *testing.T) {
	m, r := setupRouter(t)

	intentID := uuid.New().String()
	outcome := &domain.IntentOutcome{
		IntentID:       intentID,
		RegistrationID: uuid.New().String(),
		Confirmed:      2,
		Waitlisted:     1,
	}
	m.intentSvc.EXPECT().ConfirmIntent(mock.Anything, intentID).Return(outcome, nil)

	w := doJSON(t, r, http.MethodPost, "/api/intents/"+intentID+"/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.IntentOutcome
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Confirmed)
}

func TestHandler_ConfirmIntent_AlreadyConfirmed(t *testing.T) {
	m, r := setupRouter(t)

	intentID := uuid.New().String()
	m.intentSvc.EXPECT().ConfirmIntent(mock.Anything, intentID).
		Return(nil, domain.ErrIntentAlreadyConfirmed)

	w := doJSON(t, r, http.MethodPost, "/api/intents/"+intentID+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmIntent_Expired(t *testing.T) {
	m, r := setupRouter(t)

	intentID := uuid.New().String()
	m.intentSvc.EXPECT().ConfirmIntent(mock.Anything, intentID).
		Return(nil, domain.ErrIntentExpired)

	w := doJSON(t, r, http.MethodPost, "/api/intents/"+intentID+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Admin ---

func TestHandler_Sweep_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.sweepSvc.EXPECT().Sweep(mock.Anything).
		Return(&domain.SweepReport{IntentsExpired: 1, RegistrationsExpired: 2, Promoted: 2}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/sweep", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.SweepReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.RegistrationsExpired)
}
