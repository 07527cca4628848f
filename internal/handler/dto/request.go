package dto

type ContactRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateSessionRequest struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	StartsAt          string `json:"starts_at" binding:"required"`
	MaxCapacity       int    `json:"max_capacity" binding:"required,gt=0"`
	PaymentTTLMinutes int    `json:"payment_ttl_minutes"`
	RequiresPayment   *bool  `json:"requires_payment"`
}

type RegisterRequest struct {
	Contact ContactRequest `json:"contact" binding:"required"`
}

type JoinWaitlistRequest struct {
	Contact ContactRequest `json:"contact" binding:"required"`
}

type AddGuestsRequest struct {
	Count int `json:"count" binding:"required"`
}

type RemoveGuestsRequest struct {
	GuestIDs []string `json:"guest_ids" binding:"required"`
}

type RenameGuestRequest struct {
	ID   string `json:"id" binding:"required,uuid"`
	Name string `json:"name" binding:"required"`
}

type RenameGuestsRequest struct {
	Renames []RenameGuestRequest `json:"renames" binding:"required"`
}

type ReduceWaitlistRequest struct {
	Count int `json:"count" binding:"required"`
}

type ReserveIntentRequest struct {
	Kind           string          `json:"kind" binding:"required,oneof=new_spot add_guests"`
	Count          int             `json:"count" binding:"required"`
	RegistrationID string          `json:"registration_id"`
	Contact        *ContactRequest `json:"contact"`
}
