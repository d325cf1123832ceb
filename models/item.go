package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item is something a user owns and lends to friends.
type Item struct {
	// ItemID is the internal numeric identifier assigned by the store.
	ItemID int64 `json:"-"`

	// GUID is the external identifier, generated before persistence.
	GUID string `json:"guid"`

	Name string `json:"name"`

	// OwnerID references the owning user. Ownership never changes.
	OwnerID int64 `json:"-"`

	// OwnerGUID is the external identifier of the owner.
	OwnerGUID string `json:"owner_guid"`

	// LoanLengthDays is the optional per-item override. A nil value means the
	// item follows its owner's current default.
	LoanLengthDays *int `json:"loan_length_days,omitempty"`

	// EffectiveLoanLengthDays is computed at read time and is never stored.
	EffectiveLoanLengthDays int `json:"effective_loan_length_days"`

	CreatedAt time.Time `json:"created_at"`
}

// NewOwnedItem constructs an Item owned by owner. The GUID is assigned here.
func NewOwnedItem(owner User, name string, loanLengthDays *int, now time.Time) Item {
	var override *int
	if loanLengthDays != nil {
		days := *loanLengthDays
		override = &days
	}

	return Item{
		GUID:           uuid.NewString(),
		Name:           strings.TrimSpace(name),
		OwnerID:        owner.UserID,
		OwnerGUID:      owner.GUID,
		LoanLengthDays: override,
		CreatedAt:      now,
	}
}

// EffectiveLoanLength resolves the loan duration of the item: the override
// when present, otherwise the owner's default.
func (i Item) EffectiveLoanLength(ownerDefault int) int {
	if i.LoanLengthDays != nil {
		return *i.LoanLengthDays
	}
	return ownerDefault
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// NewItem carries the add-item form.
type NewItem struct {
	Name           string `json:"name" validate:"required,notblank,max=200"`
	LoanLengthDays *int   `json:"loan_length_days,omitempty" validate:"omitempty,min=1,max=3650"`
}

// ItemList is the response body of the list-items endpoint.
type ItemList struct {
	Items  []Item `json:"items"`
	Length int    `json:"length"`
}
