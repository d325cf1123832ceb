package service

import (
	"context"

	"github.com/Tristano1/friend-library-system/models"
)

// IdentityService registers and authenticates library members and resolves
// session tokens back to them.
type IdentityService interface {
	// Register creates a user and opens a session for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error)

	// Authenticate verifies credentials and opens a session.
	Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error)

	// ResolveSession returns the user bound to token or ErrUnauthenticated.
	ResolveSession(ctx context.Context, token string) (models.User, error)

	// UpdateDefaultLoanLength changes the default loan length of user.
	UpdateDefaultLoanLength(ctx context.Context, user models.User, update models.LoanLengthUpdate) (models.User, error)
}

// CatalogService manages the items members lend out.
type CatalogService interface {
	// AddItem stores a new item owned by owner.
	AddItem(ctx context.Context, owner *models.User, item models.NewItem) (models.Item, error)

	// ListItems returns the items of owner in insertion order.
	ListItems(ctx context.Context, owner *models.User) ([]models.Item, error)
}
