package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Tristano1/friend-library-system/internal/config"
	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/store"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/internal/validators"
	"github.com/Tristano1/friend-library-system/models"
)

// identityService is the concrete implementation of IdentityService.
// It handles user registration, credential verification and the session
// token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type identityService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	sessionIssuer string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// hashCost is the bcrypt work factor for new password hashes.
	hashCost int

	// defaultLoanLength is assigned to every newly registered user.
	defaultLoanLength int

	// dummyHash is compared against when an unknown email logs in, so both
	// failure paths spend the same bcrypt time.
	dummyHash string

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewIdentityService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) (IdentityService, error) {
	hashCost := cfg.PasswordHashCost
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}

	dummyHash, err := utils.HashPassword("friend-library-dummy-password", hashCost)
	if err != nil {
		return nil, err
	}

	defaultLoanLength := cfg.DefaultLoanLengthDays
	if defaultLoanLength < 1 {
		defaultLoanLength = models.DefaultLoanLengthDays
	}

	return &identityService{
		userRepository:    userRepository,
		validator:         validator,
		sessionSignKey:    cfg.SessionSignKey,
		sessionIssuer:     cfg.SessionIssuer,
		sessionDuration:   cfg.SessionDuration,
		hashCost:          hashCost,
		defaultLoanLength: defaultLoanLength,
		dummyHash:         dummyHash,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}, nil
}

// Register creates a new user account and opens a session for it.
//
// The email is normalized before validation and storage. The password is
// hashed with bcrypt and the user is inserted in a single transaction, so a
// failure leaves nothing behind.
//
// Returns the persisted user and its session or:
//   - ErrValidation for missing or malformed input;
//   - ErrDuplicateEmail when the email is already registered, including
//     when a concurrent registration wins the race.
func (s *identityService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	req.Email = models.NormalizeEmail(req.Email)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration rejected by validation")
		return models.User{}, models.Session{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := utils.HashPassword(req.Password, s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, models.Session{}, fmt.Errorf("%w: password is too long", ErrValidation)
	}
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, models.Session{}, err
	}

	user := models.NewUser(req.Email, hash, req.DisplayName, s.defaultLoanLength, s.now())

	created, err := s.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("email", user.Email).Msg("email already registered")
		return models.User{}, models.Session{}, ErrDuplicateEmail
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := s.openSession(created)
	if err != nil {
		log.Err(err).Str("guid", created.GUID).Msg("error opening session for registered user")
		return models.User{}, models.Session{}, err
	}

	log.Info().Str("guid", created.GUID).Msg("user registered")
	return created, session, nil
}

// Authenticate checks the credentials and opens a session bound to the
// user's GUID.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
// For an unknown email the password is still compared against a dummy hash
// so the two cases take comparable time.
func (s *identityService) Authenticate(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = utils.CheckPassword(s.dummyHash, creds.Password)
		log.Info().Msg("login failed")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := utils.CheckPassword(user.PasswordHash, creds.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("guid", user.GUID).Msg("error comparing password hash")
		}
		log.Info().Msg("login failed")
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := s.openSession(user)
	if err != nil {
		log.Err(err).Str("guid", user.GUID).Msg("error opening session")
		return models.Session{}, err
	}

	log.Info().Str("guid", user.GUID).Msg("user logged in")
	return session, nil
}

// ResolveSession validates token and returns the user it is bound to.
//
// Any validation failure (empty, malformed, expired, wrong signature or
// issuer) and a GUID that no longer maps to a user are all reported as
// ErrUnauthenticated.
func (s *identityService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseSessionToken(token, s.sessionSignKey, s.sessionIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("session token rejected")
		return models.User{}, ErrUnauthenticated
	}

	guid, err := claims.GetUserGUID()
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	user, err := s.userRepository.FindUserByGUID(ctx, guid)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("guid", guid).Msg("session bound to an unknown user")
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Str("guid", guid).Msg("user search by guid failed")
		return models.User{}, fmt.Errorf("user search by guid failed: %w", err)
	}

	return user, nil
}

// UpdateDefaultLoanLength changes the default loan length of user. Items
// without their own override follow the new value from the next read on.
func (s *identityService) UpdateDefaultLoanLength(ctx context.Context, user models.User, update models.LoanLengthUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID == 0 {
		return models.User{}, ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := s.userRepository.UpdateDefaultLoanLength(ctx, user.UserID, update.DefaultLoanLengthDays, s.now())
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		log.Err(err).Str("guid", user.GUID).Msg("error updating default loan length")
		return models.User{}, fmt.Errorf("error updating default loan length: %w", err)
	}

	log.Info().Str("guid", user.GUID).Int("days", updated.DefaultLoanLengthDays).Msg("default loan length updated")
	return updated, nil
}

func (s *identityService) openSession(user models.User) (models.Session, error) {
	session, err := utils.GenerateSessionToken(s.sessionIssuer, user.GUID, s.sessionDuration, s.sessionSignKey, s.now())
	if err != nil {
		return models.Session{}, fmt.Errorf("error generating session token: %w", err)
	}
	return session, nil
}
