package service

import (
	"context"
	"errors"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrDiscountExceedsCap = errors.New("discount exceeds cashier limit")
	ErrStepUpRequired     = errors.New("supervisor authorization required")
	ErrStepUpInvalid      = errors.New("authorization token is invalid or expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Step-up scopes bind an authorization token to the operation it was
// issued for, so a token minted for a discount cannot approve a refund.
const (
	ScopeDiscount = "discount"
	ScopeRefund   = "refund"
)

// Fraction of the booking total above which a discount needs supervisor
// approval even when it is within the cashier's own cap.
const stepUpDiscountFraction = 0.10

// Actor is the authenticated caller as seen by the services. Operators
// carry no permission row and bypass per-capability checks.
type Actor struct {
	UserID     uint
	OperatorID uint
	Role       models.Role
	Perms      *models.Permission
}

func (a Actor) IsOperator() bool {
	return a.Role == models.RoleOperator
}

// AuthorizationGate evaluates capability and discount rules. It is pure;
// persistence and token handling live in StepUpService.
type AuthorizationGate struct{}

func NewAuthorizationGate() *AuthorizationGate {
	return &AuthorizationGate{}
}

func (g *AuthorizationGate) allow(actor Actor, ok func(*models.Permission) bool) error {
	if actor.IsOperator() {
		return nil
	}
	if actor.Perms == nil || !ok(actor.Perms) {
		return ErrPermissionDenied
	}
	return nil
}

func (g *AuthorizationGate) CanCreateBooking(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanCreateBookings })
}

func (g *AuthorizationGate) CanModifyBooking(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanModifyBookings })
}

func (g *AuthorizationGate) CanCancelBooking(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanCancelBookings })
}

func (g *AuthorizationGate) CanApplyDiscount(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanApplyDiscounts })
}

func (g *AuthorizationGate) CanProcessRefund(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanProcessRefunds })
}

func (g *AuthorizationGate) CanManageInventory(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanManageInventory })
}

func (g *AuthorizationGate) CanViewReports(actor Actor) error {
	return g.allow(actor, func(p *models.Permission) bool { return p.CanViewReports })
}

// CheckDiscount applies both discount rules and always evaluates both,
// so the caller learns every violation regardless of ordering:
//   - a percentage discount may not exceed the cashier's cap;
//   - a discount amount above 10% of the booking total needs supervisor
//     approval, for operators too.
// It returns whether step-up approval is required.
func (g *AuthorizationGate) CheckDiscount(actor Actor, discountType models.DiscountType, value, amount, bookingTotal float64) (stepUpRequired bool, err error) {
	stepUpRequired = bookingTotal > 0 && amount > bookingTotal*stepUpDiscountFraction

	if err := g.CanApplyDiscount(actor); err != nil {
		return stepUpRequired, err
	}
	if !actor.IsOperator() && discountType == models.DiscountPercentage &&
		value > actor.Perms.MaxDiscountPercentage {
		return stepUpRequired, ErrDiscountExceedsCap
	}
	return stepUpRequired, nil
}

// StepUpToken is a single-use approval minted after a supervisor proved
// their password. It is consumed exactly once.
type StepUpToken struct {
	AuthorizedBy uint   `json:"authorized_by"`
	OperatorID   uint   `json:"operator_id"`
	Scope        string `json:"scope"`
}

// StepUpTokenStore issues and atomically consumes single-use tokens.
type StepUpTokenStore interface {
	Issue(ctx context.Context, token StepUpToken, ttl time.Duration) (string, error)
	Consume(ctx context.Context, key string) (*StepUpToken, error)
}

// StepUpService verifies supervisor credentials and manages approval
// tokens on top of the store.
type StepUpService interface {
	Authorize(ctx context.Context, operatorID uint, password, scope string) (string, error)
	Consume(ctx context.Context, operatorID uint, key, scope string) (uint, error)
}

type stepUpService struct {
	users    repository.UserRepository
	store    StepUpTokenStore
	tokenTTL time.Duration
}

func NewStepUpService(users repository.UserRepository, store StepUpTokenStore, tokenTTL time.Duration) StepUpService {
	if tokenTTL <= 0 {
		tokenTTL = 2 * time.Minute
	}
	return &stepUpService{users: users, store: store, tokenTTL: tokenTTL}
}

// Authorize checks the operator account password and mints a short-lived
// single-use token for the given scope.
func (s *stepUpService) Authorize(ctx context.Context, operatorID uint, password, scope string) (string, error) {
	if scope != ScopeDiscount && scope != ScopeRefund {
		return "", ErrStepUpInvalid
	}
	supervisor, err := s.users.FindByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if supervisor.Role != models.RoleOperator || !supervisor.IsActive {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(supervisor.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.store.Issue(ctx, StepUpToken{
		AuthorizedBy: supervisor.ID,
		OperatorID:   operatorID,
		Scope:        scope,
	}, s.tokenTTL)
}

// Consume redeems a token for the expected scope and tenant, returning the
// approving user's ID. A consumed token cannot be redeemed again.
func (s *stepUpService) Consume(ctx context.Context, operatorID uint, key, scope string) (uint, error) {
	if key == "" {
		return 0, ErrStepUpRequired
	}
	token, err := s.store.Consume(ctx, key)
	if err != nil {
		return 0, err
	}
	if token == nil || token.Scope != scope || token.OperatorID != operatorID {
		return 0, ErrStepUpInvalid
	}
	return token.AuthorizedBy, nil
}
