package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUserInactive  = errors.New("user account is disabled")
	ErrDuplicateUser = errors.New("username or email already exists")
)

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID     uint        `json:"user_id"`
	OperatorID uint        `json:"operator_id"`
	Role       models.Role `json:"role"`
	jwt.RegisteredClaims
}

type RegisterOperatorInput struct {
	Email    string
	Password string
	FullName string
	Phone    *string
}

type CashierInput struct {
	Username string
	Password string
	FullName string
	Phone    *string
	Perms    models.Permission
}

type AuthService interface {
	RegisterOperator(ctx context.Context, in RegisterOperatorInput) (*models.User, error)
	LoginOperator(ctx context.Context, email, password string) (string, *models.User, error)
	LoginCashier(ctx context.Context, operatorEmail, username, password string) (string, *models.User, error)
	CreateCashier(ctx context.Context, actor Actor, in CashierInput) (*models.User, error)
	ListCashiers(ctx context.Context, actor Actor) ([]models.User, error)
	UpdateCashierPermissions(ctx context.Context, actor Actor, cashierID uint, perms models.Permission) (*models.Permission, error)
	SetCashierActive(ctx context.Context, actor Actor, cashierID uint, active bool) error
	ActorFromClaims(ctx context.Context, claims *Claims) (Actor, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	users     repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users repository.UserRepository, jwtSecret []byte, tokenTTL time.Duration) AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &authService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *authService) RegisterOperator(ctx context.Context, in RegisterOperatorInput) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user := &models.User{
		Username:     email,
		Email:        &email,
		PasswordHash: string(hash),
		Role:         models.RoleOperator,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsActive:     true,
	}
	if err := s.users.CreateOperator(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	// Operators are their own tenant root.
	user.OperatorID = user.ID
	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) LoginOperator(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindOperatorByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	return s.login(user, password)
}

// LoginCashier resolves the tenant by the operator's email, then the
// cashier by username within that tenant.
func (s *authService) LoginCashier(ctx context.Context, operatorEmail, username, password string) (string, *models.User, error) {
	operator, err := s.users.FindOperatorByEmail(ctx, strings.ToLower(strings.TrimSpace(operatorEmail)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	user, err := s.users.FindCashierByUsername(ctx, operator.ID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	return s.login(user, password)
}

func (s *authService) login(user *models.User, password string) (string, *models.User, error) {
	if !user.IsActive {
		return "", nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	now := time.Now()
	claims := &Claims{
		UserID:     user.ID,
		OperatorID: user.OperatorID,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// ActorFromClaims rebuilds the caller with fresh permissions, so revoking
// a capability takes effect on the next request, not the next login.
func (s *authService) ActorFromClaims(ctx context.Context, claims *Claims) (Actor, error) {
	actor := Actor{
		UserID:     claims.UserID,
		OperatorID: claims.OperatorID,
		Role:       claims.Role,
	}
	if actor.Role == models.RoleOperator {
		return actor, nil
	}
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Actor{}, ErrUserNotFound
		}
		return Actor{}, err
	}
	if !user.IsActive {
		return Actor{}, ErrUserInactive
	}
	perms, err := s.users.PermissionsByUserID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Actor{}, err
	}
	actor.Perms = perms
	return actor, nil
}

func (s *authService) CreateCashier(ctx context.Context, actor Actor, in CashierInput) (*models.User, error) {
	if !actor.IsOperator() {
		return nil, ErrPermissionDenied
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		OperatorID:   actor.OperatorID,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Role:         models.RoleCashier,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsActive:     true,
	}
	perms := in.Perms
	if err := s.users.CreateCashier(ctx, user, &perms); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) ListCashiers(ctx context.Context, actor Actor) ([]models.User, error) {
	if !actor.IsOperator() {
		return nil, ErrPermissionDenied
	}
	return s.users.ListCashiers(ctx, actor.OperatorID)
}

func (s *authService) UpdateCashierPermissions(ctx context.Context, actor Actor, cashierID uint, perms models.Permission) (*models.Permission, error) {
	if !actor.IsOperator() {
		return nil, ErrPermissionDenied
	}
	cashier, err := s.tenantCashier(ctx, actor.OperatorID, cashierID)
	if err != nil {
		return nil, err
	}
	current, err := s.users.PermissionsByUserID(ctx, cashier.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		current = &models.Permission{UserID: cashier.ID}
	}
	perms.ID = current.ID
	perms.UserID = cashier.ID
	if err := s.users.SavePermissions(ctx, &perms); err != nil {
		return nil, err
	}
	return &perms, nil
}

func (s *authService) SetCashierActive(ctx context.Context, actor Actor, cashierID uint, active bool) error {
	if !actor.IsOperator() {
		return ErrPermissionDenied
	}
	cashier, err := s.tenantCashier(ctx, actor.OperatorID, cashierID)
	if err != nil {
		return err
	}
	cashier.IsActive = active
	return s.users.SaveUser(ctx, cashier)
}

func (s *authService) tenantCashier(ctx context.Context, operatorID, cashierID uint) (*models.User, error) {
	cashier, err := s.users.FindByID(ctx, cashierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if cashier.OperatorID != operatorID || cashier.Role != models.RoleCashier {
		return nil, ErrUserNotFound
	}
	return cashier, nil
}
