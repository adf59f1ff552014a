//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

var tables = []string{
	"refunds", "discounts", "payment_splits", "payments", "charges",
	"bookings", "cash_register_shifts", "products", "customers",
	"rooms", "permissions", "users",
}

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "frontdesk_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	for _, table := range tables {
		testDB.Exec("DROP TABLE IF EXISTS " + table)
	}

	if err := testDB.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Room{},
		&models.Customer{},
		&models.Booking{},
		&models.Charge{},
		&models.Payment{},
		&models.PaymentSplit{},
		&models.Discount{},
		&models.Refund{},
		&models.Product{},
		&models.CashRegisterShift{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_shift_single_open
		ON cash_register_shifts (cashier_id)
		WHERE status = 'open'
	`)

	code := m.Run()

	for _, table := range tables {
		testDB.Exec("DROP TABLE IF EXISTS " + table)
	}

	os.Exit(code)
}

func cleanTables() {
	for _, table := range tables {
		testDB.Exec("DELETE FROM " + table)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// --- In-memory step-up token store ---

type memTokenStore struct {
	mu     sync.Mutex
	tokens map[string]service.StepUpToken
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: map[string]service.StepUpToken{}}
}

func (m *memTokenStore) Issue(ctx context.Context, token service.StepUpToken, ttl time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := uuid.NewString()
	m.tokens[key] = token
	return key, nil
}

func (m *memTokenStore) Consume(ctx context.Context, key string) (*service.StepUpToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[key]
	if !ok {
		return nil, service.ErrStepUpInvalid
	}
	delete(m.tokens, key)
	return &token, nil
}

// --- Service wiring against the test database ---

type testServices struct {
	ledger    service.LedgerService
	shifts    service.ShiftService
	rooms     service.RoomService
	stepUp    service.StepUpService
	customers repository.CustomerRepository
}

func newServices() *testServices {
	userRepo := repository.NewUserRepository(testDB)
	roomRepo := repository.NewRoomRepository(testDB)
	customerRepo := repository.NewCustomerRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	bookingRepo := repository.NewBookingRepository(testDB)
	ledgerRepo := repository.NewLedgerRepository(testDB)
	shiftRepo := repository.NewShiftRepository(testDB)

	pricing := service.NewPricingCalculator()
	gate := service.NewAuthorizationGate()
	stepUp := service.NewStepUpService(userRepo, newMemTokenStore(), time.Minute)
	notifier := service.NewNotifier(nil, nil)

	return &testServices{
		ledger:    service.NewLedgerService(bookingRepo, roomRepo, customerRepo, productRepo, ledgerRepo, pricing, gate, stepUp, notifier),
		shifts:    service.NewShiftService(shiftRepo, ledgerRepo, notifier),
		rooms:     service.NewRoomService(roomRepo),
		stepUp:    stepUp,
		customers: customerRepo,
	}
}

const operatorPassword = "super-secret"

func createOperator(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(operatorPassword), bcrypt.MinCost)
	require.NoError(t, err)
	email := fmt.Sprintf("owner-%s@hotel.test", uuid.NewString()[:8])
	op := &models.User{
		Username:     email,
		Email:        &email,
		PasswordHash: string(hash),
		Role:         models.RoleOperator,
		FullName:     "Hotel Owner",
		IsActive:     true,
	}
	require.NoError(t, testDB.Create(op).Error)
	op.OperatorID = op.ID
	require.NoError(t, testDB.Save(op).Error)
	return op
}

func operatorActor(op *models.User) service.Actor {
	return service.Actor{UserID: op.ID, OperatorID: op.ID, Role: models.RoleOperator}
}

func createCashierActor(t *testing.T, op *models.User, perms models.Permission) service.Actor {
	t.Helper()
	cashier := &models.User{
		OperatorID:   op.ID,
		Username:     fmt.Sprintf("cashier-%s", uuid.NewString()[:8]),
		PasswordHash: "x",
		Role:         models.RoleCashier,
		FullName:     "Front Desk",
		IsActive:     true,
	}
	require.NoError(t, testDB.Create(cashier).Error)
	perms.UserID = cashier.ID
	require.NoError(t, testDB.Create(&perms).Error)
	return service.Actor{
		UserID:     cashier.ID,
		OperatorID: op.ID,
		Role:       models.RoleCashier,
		Perms:      &perms,
	}
}

func createRoom(t *testing.T, operatorID uint, number string, basePrice float64) *models.Room {
	t.Helper()
	room := &models.Room{
		OperatorID:   operatorID,
		Number:       number,
		RoomType:     "double",
		BasePrice:    basePrice,
		MaxOccupancy: 2,
		Status:       models.RoomAvailable,
	}
	require.NoError(t, testDB.Create(room).Error)
	return room
}

func createCustomer(t *testing.T, operatorID uint) *models.Customer {
	t.Helper()
	doc := uuid.NewString()[:8]
	customer := &models.Customer{
		OperatorID:     operatorID,
		FullName:       "Ana Flores",
		DocumentType:   "CI",
		DocumentNumber: &doc,
		Country:        "Bolivia",
	}
	require.NoError(t, testDB.Create(customer).Error)
	return customer
}

func createProduct(t *testing.T, operatorID uint, name string, price, taxRate float64, stock int, track bool) *models.Product {
	t.Helper()
	product := &models.Product{
		OperatorID:     operatorID,
		Category:       "minibar",
		Name:           name,
		Price:          price,
		TaxRate:        taxRate,
		StockQuantity:  stock,
		TrackInventory: track,
		IsActive:       true,
	}
	require.NoError(t, testDB.Create(product).Error)
	return product
}

func checkIn(t *testing.T, svc *testServices, actor service.Actor, customerID, roomID uint, nights int) *models.Booking {
	t.Helper()
	booking, err := svc.ledger.CreateBooking(context.Background(), actor, service.CreateBookingInput{
		CustomerID:       customerID,
		RoomID:           roomID,
		StayType:         models.StayDaily,
		NumberOfNights:   nights,
		NumberOfGuests:   1,
		CheckIn:          time.Now(),
		ExpectedCheckout: time.Now().Add(time.Duration(nights) * 24 * time.Hour),
	})
	require.NoError(t, err)
	return booking
}

func allPerms() models.Permission {
	return models.Permission{
		CanCreateBookings:     true,
		CanModifyBookings:     true,
		CanCancelBookings:     true,
		CanApplyDiscounts:     true,
		MaxDiscountPercentage: 100,
		CanProcessRefunds:     true,
		CanViewReports:        true,
		CanManageInventory:    true,
	}
}
