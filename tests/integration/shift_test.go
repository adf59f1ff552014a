//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Open with 100.00 float, take 122.00 in cash and 50.00 by card, count
// 222.00 at close: expected cash is float plus cash payments only, so the
// variance is zero.
func TestShiftLifecycle(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())
	room := createRoom(t, op.ID, "201", 172)
	customer := createCustomer(t, op.ID)

	shift, err := svc.shifts.Open(context.Background(), actor, 100)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftOpen, shift.Status)

	booking := checkIn(t, svc, actor, customer.ID, room.ID, 1)
	_, err = svc.ledger.ApplyPayment(context.Background(), actor, booking.ID, service.PaymentInput{
		Amount: 122,
		Method: models.MethodCash,
	})
	require.NoError(t, err)
	_, err = svc.ledger.ApplyPayment(context.Background(), actor, booking.ID, service.PaymentInput{
		Amount: 50,
		Method: models.MethodCard,
	})
	require.NoError(t, err)

	summary, err := svc.shifts.Current(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, 222.0, summary.ExpectedCash)
	assert.Equal(t, 122.0, summary.Totals[models.MethodCash])
	assert.Equal(t, 50.0, summary.Totals[models.MethodCard])
	assert.Equal(t, int64(2), summary.Transactions)

	closed, err := svc.shifts.Close(context.Background(), actor, 222, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftPendingApproval, closed.Status)
	require.NotNil(t, closed.ExpectedCash)
	assert.Equal(t, 222.0, *closed.ExpectedCash)
	assert.Equal(t, 0.0, closed.Variance())
	assert.Equal(t, 122.0, closed.TotalCashPayments)
	assert.Equal(t, 50.0, closed.TotalCardPayments)

	reviewed, err := svc.shifts.Review(context.Background(), operatorActor(op), closed.ID, true, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, op.ID, *reviewed.ReviewedBy)
}

func TestShiftShortDrawerRejected(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())

	_, err := svc.shifts.Open(context.Background(), actor, 100)
	require.NoError(t, err)

	closed, err := svc.shifts.Close(context.Background(), actor, 80, nil)
	require.NoError(t, err)
	assert.Equal(t, -20.0, closed.Variance())

	note := "drawer short"
	reviewed, err := svc.shifts.Review(context.Background(), operatorActor(op), closed.ID, false, &note)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftRejected, reviewed.Status)
}

func TestSecondOpenShiftRejected(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())

	_, err := svc.shifts.Open(context.Background(), actor, 100)
	require.NoError(t, err)

	_, err = svc.shifts.Open(context.Background(), actor, 50)
	assert.ErrorIs(t, err, service.ErrShiftAlreadyOpen)
}

func TestConcurrentShiftOpen(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())

	const workers = 6
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.shifts.Open(context.Background(), actor, 100)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, service.ErrShiftAlreadyOpen)
		}
	}
	assert.Equal(t, 1, succeeded)

	var count int64
	testDB.Model(&models.CashRegisterShift{}).
		Where("cashier_id = ? AND status = ?", actor.UserID, models.ShiftOpen).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestReviewRequiresPendingShift(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())

	shift, err := svc.shifts.Open(context.Background(), actor, 100)
	require.NoError(t, err)

	_, err = svc.shifts.Review(context.Background(), operatorActor(op), shift.ID, true, nil)
	assert.ErrorIs(t, err, service.ErrShiftNotPending)
}

func TestOtherCashierPaymentsNotCounted(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actorA := createCashierActor(t, op, allPerms())
	actorB := createCashierActor(t, op, allPerms())
	roomA := createRoom(t, op.ID, "202", 60)
	roomB := createRoom(t, op.ID, "203", 80)
	customer := createCustomer(t, op.ID)

	_, err := svc.shifts.Open(context.Background(), actorA, 0)
	require.NoError(t, err)

	bookingA := checkIn(t, svc, actorA, customer.ID, roomA.ID, 1)
	_, err = svc.ledger.ApplyPayment(context.Background(), actorA, bookingA.ID, service.PaymentInput{
		Amount: 60,
		Method: models.MethodCash,
	})
	require.NoError(t, err)

	bookingB := checkIn(t, svc, actorB, customer.ID, roomB.ID, 1)
	_, err = svc.ledger.ApplyPayment(context.Background(), actorB, bookingB.ID, service.PaymentInput{
		Amount: 80,
		Method: models.MethodCash,
	})
	require.NoError(t, err)

	summary, err := svc.shifts.Current(context.Background(), actorA)
	require.NoError(t, err)
	assert.Equal(t, 60.0, summary.ExpectedCash)
}

func TestSplitPaymentCountsPerMethod(t *testing.T) {
	cleanTables()
	svc := newServices()
	op := createOperator(t)
	actor := createCashierActor(t, op, allPerms())
	room := createRoom(t, op.ID, "204", 100)
	customer := createCustomer(t, op.ID)

	_, err := svc.shifts.Open(context.Background(), actor, 0)
	require.NoError(t, err)

	booking := checkIn(t, svc, actor, customer.ID, room.ID, 1)
	_, err = svc.ledger.ApplyPayment(context.Background(), actor, booking.ID, service.PaymentInput{
		Amount: 100,
		Method: models.MethodOther,
		Splits: []service.SplitInput{
			{Method: models.MethodCash, Amount: 30},
			{Method: models.MethodCard, Amount: 70},
		},
	})
	require.NoError(t, err)

	summary, err := svc.shifts.Current(context.Background(), actor)
	require.NoError(t, err)
	assert.Equal(t, 30.0, summary.Totals[models.MethodCash])
	assert.Equal(t, 70.0, summary.Totals[models.MethodCard])
	assert.Equal(t, 30.0, summary.ExpectedCash)
}
