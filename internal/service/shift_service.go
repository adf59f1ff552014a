package service

import (
	"context"
	"errors"
	"time"

	"github.com/hotelio/frontdesk/internal/models"
	"github.com/hotelio/frontdesk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrShiftAlreadyOpen = errors.New("cashier already has an open shift")
	ErrNoOpenShift      = errors.New("cashier has no open shift")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrShiftNotPending  = errors.New("shift is not pending approval")
)

// ShiftSummary is the live view of an open shift: payment totals since
// opening and the cash the drawer should hold right now.
type ShiftSummary struct {
	Shift        *models.CashRegisterShift        `json:"shift"`
	Totals       map[models.PaymentMethod]float64 `json:"totals"`
	Transactions int64                            `json:"transactions"`
	ExpectedCash float64                          `json:"expected_cash"`
}

// ShiftService reconciles cash drawers. A cashier has at most one open
// shift; closing computes the expected cash from the payment ledger and
// parks the shift for operator review.
type ShiftService interface {
	Open(ctx context.Context, actor Actor, initialCash float64) (*models.CashRegisterShift, error)
	Current(ctx context.Context, actor Actor) (*ShiftSummary, error)
	Close(ctx context.Context, actor Actor, actualCash float64, notes *string) (*models.CashRegisterShift, error)
	Review(ctx context.Context, actor Actor, shiftID uint, approve bool, notes *string) (*models.CashRegisterShift, error)
	Get(ctx context.Context, actor Actor, shiftID uint) (*models.CashRegisterShift, error)
	List(ctx context.Context, actor Actor, status models.ShiftStatus) ([]models.CashRegisterShift, error)
}

type shiftService struct {
	shifts   repository.ShiftRepository
	ledger   repository.LedgerRepository
	notifier *Notifier
}

func NewShiftService(shifts repository.ShiftRepository, ledger repository.LedgerRepository, notifier *Notifier) ShiftService {
	return &shiftService{shifts: shifts, ledger: ledger, notifier: notifier}
}

// Open starts a shift for the calling cashier. The existence check runs
// inside the transaction and the partial unique index on open shifts backs
// it up, so two racing opens cannot both succeed.
func (s *shiftService) Open(ctx context.Context, actor Actor, initialCash float64) (*models.CashRegisterShift, error) {
	if initialCash < 0 {
		return nil, ErrInvalidAmount
	}
	var shift *models.CashRegisterShift
	err := s.shifts.GetDB().Transaction(func(tx *gorm.DB) error {
		_, err := s.shifts.FindOpenByCashierForUpdate(ctx, tx, actor.UserID)
		if err == nil {
			return ErrShiftAlreadyOpen
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		shift = &models.CashRegisterShift{
			OperatorID:  actor.OperatorID,
			CashierID:   actor.UserID,
			OpeningTime: time.Now(),
			InitialCash: Round2(initialCash),
			Status:      models.ShiftOpen,
		}
		return s.shifts.Create(ctx, tx, shift)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrShiftAlreadyOpen
		}
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) Current(ctx context.Context, actor Actor) (*ShiftSummary, error) {
	shift, err := s.shifts.FindOpenByCashier(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoOpenShift
		}
		return nil, err
	}
	totals, err := s.ledger.PaymentTotalsForCashier(ctx, actor.UserID, shift.OpeningTime, nil)
	if err != nil {
		return nil, err
	}
	return &ShiftSummary{
		Shift:        shift,
		Totals:       totals.ByMethod,
		Transactions: totals.Transactions,
		ExpectedCash: Round2(shift.InitialCash + totals.ByMethod[models.MethodCash]),
	}, nil
}

// Close ends the open shift: expected cash is derived from the ledger
// (initial float plus cash payments in the window), the counted cash is
// recorded next to it and the shift moves to pending approval. The
// variance is visible but never blocks the close.
func (s *shiftService) Close(ctx context.Context, actor Actor, actualCash float64, notes *string) (*models.CashRegisterShift, error) {
	if actualCash < 0 {
		return nil, ErrInvalidAmount
	}
	var shift *models.CashRegisterShift
	err := s.shifts.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		shift, err = s.shifts.FindOpenByCashierForUpdate(ctx, tx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoOpenShift
			}
			return err
		}

		now := time.Now()
		totals, err := s.ledger.PaymentTotalsForCashier(ctx, actor.UserID, shift.OpeningTime, &now)
		if err != nil {
			return err
		}

		expected := Round2(shift.InitialCash + totals.ByMethod[models.MethodCash])
		counted := Round2(actualCash)
		shift.ClosingTime = &now
		shift.ExpectedCash = &expected
		shift.ActualCash = &counted
		shift.TotalCashPayments = totals.ByMethod[models.MethodCash]
		shift.TotalCardPayments = totals.ByMethod[models.MethodCard]
		shift.TotalTransferPayments = totals.ByMethod[models.MethodTransfer]
		shift.TotalCheckPayments = totals.ByMethod[models.MethodCheck]
		shift.TotalOtherPayments = totals.ByMethod[models.MethodOther]
		shift.Status = models.ShiftPendingApproval
		shift.Notes = notes
		return s.shifts.Save(ctx, tx, shift)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.ShiftClosed(ShiftEvent{
		ShiftID:      shift.ID,
		OperatorID:   shift.OperatorID,
		CashierID:    shift.CashierID,
		Status:       string(shift.Status),
		ExpectedCash: *shift.ExpectedCash,
		ActualCash:   *shift.ActualCash,
		Variance:     shift.Variance(),
		Timestamp:    time.Now(),
	})
	return shift, nil
}

// Review lets an operator approve or reject a closed shift.
func (s *shiftService) Review(ctx context.Context, actor Actor, shiftID uint, approve bool, notes *string) (*models.CashRegisterShift, error) {
	if !actor.IsOperator() {
		return nil, ErrPermissionDenied
	}
	var shift *models.CashRegisterShift
	err := s.shifts.GetDB().Transaction(func(tx *gorm.DB) error {
		var err error
		shift, err = s.shifts.FindByIDForUpdate(ctx, tx, actor.OperatorID, shiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			return err
		}
		if shift.Status != models.ShiftPendingApproval {
			return ErrShiftNotPending
		}
		if approve {
			shift.Status = models.ShiftApproved
		} else {
			shift.Status = models.ShiftRejected
		}
		shift.ReviewedBy = &actor.UserID
		shift.ReviewNotes = notes
		return s.shifts.Save(ctx, tx, shift)
	})
	if err != nil {
		return nil, err
	}

	ev := ShiftEvent{
		ShiftID:    shift.ID,
		OperatorID: shift.OperatorID,
		CashierID:  shift.CashierID,
		Status:     string(shift.Status),
		Variance:   shift.Variance(),
		Timestamp:  time.Now(),
	}
	if shift.ExpectedCash != nil {
		ev.ExpectedCash = *shift.ExpectedCash
	}
	if shift.ActualCash != nil {
		ev.ActualCash = *shift.ActualCash
	}
	s.notifier.ShiftReviewed(ev)
	return shift, nil
}

func (s *shiftService) Get(ctx context.Context, actor Actor, shiftID uint) (*models.CashRegisterShift, error) {
	shift, err := s.shifts.FindByID(ctx, actor.OperatorID, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) List(ctx context.Context, actor Actor, status models.ShiftStatus) ([]models.CashRegisterShift, error) {
	return s.shifts.ListByOperator(ctx, actor.OperatorID, status)
}
