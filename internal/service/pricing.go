package service

import (
	"errors"
	"math"

	"github.com/hotelio/frontdesk/internal/models"
)

var (
	ErrInvalidStayType = errors.New("invalid stay type")
	ErrInvalidNights   = errors.New("number of nights must be at least 1")
)

// PricingCalculator holds the stay and line pricing rules. It is pure and
// shared by the ledger engine and the handlers that preview totals.
type PricingCalculator struct{}

func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// StayPrice resolves the nightly (or block) rate for a room and stay type.
// Short stays fall back to the base price when the room has no dedicated
// short-stay rate configured.
func (p *PricingCalculator) StayPrice(room *models.Room, stayType models.StayType) (float64, error) {
	switch stayType {
	case models.StayDaily:
		return room.BasePrice, nil
	case models.Stay3Hours:
		if room.ShortStay3hPrice != nil {
			return *room.ShortStay3hPrice, nil
		}
		return room.BasePrice, nil
	case models.Stay6Hours:
		if room.ShortStay6hPrice != nil {
			return *room.ShortStay6hPrice, nil
		}
		return room.BasePrice, nil
	default:
		return 0, ErrInvalidStayType
	}
}

// StayNights normalizes the billable night count. Hourly stays always bill
// a single block regardless of the requested count.
func (p *PricingCalculator) StayNights(stayType models.StayType, nights int) (int, error) {
	switch stayType {
	case models.Stay3Hours, models.Stay6Hours:
		return 1, nil
	case models.StayDaily:
		if nights < 1 {
			return 0, ErrInvalidNights
		}
		return nights, nil
	default:
		return 0, ErrInvalidStayType
	}
}

// StayTotal computes the initial booking total: rate times nights plus any
// additional income agreed at check-in.
func (p *PricingCalculator) StayTotal(rate float64, nights int, additionalIncome float64) float64 {
	return Round2(rate*float64(nights) + additionalIncome)
}

// ChargeAmounts computes the tax and line total for a POS charge.
// Tax is applied per unit: rate percent of unit price, times quantity.
func (p *PricingCalculator) ChargeAmounts(unitPrice, taxRate float64, quantity int) (tax, total float64) {
	subtotal := unitPrice * float64(quantity)
	tax = Round2(taxRate * subtotal / 100)
	total = Round2(subtotal + tax)
	return tax, total
}

// DiscountAmount resolves a discount request against the booking total.
func (p *PricingCalculator) DiscountAmount(discountType models.DiscountType, value, bookingTotal float64) float64 {
	if discountType == models.DiscountPercentage {
		return Round2(value * bookingTotal / 100)
	}
	return Round2(value)
}

// Round2 rounds monetary amounts to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
