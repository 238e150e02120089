package kernel

import (
	"fmt"

	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the marketplace currency, kept as a
// decimal to avoid float rounding in cart and order totals.
//
// The zero value is a valid amount of zero.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat converts a transport level number.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "800.00".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount for transport; precision loss is acceptable there.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsEqual compares amounts numerically, so 150 equals 150.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
