package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HourlyEmployee is paid hours * wage.
type HourlyEmployee struct {
	Person
	hours int
	wage  float64
}

// Compile-time check that HourlyEmployee implements Employee
var _ Employee = (*HourlyEmployee)(nil)

// NewHourlyEmployee fails with ErrInvalidArgument when hours or wage is
// negative, or wage is not finite.
func NewHourlyEmployee(firstName, lastName string, id, hours int, wage float64) (*HourlyEmployee, error) {
	e := &HourlyEmployee{Person: NewPerson(firstName, lastName, id)}
	if err := e.SetHours(hours); err != nil {
		return nil, err
	}
	if err := e.SetWage(wage); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultHourlyEmployee returns the placeholder identity with no hours and no wage.
func DefaultHourlyEmployee() *HourlyEmployee {
	return &HourlyEmployee{Person: DefaultPerson()}
}

// Kind returns KindHourly.
func (e *HourlyEmployee) Kind() Kind { return KindHourly }

// Hours returns the hours worked in the period.
func (e *HourlyEmployee) Hours() int { return e.hours }

// SetHours fails with ErrInvalidArgument when hours is negative.
func (e *HourlyEmployee) SetHours(hours int) error {
	if err := nonNegativeInt("hours", hours); err != nil {
		return err
	}
	e.hours = hours
	return nil
}

// Wage returns the hourly wage.
func (e *HourlyEmployee) Wage() float64 { return e.wage }

// SetWage fails with ErrInvalidArgument when wage is negative or not finite.
func (e *HourlyEmployee) SetWage(wage float64) error {
	if err := nonNegative("wage", wage); err != nil {
		return err
	}
	e.wage = wage
	return nil
}

// Earnings returns hours * wage.
func (e *HourlyEmployee) Earnings() decimal.Decimal {
	return decimal.NewFromFloat(e.wage).Mul(decimal.NewFromInt(int64(e.hours)))
}

// String renders every field under the HourlyEmployee label.
func (e *HourlyEmployee) String() string {
	return e.describe(e.Kind(), fmt.Sprintf(", hours=%d, wage=%s", e.hours, formatNumber(e.wage)))
}
