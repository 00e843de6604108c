package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// COMMISSION EMPLOYEE
// =============================================================================

// CommissionEmployee is paid a percentage of gross sales.
// Commission is a whole percentage in [0, 100].
type CommissionEmployee struct {
	Person
	grossSales float64
	commission int
}

var _ Employee = (*CommissionEmployee)(nil)

var hundred = decimal.NewFromInt(100)

// NewCommissionEmployee fails with ErrInvalidArgument when grossSales is
// negative or commission is outside [0, 100].
func NewCommissionEmployee(firstName, lastName string, id int, grossSales float64, commission int) (*CommissionEmployee, error) {
	e := &CommissionEmployee{Person: NewPerson(firstName, lastName, id)}
	if err := e.SetGrossSales(grossSales); err != nil {
		return nil, err
	}
	if err := e.SetCommission(commission); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultCommissionEmployee returns the placeholder identity with no sales and no commission.
func DefaultCommissionEmployee() *CommissionEmployee {
	return &CommissionEmployee{Person: DefaultPerson()}
}

// Kind returns KindCommission.
func (e *CommissionEmployee) Kind() Kind { return KindCommission }

// GrossSales returns the sales total for the period.
func (e *CommissionEmployee) GrossSales() float64 { return e.grossSales }

// SetGrossSales fails with ErrInvalidArgument when grossSales is negative or not finite.
func (e *CommissionEmployee) SetGrossSales(grossSales float64) error {
	if err := nonNegative("grossSales", grossSales); err != nil {
		return err
	}
	e.grossSales = grossSales
	return nil
}

// Commission returns the commission percentage.
func (e *CommissionEmployee) Commission() int { return e.commission }

// SetCommission fails with ErrInvalidArgument outside [0, 100].
func (e *CommissionEmployee) SetCommission(commission int) error {
	if err := percentage("commission", commission); err != nil {
		return err
	}
	e.commission = commission
	return nil
}

// Earnings returns grossSales * commission / 100.
func (e *CommissionEmployee) Earnings() decimal.Decimal {
	return decimal.NewFromFloat(e.grossSales).
		Mul(decimal.NewFromInt(int64(e.commission))).
		Div(hundred)
}

// String renders every field under the CommissionEmployee label.
func (e *CommissionEmployee) String() string {
	return e.describe(e.Kind(), e.salesFields())
}

func (e *CommissionEmployee) salesFields() string {
	return fmt.Sprintf(", grossSales=%s, commission=%d", formatNumber(e.grossSales), e.commission)
}

// =============================================================================
// BASE PLUS COMMISSION EMPLOYEE
// =============================================================================

// BasePlusCommissionEmployee is a CommissionEmployee with a fixed base salary
// added on top of the commission earnings.
type BasePlusCommissionEmployee struct {
	CommissionEmployee
	baseSalary float64
}

var _ Employee = (*BasePlusCommissionEmployee)(nil)

// NewBasePlusCommissionEmployee applies the CommissionEmployee rules to
// grossSales and commission and fails with ErrInvalidArgument when
// baseSalary is negative.
func NewBasePlusCommissionEmployee(firstName, lastName string, id int, grossSales float64, commission int, baseSalary float64) (*BasePlusCommissionEmployee, error) {
	ce, err := NewCommissionEmployee(firstName, lastName, id, grossSales, commission)
	if err != nil {
		return nil, err
	}
	e := &BasePlusCommissionEmployee{CommissionEmployee: *ce}
	if err := e.SetBaseSalary(baseSalary); err != nil {
		return nil, err
	}
	return e, nil
}

// DefaultBasePlusCommissionEmployee returns the placeholder identity with all amounts zero.
func DefaultBasePlusCommissionEmployee() *BasePlusCommissionEmployee {
	return &BasePlusCommissionEmployee{CommissionEmployee: *DefaultCommissionEmployee()}
}

// Kind returns KindBasePlusCommission.
func (e *BasePlusCommissionEmployee) Kind() Kind { return KindBasePlusCommission }

// BaseSalary returns the fixed base salary.
func (e *BasePlusCommissionEmployee) BaseSalary() float64 { return e.baseSalary }

// SetBaseSalary fails with ErrInvalidArgument when baseSalary is negative or not finite.
func (e *BasePlusCommissionEmployee) SetBaseSalary(baseSalary float64) error {
	if err := nonNegative("baseSalary", baseSalary); err != nil {
		return err
	}
	e.baseSalary = baseSalary
	return nil
}

// Earnings returns the commission earnings plus baseSalary.
func (e *BasePlusCommissionEmployee) Earnings() decimal.Decimal {
	return e.CommissionEmployee.Earnings().Add(decimal.NewFromFloat(e.baseSalary))
}

// String renders every field under the BasePlusCommissionEmployee label.
func (e *BasePlusCommissionEmployee) String() string {
	return e.describe(e.Kind(), e.salesFields()+", baseSalary="+formatNumber(e.baseSalary))
}
