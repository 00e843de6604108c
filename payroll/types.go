/*
Package payroll models employees and how much each one earns.

PURPOSE:
  An Employee is anything that has an identity (first name, last name, id)
  and can compute its earnings for a pay period. Three variants exist:

    HourlyEmployee              hours * wage
    CommissionEmployee          grossSales * commission / 100
    BasePlusCommissionEmployee  commission earnings + baseSalary

KEY CONCEPTS IN THIS FILE (types.go):
  - Kind: Names the exact variant of an employee
  - Employee: The capability set every variant implements
  - Person: Identity fields shared by every variant (embedded)
  - Equal: Two employees are equal iff same Kind and same ID

DESIGN PRINCIPLES:
  1. Precision: Earnings are decimal.Decimal, never float64
  2. Validation: One validator per constraint, used by constructors and setters
  3. Identity: Equality ignores every field except Kind and ID

SEE ALSO:
  - hourly.go: HourlyEmployee
  - commission.go: CommissionEmployee and BasePlusCommissionEmployee
  - errors.go: ErrInvalidArgument
*/
package payroll

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// KIND - Exact variant of an employee
// =============================================================================

// Kind names the exact variant of an employee.
type Kind string

const (
	KindHourly             Kind = "hourly"
	KindCommission         Kind = "commission"
	KindBasePlusCommission Kind = "base_plus_commission"
)

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindHourly, KindCommission, KindBasePlusCommission}
}

// ParseKind resolves a kind name. Unknown names fail with ErrUnknownKind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Label is the variant name used in display representations.
func (k Kind) Label() string {
	switch k {
	case KindHourly:
		return "HourlyEmployee"
	case KindCommission:
		return "CommissionEmployee"
	case KindBasePlusCommission:
		return "BasePlusCommissionEmployee"
	default:
		return "Employee"
	}
}

// =============================================================================
// EMPLOYEE - Capability set shared by all variants
// =============================================================================

// Employee is implemented by every payroll variant.
// Identity accessors come from the embedded Person.
type Employee interface {
	FirstName() string
	SetFirstName(string)
	LastName() string
	SetLastName(string)
	ID() int
	SetID(int)

	// Kind returns the exact variant. Embedding variants override it.
	Kind() Kind

	// Earnings returns the non-negative amount owed for the period.
	Earnings() decimal.Decimal

	fmt.Stringer
}

// Equal reports whether a and b are the same employee record: same exact
// variant and same id. Other fields are ignored. A nil interface and a nil
// variant pointer both count as nil; two nils are equal.
func Equal(a, b Employee) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.ID() == b.ID()
}

func isNil(e Employee) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *HourlyEmployee:
		return v == nil
	case *CommissionEmployee:
		return v == nil
	case *BasePlusCommissionEmployee:
		return v == nil
	default:
		return false
	}
}

// =============================================================================
// PERSON - Identity fields
// =============================================================================

const (
	DefaultFirstName = "Plony"
	DefaultLastName  = "Almony"
	DefaultID        = 0
)

// Person holds the identity of an employee. Identity fields carry no
// constraints, so the setters never fail.
type Person struct {
	firstName string
	lastName  string
	id        int
}

// NewPerson returns an identity with the given names and id.
func NewPerson(firstName, lastName string, id int) Person {
	return Person{firstName: firstName, lastName: lastName, id: id}
}

// DefaultPerson returns the placeholder identity ("Plony", "Almony", 0).
func DefaultPerson() Person {
	return NewPerson(DefaultFirstName, DefaultLastName, DefaultID)
}

// FirstName returns the employee's first name.
func (p *Person) FirstName() string { return p.firstName }

// SetFirstName replaces the first name.
func (p *Person) SetFirstName(s string) { p.firstName = s }

// LastName returns the employee's last name.
func (p *Person) LastName() string { return p.lastName }

// SetLastName replaces the last name.
func (p *Person) SetLastName(s string) { p.lastName = s }

// ID returns the employee id. Uniqueness is not enforced.
func (p *Person) ID() int { return p.id }

// SetID replaces the employee id.
func (p *Person) SetID(id int) { p.id = id }

// describe renders "Label{firstName='..', lastName='..', id=N<extra>}".
func (p *Person) describe(k Kind, extra string) string {
	return fmt.Sprintf("%s{firstName='%s', lastName='%s', id=%d%s}",
		k.Label(), p.firstName, p.lastName, p.id, extra)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
