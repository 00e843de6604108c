/*
Package factory provides conversion between roster definitions and employees.

PURPOSE:
  Converts declarative employee definitions (JSON, or YAML decoded by the
  config package) into payroll.Employee values. A roster can then be changed
  without touching code.

JSON SCHEMA:
  [
    {"kind": "hourly", "first_name": "Shalom", "last_name": "Leibovich",
     "id": 123, "hours": 40, "wage": 20.5},
    {"kind": "commission", "first_name": "Nahum", "last_name": "Hadad",
     "id": 456, "gross_sales": 5000, "commission": 10},
    {"kind": "base_plus_commission", "first_name": "Moshe", "last_name": "Navon",
     "id": 789, "gross_sales": 7000, "commission": 5, "base_salary": 500}
  ]

  Fields that do not belong to the kind are ignored.

USAGE:
  f := factory.NewRosterFactory()
  employees, err := f.ParseRoster(jsonString)

SEE ALSO:
  - payroll/types.go: Kind names
  - config/config.go: YAML roster
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/warp/payroll/payroll"
)

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// EmployeeDefinition is the declarative form of one employee.
type EmployeeDefinition struct {
	Kind       string  `json:"kind" yaml:"kind"`
	FirstName  string  `json:"first_name" yaml:"first_name"`
	LastName   string  `json:"last_name" yaml:"last_name"`
	ID         int     `json:"id" yaml:"id"`
	Hours      int     `json:"hours,omitempty" yaml:"hours,omitempty"`
	Wage       float64 `json:"wage,omitempty" yaml:"wage,omitempty"`
	GrossSales float64 `json:"gross_sales,omitempty" yaml:"gross_sales,omitempty"`
	Commission int     `json:"commission,omitempty" yaml:"commission,omitempty"`
	BaseSalary float64 `json:"base_salary,omitempty" yaml:"base_salary,omitempty"`
}

// =============================================================================
// ROSTER FACTORY
// =============================================================================

// RosterFactory converts definitions to employees and back.
type RosterFactory struct{}

// NewRosterFactory creates a new roster factory.
func NewRosterFactory() *RosterFactory {
	return &RosterFactory{}
}

// ParseRoster parses a JSON array of definitions.
func (f *RosterFactory) ParseRoster(jsonStr string) ([]payroll.Employee, error) {
	var defs []EmployeeDefinition
	if err := json.Unmarshal([]byte(jsonStr), &defs); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	return f.FromDefinitions(defs)
}

// FromDefinitions builds every employee in order. The first failure stops
// the build and reports its position.
func (f *RosterFactory) FromDefinitions(defs []EmployeeDefinition) ([]payroll.Employee, error) {
	employees := make([]payroll.Employee, 0, len(defs))
	for i, def := range defs {
		e, err := f.FromDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("roster[%d]: %w", i, err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// FromDefinition builds a single employee, validating it through the
// payroll constructors.
func (f *RosterFactory) FromDefinition(def EmployeeDefinition) (payroll.Employee, error) {
	kind, err := payroll.ParseKind(def.Kind)
	if err != nil {
		return nil, err
	}

	var (
		e     payroll.Employee
		build error
	)
	switch kind {
	case payroll.KindHourly:
		var h *payroll.HourlyEmployee
		h, build = payroll.NewHourlyEmployee(def.FirstName, def.LastName, def.ID, def.Hours, def.Wage)
		e = h
	case payroll.KindCommission:
		var c *payroll.CommissionEmployee
		c, build = payroll.NewCommissionEmployee(def.FirstName, def.LastName, def.ID, def.GrossSales, def.Commission)
		e = c
	case payroll.KindBasePlusCommission:
		var b *payroll.BasePlusCommissionEmployee
		b, build = payroll.NewBasePlusCommissionEmployee(def.FirstName, def.LastName, def.ID, def.GrossSales, def.Commission, def.BaseSalary)
		e = b
	}
	// Constructors return typed nil pointers on failure; keep the interface nil.
	if build != nil {
		return nil, fmt.Errorf("%s employee %d: %w", kind, def.ID, build)
	}
	return e, nil
}

// ToDefinition converts an employee back to its declarative form.
func (f *RosterFactory) ToDefinition(e payroll.Employee) EmployeeDefinition {
	def := EmployeeDefinition{
		Kind:      string(e.Kind()),
		FirstName: e.FirstName(),
		LastName:  e.LastName(),
		ID:        e.ID(),
	}

	switch v := e.(type) {
	case *payroll.HourlyEmployee:
		def.Hours = v.Hours()
		def.Wage = v.Wage()
	case *payroll.CommissionEmployee:
		def.GrossSales = v.GrossSales()
		def.Commission = v.Commission()
	case *payroll.BasePlusCommissionEmployee:
		def.GrossSales = v.GrossSales()
		def.Commission = v.Commission()
		def.BaseSalary = v.BaseSalary()
	}
	return def
}
