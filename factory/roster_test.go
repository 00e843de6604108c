package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll/factory"
	"github.com/warp/payroll/payroll"
)

const sampleRosterJSON = `[
  {"kind": "hourly", "first_name": "Shalom", "last_name": "Leibovich", "id": 123, "hours": 40, "wage": 20.5},
  {"kind": "commission", "first_name": "Nahum", "last_name": "Hadad", "id": 456, "gross_sales": 5000, "commission": 10},
  {"kind": "base_plus_commission", "first_name": "Moshe", "last_name": "Navon", "id": 789, "gross_sales": 7000, "commission": 5, "base_salary": 500}
]`

func TestParseRoster_BuildsEveryKind(t *testing.T) {
	f := factory.NewRosterFactory()

	employees, err := f.ParseRoster(sampleRosterJSON)
	require.NoError(t, err)
	require.Len(t, employees, 3)

	assert.IsType(t, &payroll.HourlyEmployee{}, employees[0])
	assert.IsType(t, &payroll.CommissionEmployee{}, employees[1])
	assert.IsType(t, &payroll.BasePlusCommissionEmployee{}, employees[2])

	want := []string{"820.00", "500.00", "850.00"}
	for i, e := range employees {
		assert.Equal(t, want[i], e.Earnings().StringFixed(2))
	}
	assert.Equal(t, "Moshe", employees[2].FirstName())
	assert.Equal(t, 789, employees[2].ID())
}

func TestParseRoster_MalformedJSON(t *testing.T) {
	f := factory.NewRosterFactory()

	_, err := f.ParseRoster(`{"kind": "hourly"`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse roster JSON")
}

func TestFromDefinitions_ReportsPosition(t *testing.T) {
	// GIVEN: The second definition carries a commission above 100
	// WHEN: Building the roster
	// THEN: The error names roster[1] and still matches ErrInvalidArgument

	f := factory.NewRosterFactory()
	defs := []factory.EmployeeDefinition{
		{Kind: "hourly", FirstName: "a", LastName: "b", ID: 1, Hours: 1, Wage: 1},
		{Kind: "commission", FirstName: "c", LastName: "d", ID: 2, GrossSales: 10, Commission: 101},
	}

	employees, err := f.FromDefinitions(defs)
	assert.Nil(t, employees)
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "roster[1]")

	var invalid *payroll.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "commission", invalid.Field)
}

func TestFromDefinition_InvalidReturnsNilEmployee(t *testing.T) {
	f := factory.NewRosterFactory()

	e, err := f.FromDefinition(factory.EmployeeDefinition{Kind: "hourly", Hours: -1})
	assert.ErrorIs(t, err, payroll.ErrInvalidArgument)
	assert.Nil(t, e)
}

func TestFromDefinition_UnknownKind(t *testing.T) {
	f := factory.NewRosterFactory()

	_, err := f.FromDefinition(factory.EmployeeDefinition{Kind: "salaried", ID: 1})
	assert.ErrorIs(t, err, payroll.ErrUnknownKind)
}

func TestToDefinition_RoundTrip(t *testing.T) {
	f := factory.NewRosterFactory()

	b, err := payroll.NewBasePlusCommissionEmployee("Moshe", "Navon", 789, 7000, 5, 500)
	require.NoError(t, err)

	def := f.ToDefinition(b)
	assert.Equal(t, factory.EmployeeDefinition{
		Kind:       "base_plus_commission",
		FirstName:  "Moshe",
		LastName:   "Navon",
		ID:         789,
		GrossSales: 7000,
		Commission: 5,
		BaseSalary: 500,
	}, def)

	rebuilt, err := f.FromDefinition(def)
	require.NoError(t, err)
	assert.True(t, payroll.Equal(b, rebuilt))
	assert.Equal(t, b.String(), rebuilt.String())
}

func TestToDefinition_Hourly(t *testing.T) {
	f := factory.NewRosterFactory()

	h, err := payroll.NewHourlyEmployee("Shalom", "Leibovich", 123, 40, 20.5)
	require.NoError(t, err)

	def := f.ToDefinition(h)
	assert.Equal(t, "hourly", def.Kind)
	assert.Equal(t, 40, def.Hours)
	assert.Equal(t, 20.5, def.Wage)
	assert.Zero(t, def.GrossSales)
}
