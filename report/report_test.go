package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll/payroll"
	"github.com/warp/payroll/report"
)

const sampleReport = "HourlyEmployee{firstName='Shalom', lastName='Leibovich', id=123, hours=40, wage=20.5}, Weekly Salary: 820.00\n" +
	"CommissionEmployee{firstName='Nahum', lastName='Hadad', id=456, grossSales=5000, commission=10}, Weekly Salary: 500.00\n" +
	"BasePlusCommissionEmployee{firstName='Moshe', lastName='Navon', id=789, grossSales=7000, commission=5, baseSalary=500}, Weekly Salary: 850.00\n" +
	"false\n"

func TestWrite_SampleRoster(t *testing.T) {
	// GIVEN: The fixed demonstration roster
	// WHEN: Writing the report with default options
	// THEN: Three salary lines followed by "false" (hourly vs commission)

	employees, err := report.SampleRoster()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(report.DefaultOptions()).Write(&buf, employees))
	assert.Equal(t, sampleReport, buf.String())
}

func TestWrite_EqualFirstTwo(t *testing.T) {
	a, err := payroll.NewHourlyEmployee("a", "b", 7, 1, 1)
	require.NoError(t, err)
	b, err := payroll.NewHourlyEmployee("c", "d", 7, 2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(report.DefaultOptions()).Write(&buf, []payroll.Employee{a, b}))
	assert.Equal(t,
		"HourlyEmployee{firstName='a', lastName='b', id=7, hours=1, wage=1}, Weekly Salary: 1.00\n"+
			"HourlyEmployee{firstName='c', lastName='d', id=7, hours=2, wage=2}, Weekly Salary: 4.00\n"+
			"true\n",
		buf.String())
}

func TestWrite_SingleEmployee_NoEqualityLine(t *testing.T) {
	e := payroll.DefaultCommissionEmployee()

	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(report.DefaultOptions()).Write(&buf, []payroll.Employee{e}))
	assert.Equal(t,
		"CommissionEmployee{firstName='Plony', lastName='Almony', id=0, grossSales=0, commission=0}, Weekly Salary: 0.00\n",
		buf.String())
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewWriter(report.DefaultOptions()).Write(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestWrite_ShowTotalAndCustomLabel(t *testing.T) {
	employees, err := report.SampleRoster()
	require.NoError(t, err)

	w := report.NewWriter(report.Options{SalaryLabel: "Pay", Precision: 1, ShowTotal: true})

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf, employees))
	assert.Contains(t, buf.String(), ", Pay: 820.0\n")
	assert.Contains(t, buf.String(), "false\nTotal: 2170.0\n")
}

func TestNewWriter_EmptyLabelFallsBack(t *testing.T) {
	h, err := payroll.NewHourlyEmployee("Shalom", "Leibovich", 123, 40, 20.5)
	require.NoError(t, err)

	line := report.NewWriter(report.Options{Precision: 2}).Line(h)
	assert.Equal(t,
		"HourlyEmployee{firstName='Shalom', lastName='Leibovich', id=123, hours=40, wage=20.5}, Weekly Salary: 820.00",
		line)
}

func TestTotal(t *testing.T) {
	employees, err := report.SampleRoster()
	require.NoError(t, err)

	assert.Equal(t, "2170.00", report.Total(employees).StringFixed(2))
	assert.True(t, report.Total(nil).IsZero())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	employees, err := report.SampleRoster()
	require.NoError(t, err)

	err = report.NewWriter(report.DefaultOptions()).Write(failingWriter{}, employees)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write report line")
}
