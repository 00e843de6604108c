/*
Package report renders the payroll report.

OUTPUT FORMAT:
  One line per employee, in roster order:

    <employee.String()>, Weekly Salary: <earnings to 2 decimals>

  Then one line with the result of comparing the first two employees
  (true/false), written only when the roster has at least two entries.
  With ShowTotal set, a final "Total: <sum>" line follows.

USAGE:
  employees, _ := report.SampleRoster()
  w := report.NewWriter(report.DefaultOptions())
  err := w.Write(os.Stdout, employees)
*/
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll/payroll"
)

const (
	DefaultSalaryLabel = "Weekly Salary"
	DefaultPrecision   = 2
)

// Options controls report formatting.
type Options struct {
	SalaryLabel string
	Precision   int32
	ShowTotal   bool
}

// DefaultOptions returns the "Weekly Salary" label, 2 decimals and no total.
func DefaultOptions() Options {
	return Options{SalaryLabel: DefaultSalaryLabel, Precision: DefaultPrecision}
}

// Writer formats employees into report lines.
type Writer struct {
	opts Options
}

// NewWriter fills an empty SalaryLabel with the default. Precision is used as given.
func NewWriter(opts Options) *Writer {
	if opts.SalaryLabel == "" {
		opts.SalaryLabel = DefaultSalaryLabel
	}
	return &Writer{opts: opts}
}

// Line renders a single employee.
func (w *Writer) Line(e payroll.Employee) string {
	return fmt.Sprintf("%s, %s: %s", e.String(), w.opts.SalaryLabel, e.Earnings().StringFixed(w.opts.Precision))
}

// Write writes the full report to out.
func (w *Writer) Write(out io.Writer, employees []payroll.Employee) error {
	for _, e := range employees {
		if _, err := fmt.Fprintln(out, w.Line(e)); err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}

	if len(employees) >= 2 {
		same := payroll.Equal(employees[0], employees[1])
		if _, err := fmt.Fprintln(out, strconv.FormatBool(same)); err != nil {
			return fmt.Errorf("write equality line: %w", err)
		}
	}

	if w.opts.ShowTotal {
		if _, err := fmt.Fprintf(out, "Total: %s\n", Total(employees).StringFixed(w.opts.Precision)); err != nil {
			return fmt.Errorf("write total line: %w", err)
		}
	}
	return nil
}

// Total sums the earnings of every employee.
func Total(employees []payroll.Employee) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range employees {
		sum = sum.Add(e.Earnings())
	}
	return sum
}
