package report

import "github.com/warp/payroll/payroll"

// SampleRoster returns the fixed demonstration roster: one employee of
// each kind, hourly first and commission second.
func SampleRoster() ([]payroll.Employee, error) {
	hourly, err := payroll.NewHourlyEmployee("Shalom", "Leibovich", 123, 40, 20.5)
	if err != nil {
		return nil, err
	}
	commission, err := payroll.NewCommissionEmployee("Nahum", "Hadad", 456, 5000, 10)
	if err != nil {
		return nil, err
	}
	basePlus, err := payroll.NewBasePlusCommissionEmployee("Moshe", "Navon", 789, 7000, 5, 500)
	if err != nil {
		return nil, err
	}
	return []payroll.Employee{hourly, commission, basePlus}, nil
}
