package settlement

import (
	"strings"

	settlementerrors "go-offboarding/internal/settlement/errors"
)

// ValidationError lists every problem found in one pass.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "settlement input is incomplete: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return settlementerrors.ErrValidation
}

func (e *ValidationError) ErrorDetails() any {
	return e.Errors
}

// ValidateSettlementInputs collects all missing-field problems instead of
// stopping at the first one. An empty result means the inputs are usable.
func ValidateSettlementInputs(emp *EmployeeFinancialInfo, payroll *PayrollInputs, exit *ExitInputs) []string {
	var errs []string

	if emp == nil {
		errs = append(errs, "employee financial information is required")
	} else {
		if !emp.CTC.Valid && !emp.GrossSalary.Valid && !emp.BasicSalary.Valid {
			errs = append(errs, "ctc or basic_salary is required")
		}
		if emp.LastWorkingDay == nil {
			errs = append(errs, "last_working_day is required")
		}
		if emp.DateOfJoining == nil {
			errs = append(errs, "date_of_joining is required")
		}
	}

	if payroll == nil {
		errs = append(errs, "payroll inputs are required")
	}
	if exit == nil {
		errs = append(errs, "exit inputs are required")
	}

	return errs
}
