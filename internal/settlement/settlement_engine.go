package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Day-count conventions. Salary pro-ration divides by the real length of the
// last working day's calendar month (28-31). Leave encashment and notice
// recovery divide by a fixed 30. The two conventions differ on purpose and
// must not be unified.
var fixedMonthDays = decimal.NewFromInt(30)

// round2 rounds half away from zero to two places. Every component is
// rounded before it is summed so stored parts add up to stored totals.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalculateFinalSettlement validates the inputs and derives the full
// earnings/deductions breakdown. It is a pure function.
func CalculateFinalSettlement(emp *EmployeeFinancialInfo, payroll *PayrollInputs, exit *ExitInputs) (Calculation, error) {
	if errs := ValidateSettlementInputs(emp, payroll, exit); len(errs) > 0 {
		return Calculation{}, &ValidationError{Errors: errs}
	}

	grossOrCTC := emp.GrossOrCTC()

	salary := calculateSalaryPayable(grossOrCTC, *emp.LastWorkingDay)
	leave := calculateLeaveEncashment(*emp, payroll.EligibleLeaveDays)
	notice := calculateNoticeRecovery(grossOrCTC, exit.RequiredNoticeDays, exit.ServedNoticeDays)
	assets, assetTotal := calculateAssetRecovery(exit.Assets)
	statutory := calculateStatutoryDeductions(*payroll)

	earnings := Earnings{
		SalaryPayable:   salary.PayableSalary,
		LeaveEncashment: leave.Encashment,
		Bonus:           round2(payroll.Bonus),
		Incentives:      round2(payroll.Incentives),
		Reimbursements:  round2(payroll.Reimbursements),
	}
	earnings.TotalPayable = sum(
		earnings.SalaryPayable,
		earnings.LeaveEncashment,
		earnings.Bonus,
		earnings.Incentives,
		earnings.Reimbursements,
	)

	deductions := Deductions{
		NoticeRecovery:      notice.Recovery,
		AssetRecovery:       assetTotal,
		Loans:               round2(sum(exit.Loans...)),
		Advances:            round2(sum(exit.Advances...)),
		PendingRecoveries:   round2(sum(exit.PendingRecoveries...)),
		StatutoryDeductions: statutory.Total,
	}
	deductions.TotalRecoverable = sum(
		deductions.NoticeRecovery,
		deductions.AssetRecovery,
		deductions.Loans,
		deductions.Advances,
		deductions.PendingRecoveries,
		deductions.StatutoryDeductions,
	)

	net := earnings.TotalPayable.Sub(deductions.TotalRecoverable)

	return Calculation{
		Earnings:         earnings,
		Deductions:       deductions,
		NetSettlement:    net,
		SettlementStatus: StatusFor(net),
		Details: Details{
			Salary:          salary,
			LeaveEncashment: leave,
			NoticeRecovery:  notice,
			Assets:          assets,
			Statutory:       statutory,
		},
	}, nil
}

// StatusFor maps the sign of net to a direction. Zero is exact, no epsilon.
func StatusFor(net decimal.Decimal) Status {
	switch net.Sign() {
	case 1:
		return StatusCompanyPaysEmployee
	case -1:
		return StatusEmployeePaysCompany
	default:
		return StatusFullySettled
	}
}

// calculateSalaryPayable pro-rates by the calendar length of the last
// working day's month, NOT the fixed 30-day convention used elsewhere.
func calculateSalaryPayable(grossOrCTC decimal.Decimal, lastWorkingDay time.Time) SalaryDetail {
	monthDays := daysInMonth(lastWorkingDay)
	worked := lastWorkingDay.Day()

	// Per-day rates stay at full division precision; only the amount is
	// rounded, so PerDaySalary * DaysWorked reproduces PayableSalary.
	perDay := grossOrCTC.Div(decimal.NewFromInt(int64(monthDays)))

	return SalaryDetail{
		GrossOrCTC:    grossOrCTC,
		DaysInMonth:   monthDays,
		DaysWorked:    worked,
		PerDaySalary:  perDay,
		PayableSalary: round2(perDay.Mul(decimal.NewFromInt(int64(worked)))),
	}
}

// calculateLeaveEncashment uses the fixed 30-day month on basic salary.
func calculateLeaveEncashment(emp EmployeeFinancialInfo, eligibleDays decimal.Decimal) LeaveEncashmentDetail {
	basic := emp.GrossOrCTC()
	note := ""
	if emp.BasicSalary.Valid {
		basic = emp.BasicSalary.Decimal
	} else {
		note = "basic salary not on file, gross/ctc used"
	}

	detail := LeaveEncashmentDetail{
		BasicSalary:       basic,
		PerDayBasic:       basic.Div(fixedMonthDays),
		EligibleLeaveDays: eligibleDays,
		Encashment:        decimal.Zero,
		Note:              note,
	}
	if eligibleDays.Sign() <= 0 {
		return detail
	}
	detail.Encashment = round2(detail.PerDayBasic.Mul(eligibleDays))
	return detail
}

// calculateNoticeRecovery uses the fixed 30-day month even though salary
// pro-ration does not.
func calculateNoticeRecovery(grossOrCTC decimal.Decimal, requiredDays, servedDays int) NoticeRecoveryDetail {
	detail := NoticeRecoveryDetail{
		RequiredDays: requiredDays,
		ServedDays:   servedDays,
		PerDayRate:   grossOrCTC.Div(fixedMonthDays),
		Recovery:     decimal.Zero,
	}
	if servedDays >= requiredDays {
		return detail
	}

	detail.ShortfallDays = requiredDays - servedDays
	detail.Recovery = round2(detail.PerDayRate.Mul(decimal.NewFromInt(int64(detail.ShortfallDays))))
	return detail
}

func calculateAssetRecovery(assets []Asset) ([]AssetRecoveryDetail, decimal.Decimal) {
	details := make([]AssetRecoveryDetail, 0, len(assets))
	total := decimal.Zero

	for _, a := range assets {
		d := AssetRecoveryDetail{
			Name:           a.Name,
			Status:         a.Status,
			Cost:           a.Cost,
			Depreciation:   a.Depreciation,
			RecoveryAmount: decimal.Zero,
		}

		switch a.Status {
		case AssetReturned, AssetGood:
		case AssetDamaged:
			d.RecoveryAmount = round2(decimal.Max(decimal.Zero, a.Cost.Sub(a.Depreciation)))
		case AssetLost:
			d.RecoveryAmount = round2(a.Cost)
		default:
			d.Note = "no recovery required"
		}

		total = total.Add(d.RecoveryAmount)
		details = append(details, d)
	}

	return details, total
}

func calculateStatutoryDeductions(p PayrollInputs) StatutoryDetail {
	d := StatutoryDetail{
		PFEmployee:      round2(p.PFEmployee),
		PFEmployer:      round2(p.PFEmployer),
		ESIEmployee:     round2(p.ESIEmployee),
		ESIEmployer:     round2(p.ESIEmployer),
		ProfessionalTax: round2(p.ProfessionalTax),
		OtherDeductions: round2(p.OtherDeductions),
		TDS:             round2(p.TDS),
		TDSIncluded:     p.IsLastMonth,
	}

	d.Total = sum(d.PFEmployee, d.PFEmployer, d.ESIEmployee, d.ESIEmployer, d.ProfessionalTax, d.OtherDeductions)
	if d.TDSIncluded {
		d.Total = d.Total.Add(d.TDS)
	}
	return d
}
