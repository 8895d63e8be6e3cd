package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusCompanyPaysEmployee Status = "company_pays_employee"
	StatusEmployeePaysCompany Status = "employee_pays_company"
	StatusFullySettled        Status = "fully_settled"
)

type AssetStatus string

const (
	AssetReturned AssetStatus = "returned"
	AssetGood     AssetStatus = "good"
	AssetDamaged  AssetStatus = "damaged"
	AssetLost     AssetStatus = "lost"
)

// EmployeeFinancialInfo holds the salary facts on file for the departing
// employee. Amounts are monthly.
type EmployeeFinancialInfo struct {
	GrossSalary    decimal.NullDecimal
	CTC            decimal.NullDecimal
	BasicSalary    decimal.NullDecimal
	DateOfJoining  *time.Time
	LastWorkingDay *time.Time
}

// GrossOrCTC is the monthly figure used for salary pro-ration and notice
// recovery: gross when on file, else CTC, else basic.
func (e EmployeeFinancialInfo) GrossOrCTC() decimal.Decimal {
	switch {
	case e.GrossSalary.Valid:
		return e.GrossSalary.Decimal
	case e.CTC.Valid:
		return e.CTC.Decimal
	case e.BasicSalary.Valid:
		return e.BasicSalary.Decimal
	default:
		return decimal.Zero
	}
}

type PayrollInputs struct {
	EligibleLeaveDays decimal.Decimal

	Bonus          decimal.Decimal
	Incentives     decimal.Decimal
	Reimbursements decimal.Decimal

	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	OtherDeductions decimal.Decimal
	TDS             decimal.Decimal
	// IsLastMonth gates TDS: it is withheld only on the final month's payslip.
	IsLastMonth bool
}

type Asset struct {
	Name         string
	Cost         decimal.Decimal
	Depreciation decimal.Decimal
	Status       AssetStatus
}

type ExitInputs struct {
	RequiredNoticeDays int
	ServedNoticeDays   int
	Assets             []Asset

	Loans             []decimal.Decimal
	Advances          []decimal.Decimal
	PendingRecoveries []decimal.Decimal
}

type Earnings struct {
	SalaryPayable   decimal.Decimal `json:"salary_payable"`
	LeaveEncashment decimal.Decimal `json:"leave_encashment"`
	Bonus           decimal.Decimal `json:"bonus"`
	Incentives      decimal.Decimal `json:"incentives"`
	Reimbursements  decimal.Decimal `json:"reimbursements"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
}

type Deductions struct {
	NoticeRecovery      decimal.Decimal `json:"notice_recovery"`
	AssetRecovery       decimal.Decimal `json:"asset_recovery"`
	Loans               decimal.Decimal `json:"loans"`
	Advances            decimal.Decimal `json:"advances"`
	PendingRecoveries   decimal.Decimal `json:"pending_recoveries"`
	StatutoryDeductions decimal.Decimal `json:"statutory_deductions"`
	TotalRecoverable    decimal.Decimal `json:"total_recoverable"`
}

type SalaryDetail struct {
	GrossOrCTC    decimal.Decimal `json:"gross_or_ctc"`
	DaysInMonth   int             `json:"days_in_month"`
	DaysWorked    int             `json:"days_worked"`
	PerDaySalary  decimal.Decimal `json:"per_day_salary"`
	PayableSalary decimal.Decimal `json:"payable_salary"`
}

type LeaveEncashmentDetail struct {
	BasicSalary       decimal.Decimal `json:"basic_salary"`
	PerDayBasic       decimal.Decimal `json:"per_day_basic"`
	EligibleLeaveDays decimal.Decimal `json:"eligible_leave_days"`
	Encashment        decimal.Decimal `json:"encashment"`
	Note              string          `json:"note,omitempty"`
}

type NoticeRecoveryDetail struct {
	RequiredDays  int             `json:"required_days"`
	ServedDays    int             `json:"served_days"`
	ShortfallDays int             `json:"shortfall_days"`
	PerDayRate    decimal.Decimal `json:"per_day_rate"`
	Recovery      decimal.Decimal `json:"recovery"`
}

type AssetRecoveryDetail struct {
	Name           string          `json:"name"`
	Status         AssetStatus     `json:"status"`
	Cost           decimal.Decimal `json:"cost"`
	Depreciation   decimal.Decimal `json:"depreciation"`
	RecoveryAmount decimal.Decimal `json:"recovery_amount"`
	Note           string          `json:"note,omitempty"`
}

type StatutoryDetail struct {
	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TDS             decimal.Decimal `json:"tds"`
	TDSIncluded     bool            `json:"tds_included"`
	Total           decimal.Decimal `json:"total"`
}

// Details keeps every intermediate derivation so a stored calculation can be
// explained line by line.
type Details struct {
	Salary          SalaryDetail          `json:"salary"`
	LeaveEncashment LeaveEncashmentDetail `json:"leave_encashment"`
	NoticeRecovery  NoticeRecoveryDetail  `json:"notice_recovery"`
	Assets          []AssetRecoveryDetail `json:"assets"`
	Statutory       StatutoryDetail       `json:"statutory"`
}

// Calculation is the engine's output. It carries no identity or timestamp;
// identical inputs always produce an identical Calculation.
type Calculation struct {
	Earnings         Earnings        `json:"earnings"`
	Deductions       Deductions      `json:"deductions"`
	NetSettlement    decimal.Decimal `json:"net_settlement"`
	SettlementStatus Status          `json:"settlement_status"`
	Details          Details         `json:"details"`
}
