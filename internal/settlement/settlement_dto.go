package settlement

import (
	"time"

	"go-offboarding/internal/shared/apperror"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Blocks are pointers so an absent block is reported as missing instead of
// being read as zeros.
type CalculateSettlementRequest struct {
	EmployeeInfo  *EmployeeInfoRequest  `json:"employee_info"`
	PayrollInputs *PayrollInputsRequest `json:"payroll_inputs"`
	ExitInputs    *ExitInputsRequest    `json:"exit_inputs"`
}

type EmployeeInfoRequest struct {
	GrossSalary    *decimal.Decimal `json:"gross_salary"`
	CTC            *decimal.Decimal `json:"ctc"`
	BasicSalary    *decimal.Decimal `json:"basic_salary"`
	DateOfJoining  *string          `json:"date_of_joining"`
	LastWorkingDay *string          `json:"last_working_day"`
}

type PayrollInputsRequest struct {
	EligibleLeaveDays decimal.Decimal `json:"eligible_leave_days"`
	Bonus             decimal.Decimal `json:"bonus"`
	Incentives        decimal.Decimal `json:"incentives"`
	Reimbursements    decimal.Decimal `json:"reimbursements"`
	PFEmployee        decimal.Decimal `json:"pf_employee"`
	PFEmployer        decimal.Decimal `json:"pf_employer"`
	ESIEmployee       decimal.Decimal `json:"esi_employee"`
	ESIEmployer       decimal.Decimal `json:"esi_employer"`
	ProfessionalTax   decimal.Decimal `json:"professional_tax"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	TDS               decimal.Decimal `json:"tds"`
	IsLastMonth       bool            `json:"is_last_month"`
}

type AssetRequest struct {
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	Depreciation decimal.Decimal `json:"depreciation"`
	Status       string          `json:"status"`
}

type ExitInputsRequest struct {
	RequiredNoticeDays int               `json:"required_notice_days" binding:"gte=0"`
	ServedNoticeDays   int               `json:"served_notice_days" binding:"gte=0"`
	Assets             []AssetRequest    `json:"assets"`
	Loans              []decimal.Decimal `json:"loans"`
	Advances           []decimal.Decimal `json:"advances"`
	PendingRecoveries  []decimal.Decimal `json:"pending_recoveries"`
}

type CalculationResponse struct {
	Earnings         Earnings        `json:"earnings"`
	Deductions       Deductions      `json:"deductions"`
	NetSettlement    decimal.Decimal `json:"net_settlement"`
	SettlementStatus Status          `json:"settlement_status"`
	Details          Details         `json:"details"`
}

type SettlementResponse struct {
	ID            string `json:"id"`
	ExitRequestID string `json:"exit_request_id"`
	CalculationResponse
	CalculatedBy string `json:"calculated_by"`
	CalculatedAt string `json:"calculated_at"`
}

type engineInputs struct {
	employee *EmployeeFinancialInfo
	payroll  *PayrollInputs
	exit     *ExitInputs
}

// toInputs converts the request into engine inputs. Dates that fail to parse
// are left unset and reported by field name.
func (r CalculateSettlementRequest) toInputs() (engineInputs, map[string]string) {
	var in engineInputs
	invalid := map[string]string{}

	if e := r.EmployeeInfo; e != nil {
		emp := &EmployeeFinancialInfo{
			GrossSalary: nullDecimal(e.GrossSalary),
			CTC:         nullDecimal(e.CTC),
			BasicSalary: nullDecimal(e.BasicSalary),
		}
		if t, ok := parseDate(e.DateOfJoining, "date_of_joining", invalid); ok {
			emp.DateOfJoining = t
		}
		if t, ok := parseDate(e.LastWorkingDay, "last_working_day", invalid); ok {
			emp.LastWorkingDay = t
		}
		in.employee = emp
	}

	if p := r.PayrollInputs; p != nil {
		in.payroll = &PayrollInputs{
			EligibleLeaveDays: p.EligibleLeaveDays,
			Bonus:             p.Bonus,
			Incentives:        p.Incentives,
			Reimbursements:    p.Reimbursements,
			PFEmployee:        p.PFEmployee,
			PFEmployer:        p.PFEmployer,
			ESIEmployee:       p.ESIEmployee,
			ESIEmployer:       p.ESIEmployer,
			ProfessionalTax:   p.ProfessionalTax,
			OtherDeductions:   p.OtherDeductions,
			TDS:               p.TDS,
			IsLastMonth:       p.IsLastMonth,
		}
	}

	if x := r.ExitInputs; x != nil {
		exit := &ExitInputs{
			RequiredNoticeDays: x.RequiredNoticeDays,
			ServedNoticeDays:   x.ServedNoticeDays,
			Loans:              x.Loans,
			Advances:           x.Advances,
			PendingRecoveries:  x.PendingRecoveries,
		}
		for _, a := range x.Assets {
			exit.Assets = append(exit.Assets, Asset{
				Name:         a.Name,
				Cost:         a.Cost,
				Depreciation: a.Depreciation,
				Status:       AssetStatus(a.Status),
			})
		}
		in.exit = exit
	}

	return in, invalid
}

func parseDate(raw *string, field string, invalid map[string]string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, false
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		invalid[field] = apperror.InvalidField(field).Message
		return nil, false
	}
	return &t, true
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// validate merges date format problems with the engine's missing-field
// checks. A field reported invalid is not also reported as required.
func (in engineInputs) validate(invalid map[string]string) []string {
	var errs []string
	for _, field := range []string{"date_of_joining", "last_working_day"} {
		if msg, ok := invalid[field]; ok {
			errs = append(errs, msg)
		}
	}
	for _, msg := range ValidateSettlementInputs(in.employee, in.payroll, in.exit) {
		skip := false
		for field := range invalid {
			if msg == apperror.RequiredField(field).Message {
				skip = true
				break
			}
		}
		if !skip {
			errs = append(errs, msg)
		}
	}
	return errs
}

func toCalculationResponse(c Calculation) CalculationResponse {
	return CalculationResponse{
		Earnings:         c.Earnings,
		Deductions:       c.Deductions,
		NetSettlement:    c.NetSettlement,
		SettlementStatus: c.SettlementStatus,
		Details:          c.Details,
	}
}

func mapToResponse(s SettlementCalculation) SettlementResponse {
	return SettlementResponse{
		ID:            s.ID.String(),
		ExitRequestID: s.ExitRequestID.String(),
		CalculationResponse: CalculationResponse{
			Earnings:         s.Earnings.Data(),
			Deductions:       s.Deductions.Data(),
			NetSettlement:    s.NetSettlement,
			SettlementStatus: Status(s.SettlementStatus),
			Details:          s.Details.Data(),
		},
		CalculatedBy: s.CalculatedBy.String(),
		CalculatedAt: s.CalculatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(items []SettlementCalculation) []SettlementResponse {
	resp := make([]SettlementResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, mapToResponse(s))
	}
	return resp
}
