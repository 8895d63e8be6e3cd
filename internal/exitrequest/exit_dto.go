package exitrequest

import "time"

type InitiateExitRequest struct {
	EmployeeID      string  `json:"employee_id" binding:"required,uuid"`
	ResignationDate string  `json:"resignation_date" binding:"required"`
	LastWorkingDay  string  `json:"last_working_day" binding:"required"`
	ExitType        string  `json:"exit_type" binding:"required,oneof=resignation termination absconded contract_end"`
	Reason          *string `json:"reason"`
}

type TransitionExitRequest struct {
	TargetStatus string `json:"target_status" binding:"required"`
	Reason       string `json:"reason"`
}

type CancelExitRequest struct {
	Reason string `json:"reason"`
}

type ExitRequestResponse struct {
	ID                    string  `json:"id"`
	CompanyID             string  `json:"company_id"`
	EmployeeID            string  `json:"employee_id"`
	ReferenceNo           string  `json:"reference_no"`
	ExitType              string  `json:"exit_type"`
	Status                string  `json:"status"`
	ResignationDate       string  `json:"resignation_date"`
	LastWorkingDay        string  `json:"last_working_day"`
	Reason                *string `json:"reason,omitempty"`
	InitiatedBy           string  `json:"initiated_by"`
	ManagerApprovedAt     *string `json:"manager_approved_at,omitempty"`
	HRApprovedAt          *string `json:"hr_approved_at,omitempty"`
	ClearanceCompletedAt  *string `json:"clearance_completed_at,omitempty"`
	SettlementCompletedAt *string `json:"settlement_completed_at,omitempty"`
	CompletedAt           *string `json:"completed_at,omitempty"`
	CancelledAt           *string `json:"cancelled_at,omitempty"`
	CancellationReason    *string `json:"cancellation_reason,omitempty"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}

func formatStamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func mapToResponse(e ExitRequest) ExitRequestResponse {
	return ExitRequestResponse{
		ID:                    e.ID.String(),
		CompanyID:             e.CompanyID.String(),
		EmployeeID:            e.EmployeeID.String(),
		ReferenceNo:           e.ReferenceNo,
		ExitType:              string(e.ExitType),
		Status:                string(e.Status),
		ResignationDate:       e.ResignationDate.Format(dateLayout),
		LastWorkingDay:        e.LastWorkingDay.Format(dateLayout),
		Reason:                e.Reason,
		InitiatedBy:           e.InitiatedBy.String(),
		ManagerApprovedAt:     formatStamp(e.ManagerApprovedAt),
		HRApprovedAt:          formatStamp(e.HRApprovedAt),
		ClearanceCompletedAt:  formatStamp(e.ClearanceCompletedAt),
		SettlementCompletedAt: formatStamp(e.SettlementCompletedAt),
		CompletedAt:           formatStamp(e.CompletedAt),
		CancelledAt:           formatStamp(e.CancelledAt),
		CancellationReason:    e.CancellationReason,
		CreatedAt:             e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(items []ExitRequest) []ExitRequestResponse {
	resp := make([]ExitRequestResponse, 0, len(items))
	for _, e := range items {
		resp = append(resp, mapToResponse(e))
	}
	return resp
}
