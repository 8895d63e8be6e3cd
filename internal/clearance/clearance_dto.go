package clearance

import "time"

type UpsertClearanceRequest struct {
	Status string  `json:"status" binding:"required,oneof=pending approved rejected"`
	Notes  *string `json:"notes"`
}

type ClearanceItemResponse struct {
	ID            string  `json:"id"`
	ExitRequestID string  `json:"exit_request_id"`
	Department    string  `json:"department"`
	Status        string  `json:"status"`
	ApproverID    *string `json:"approver_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ReviewedAt    *string `json:"reviewed_at,omitempty"`
	UpdatedAt     string  `json:"updated_at"`
}

// ChecklistResponse is the full checklist of a request with its tallies.
type ChecklistResponse struct {
	Items       []ClearanceItemResponse `json:"items"`
	Total       int                     `json:"total"`
	Approved    int                     `json:"approved"`
	Pending     int                     `json:"pending"`
	Rejected    int                     `json:"rejected"`
	AllApproved bool                    `json:"all_approved"`
}

func mapToResponse(it ClearanceItem) ClearanceItemResponse {
	resp := ClearanceItemResponse{
		ID:            it.ID.String(),
		ExitRequestID: it.ExitRequestID.String(),
		Department:    it.Department,
		Status:        string(it.Status),
		Notes:         it.Notes,
		UpdatedAt:     it.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if it.ApproverID != nil {
		s := it.ApproverID.String()
		resp.ApproverID = &s
	}
	if it.ReviewedAt != nil {
		s := it.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &s
	}
	return resp
}

func mapToChecklist(items []ClearanceItem) ChecklistResponse {
	out := ChecklistResponse{
		Items:       make([]ClearanceItemResponse, 0, len(items)),
		Total:       len(items),
		AllApproved: AllApproved(items),
	}
	for _, it := range items {
		out.Items = append(out.Items, mapToResponse(it))
		switch it.Status {
		case ItemApproved:
			out.Approved++
		case ItemRejected:
			out.Rejected++
		default:
			out.Pending++
		}
	}
	return out
}
