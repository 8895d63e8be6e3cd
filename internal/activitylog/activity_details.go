package activitylog

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

const ActionSettlementCalculated = "settlement_calculated"

const (
	KindInitiation = "initiation"
	KindTransition = "transition"
	KindClearance  = "clearance"
	KindSettlement = "settlement"
	KindFields     = "fields"
)

// Details is the payload attached to an entry. The known shapes below cover
// every action the exit workflow records; Fields is the open fallback.
type Details interface {
	Kind() string
	isDetails()
}

type InitiationDetails struct {
	ReferenceNo     string `json:"reference_no"`
	ExitType        string `json:"exit_type"`
	ResignationDate string `json:"resignation_date"`
	LastWorkingDay  string `json:"last_working_day"`
}

type TransitionDetails struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

// ClearanceDetails is recorded when the last department sign-off completes
// clearance automatically.
type ClearanceDetails struct {
	Department string `json:"department"`
	From       string `json:"from"`
	To         string `json:"to"`
}

type SettlementDetails struct {
	CalculationID    string `json:"calculation_id"`
	TotalPayable     string `json:"total_payable"`
	TotalRecoverable string `json:"total_recoverable"`
	NetSettlement    string `json:"net_settlement"`
	SettlementStatus string `json:"settlement_status"`
}

type Fields map[string]any

func (InitiationDetails) Kind() string { return KindInitiation }
func (TransitionDetails) Kind() string { return KindTransition }
func (ClearanceDetails) Kind() string  { return KindClearance }
func (SettlementDetails) Kind() string { return KindSettlement }
func (Fields) Kind() string            { return KindFields }

func (InitiationDetails) isDetails() {}
func (TransitionDetails) isDetails() {}
func (ClearanceDetails) isDetails()  {}
func (SettlementDetails) isDetails() {}
func (Fields) isDetails()            {}

// Encode serializes d for the jsonb column. A nil payload is stored as an
// empty Fields object.
func Encode(d Details) (string, datatypes.JSON, error) {
	if d == nil {
		d = Fields{}
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return "", nil, err
	}
	return d.Kind(), datatypes.JSON(raw), nil
}

// Decode restores the concrete payload type recorded under kind.
func Decode(kind string, raw []byte) (Details, error) {
	if len(raw) == 0 {
		return Fields{}, nil
	}

	switch kind {
	case KindInitiation:
		var d InitiationDetails
		err := json.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindTransition:
		var d TransitionDetails
		err := json.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindClearance:
		var d ClearanceDetails
		err := json.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindSettlement:
		var d SettlementDetails
		err := json.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	default:
		d := Fields{}
		err := json.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	}
}

func wrapDecode(kind string, err error) error {
	if err != nil {
		return fmt.Errorf("decode %s details: %w", kind, err)
	}
	return nil
}
