package activitylog_test

import (
	"testing"

	"go-offboarding/internal/activitylog"

	"github.com/stretchr/testify/assert"
)

func TestDetails_EncodeDecode(t *testing.T) {
	cases := []activitylog.Details{
		activitylog.InitiationDetails{ReferenceNo: "EXIT-000042", ExitType: "termination", ResignationDate: "2026-01-02", LastWorkingDay: "2026-01-31"},
		activitylog.TransitionDetails{From: "hr_approved", To: "cancelled", Reason: "rehired"},
		activitylog.ClearanceDetails{Department: "Finance", From: "hr_approved", To: "clearance_completed"},
		activitylog.SettlementDetails{CalculationID: "c1", TotalPayable: "100.00", TotalRecoverable: "40.00", NetSettlement: "60.00", SettlementStatus: "company_pays_employee"},
	}

	for _, in := range cases {
		t.Run(in.Kind(), func(t *testing.T) {
			kind, raw, err := activitylog.Encode(in)
			assert.NoError(t, err)
			assert.Equal(t, in.Kind(), kind)

			out, err := activitylog.Decode(kind, raw)
			assert.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestDetails_DecodeFields(t *testing.T) {
	out, err := activitylog.Decode(activitylog.KindFields, []byte(`{"note":"manual","count":2}`))

	assert.NoError(t, err)
	fields, ok := out.(activitylog.Fields)
	if assert.True(t, ok) {
		assert.Equal(t, "manual", fields["note"])
		assert.Equal(t, float64(2), fields["count"])
	}
}

func TestDetails_DecodeEmpty(t *testing.T) {
	out, err := activitylog.Decode(activitylog.KindTransition, nil)

	assert.NoError(t, err)
	assert.Equal(t, activitylog.Fields{}, out)
}
