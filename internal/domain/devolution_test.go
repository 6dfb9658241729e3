package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleConditionAlertworthy(t *testing.T) {
	assert.False(t, ConditionExcellent.Alertworthy())
	assert.False(t, ConditionGood.Alertworthy())
	assert.True(t, ConditionRegular.Alertworthy())
	assert.True(t, ConditionBad.Alertworthy())
}

func TestSeverityForCondition(t *testing.T) {
	assert.Equal(t, SeverityHigh, SeverityForCondition(ConditionBad))
	assert.Equal(t, SeverityMedium, SeverityForCondition(ConditionRegular))
}

func TestCreateReturnInputValidate(t *testing.T) {
	valid := CreateReturnInput{
		RentalID:   uuid.New(),
		CarID:      uuid.New(),
		ReturnedAt: time.Now(),
		Condition:  ConditionGood,
		ReceivedBy: "Ana Torres",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateReturnInput)
	}{
		{"missing renta_id", func(i *CreateReturnInput) { i.RentalID = uuid.Nil }},
		{"missing auto_id", func(i *CreateReturnInput) { i.CarID = uuid.Nil }},
		{"missing fecha_devolucion", func(i *CreateReturnInput) { i.ReturnedAt = time.Time{} }},
		{"missing estado_vehiculo", func(i *CreateReturnInput) { i.Condition = "" }},
		{"unknown estado_vehiculo", func(i *CreateReturnInput) { i.Condition = "pristine" }},
		{"missing recibido_por", func(i *CreateReturnInput) { i.ReceivedBy = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			assert.ErrorIs(t, input.Validate(), ErrValidation)
		})
	}
}

func TestReturnWireFieldNames(t *testing.T) {
	notes := "flat tire"
	ret := Return{
		ID:         uuid.New(),
		RentalID:   uuid.New(),
		CarID:      uuid.New(),
		ReturnedAt: time.Now(),
		Condition:  ConditionBad,
		Notes:      &notes,
		ReceivedBy: "Luis Mora",
	}

	raw, err := json.Marshal(ret)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"renta_id", "auto_id", "fecha_devolucion", "estado_vehiculo", "observaciones", "recibido_por"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "bad", decoded["estado_vehiculo"])
}
