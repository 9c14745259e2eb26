package delivery

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/spbu-monitoring/spbu-dashboard-go/internal/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockDelivery_UnmarshalKeepsFieldOrder(t *testing.T) {
	var s StockDelivery
	err := json.Unmarshal([]byte(`{
		"id": 5,
		"volumeBiosolar": "50",
		"volumePertalite": 100,
		"volumePertamax": 0,
		"volume": 9,
		"createdAt": "2024-05-02T03:00:00Z",
		"spbuId": 2
	}`), &s)

	require.NoError(t, err)
	assert.Equal(t, "5", s.ID.String())
	require.Len(t, s.Volumes, 3)
	assert.Equal(t, "volumeBiosolar", s.Volumes[0].Field)
	assert.Equal(t, "Biosolar", s.Volumes[0].Name())
	assert.Equal(t, "100", s.Volume("volumePertalite").String())
	assert.True(t, s.Volume("volumeDexLite").IsZero())
	assert.Equal(t, 2, s.CreatedAt.Day())
}

func TestStockDelivery_RejectsNonNumericVolume(t *testing.T) {
	var s StockDelivery
	err := json.Unmarshal([]byte(`{"volumePertalite":"seratus"}`), &s)

	var pe *numeric.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "volumePertalite", pe.Field)
}

func TestStockDelivery_List(t *testing.T) {
	var list []StockDelivery
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"volumePertamax":"10.5"},{"id":2}]`), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "10.5", list[0].Volume("volumePertamax").String())
	assert.Empty(t, list[1].Volumes)
}
