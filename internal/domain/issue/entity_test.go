package issue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_DateFallbacks(t *testing.T) {
	var reports []Report
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":1,"tanggalLaporan":"2024-05-01","tanggal":"2024-05-02","createdAt":"2024-05-03T00:00:00Z"},
		{"id":2,"tanggalLaporan":null,"tanggal":"2024-05-02","createdAt":"2024-05-03T00:00:00Z"},
		{"id":3,"createdAt":"2024-05-03T00:00:00Z"}
	]`), &reports))

	assert.Equal(t, 1, reports[0].Date().Day())
	assert.Equal(t, 2, reports[1].Date().Day())
	assert.Equal(t, 3, reports[2].Date().Day())
	assert.Equal(t, "-", reports[2].UserName())
}

func TestDamage_Resolved(t *testing.T) {
	var d Damage
	require.NoError(t, json.Unmarshal([]byte(`{"namaUnit":"Dispenser 2","tanggalKerusakan":"2024-05-01T02:00:00Z","tanggalPerbaikanSelesai":null}`), &d))
	assert.False(t, d.Resolved())
	assert.Equal(t, 1, d.Date().Day())

	require.NoError(t, json.Unmarshal([]byte(`{"tanggalPerbaikanSelesai":"2024-05-04"}`), &d))
	assert.True(t, d.Resolved())
}
