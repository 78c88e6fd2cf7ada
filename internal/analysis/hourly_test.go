package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ieso-dashboard/internal/model"
)

func TestAverageByHour(t *testing.T) {
	records := []model.HourlyRecord{
		rec("2025-05-01", 1, "A", 10),
		rec("2025-05-01", 1, "B", 20), // hour 1 averages 15
		rec("2025-05-02", 1, "A", 15), // across days too: (10+20+15)/3
		rec("2025-05-01", 2, "A", 40),
	}
	records[0].LMPRealTime = 6
	records[1].LMPRealTime = 8

	rows := AverageByHour(records)
	require.Len(t, rows, 2)

	require.Equal(t, 1, rows[0].DeliveryHour)
	require.Equal(t, 3, rows[0].Count)
	require.InDelta(t, 15.0, rows[0].LMPDayAhead, 1e-9)
	require.InDelta(t, 14.0/3.0, rows[0].LMPRealTime, 1e-9)

	require.Equal(t, 2, rows[1].DeliveryHour)
	require.Equal(t, 1, rows[1].Count)
	require.InDelta(t, 40.0, rows[1].LMPDayAhead, 1e-9)
}

func TestAverageByHourOrderedByHour(t *testing.T) {
	records := []model.HourlyRecord{
		rec("2025-05-01", 23, "A", 1),
		rec("2025-05-01", 2, "A", 1),
		rec("2025-05-01", 11, "A", 1),
	}

	rows := AverageByHour(records)
	require.Len(t, rows, 3)
	require.Equal(t, 2, rows[0].DeliveryHour)
	require.Equal(t, 11, rows[1].DeliveryHour)
	require.Equal(t, 23, rows[2].DeliveryHour)
}

func TestAverageByHourEmptyInput(t *testing.T) {
	require.Empty(t, AverageByHour(nil))
}
