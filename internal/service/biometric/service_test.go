package biometric

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-hr/hrms-backend-go/internal/domain/biometric"
)

func TestExtractDraftsPunchList(t *testing.T) {
	payload := map[string]any{
		"punches": []any{
			map[string]any{"employee_id": "EMP001", "timestamp": "2026-03-02T08:00:00", "direction": "in"},
			map[string]any{"employee_id": "EMP001", "timestamp": "2026-03-02T17:30:00", "direction": "out"},
		},
	}

	drafts := ExtractDrafts(nil, payload, time.UTC)
	require.Len(t, drafts, 2)

	require.NotNil(t, drafts[0].EmployeeIdentifier)
	assert.Equal(t, "EMP001", *drafts[0].EmployeeIdentifier)
	assert.Equal(t, time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), drafts[0].PunchTime)
	require.NotNil(t, drafts[0].Direction)
	assert.Equal(t, "in", *drafts[0].Direction)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC), drafts[1].PunchTime)
}

func TestExtractDraftsSinglePunchPayload(t *testing.T) {
	payload := map[string]any{
		"employee_id": "EMP002",
		"timestamp":   "2026-03-02 09:15:00",
	}

	drafts := ExtractDrafts(nil, payload, time.UTC)
	require.Len(t, drafts, 1)
	assert.Equal(t, "EMP002", *drafts[0].EmployeeIdentifier)
	assert.Equal(t, 9, drafts[0].PunchTime.Hour())
}

func TestExtractDraftsCustomMapping(t *testing.T) {
	mapping := &biometric.DataMapping{
		EmployeeIdentifierField: "badge",
		TimestampField:          "punched_at",
		DirectionField:          "dir",
	}
	payload := map[string]any{
		"punches": []any{
			map[string]any{"badge": "B-42", "punched_at": "2026-03-02T08:00:00Z", "dir": "in"},
		},
	}

	drafts := ExtractDrafts(mapping, payload, time.UTC)
	require.Len(t, drafts, 1)
	assert.Equal(t, "B-42", *drafts[0].EmployeeIdentifier)
	assert.Equal(t, "in", *drafts[0].Direction)
}

func TestExtractDraftsTimeFieldFallback(t *testing.T) {
	payload := map[string]any{
		"punches": []any{
			map[string]any{"employee_id": "EMP001", "time": "2026-03-02T08:00:00"},
		},
	}

	drafts := ExtractDrafts(nil, payload, time.UTC)
	require.Len(t, drafts, 1)
	assert.Equal(t, 8, drafts[0].PunchTime.Hour())
}

func TestExtractDraftsNaiveTimestampUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	payload := map[string]any{
		"employee_id": "EMP001",
		"timestamp":   "2026-03-02T08:00:00",
	}

	drafts := ExtractDrafts(nil, payload, loc)
	require.Len(t, drafts, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 8, 0, 0, 0, loc), drafts[0].PunchTime)
}

func TestExtractDraftsDropsUnparseableEntries(t *testing.T) {
	payload := map[string]any{
		"punches": []any{
			map[string]any{"employee_id": "EMP001", "timestamp": "garbage"},
			map[string]any{"employee_id": "EMP001"},
			"not-a-map",
			map[string]any{"employee_id": "EMP001", "timestamp": "2026-03-02T08:00:00"},
		},
	}

	drafts := ExtractDrafts(nil, payload, time.UTC)
	require.Len(t, drafts, 1)
	assert.Equal(t, 8, drafts[0].PunchTime.Hour())
}

func TestExtractDraftsNumericIdentifier(t *testing.T) {
	payload := map[string]any{
		"employee_id": float64(1024),
		"timestamp":   "2026-03-02T08:00:00",
	}

	drafts := ExtractDrafts(nil, payload, time.UTC)
	require.Len(t, drafts, 1)
	assert.Equal(t, "1024", *drafts[0].EmployeeIdentifier)
}

func TestNewWebhookTokenIsUniqueHex(t *testing.T) {
	a := newWebhookToken()
	b := newWebhookToken()
	assert.Len(t, a, 48)
	assert.NotEqual(t, a, b)
}
