package email

import (
	"database/sql"
	"testing"
	"time"

	"medicine_expiry_notifier/internal/domain/medicine"

	"github.com/stretchr/testify/require"
)

func TestRenderConsolidated(t *testing.T) {
	html, err := renderConsolidated("Medicine Expiry Reminder", "Medicines expiring this week:\n- Ibuprofen: expires 10 Jun 2025 (2 days left)\n")
	require.NoError(t, err)
	require.Contains(t, html, "<pre")
	require.Contains(t, html, "Medicine Expiry Reminder")
	require.Contains(t, html, "- Ibuprofen: expires 10 Jun 2025 (2 days left)")
}

func TestRenderConsolidated_EscapesMarkup(t *testing.T) {
	html, err := renderConsolidated("Reminder", "<script>alert(1)</script>")
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestRenderSingle(t *testing.T) {
	med := &medicine.Medicine{
		ID:          1,
		Name:        "Ibuprofen",
		ExpiryDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Quantity:    12,
		BatchNumber: sql.NullString{String: "B-42", Valid: true},
	}

	html, err := renderSingle(med)
	require.NoError(t, err)
	require.Contains(t, html, "<table")
	require.Contains(t, html, "Ibuprofen")
	require.Contains(t, html, "10 Jun 2025")
	require.Contains(t, html, "B-42")
}

func TestRenderSingle_OmitsMissingBatch(t *testing.T) {
	med := &medicine.Medicine{
		ID:         1,
		Name:       "Ibuprofen",
		ExpiryDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Quantity:   12,
	}

	html, err := renderSingle(med)
	require.NoError(t, err)
	require.NotContains(t, html, "Batch")
}
