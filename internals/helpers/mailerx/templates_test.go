package mailerx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTanggalIndo(t *testing.T) {
	ts := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local) // Kamis
	assert.Equal(t, "Kamis, 15 Januari 2026", FormatTanggalIndo(ts))
}

func TestReapplyDateIsThreeDaysOut(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2026, 1, 18, 10, 0, 0, 0, time.Local), ReapplyDate(now))
}

func TestRenderApprovalEmbedsCredentials(t *testing.T) {
	body, err := renderApproval("Budi", "budi@mail.com", "MGG2026011512345", "rahasia123", time.Now())
	require.NoError(t, err)
	assert.True(t, strings.Contains(body, "budi@mail.com"))
	assert.True(t, strings.Contains(body, "rahasia123"))
	assert.True(t, strings.Contains(body, "MGG2026011512345"))
}

func TestRenderRejectionEmbedsReasonAndReapplyDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	body, err := renderRejection("Budi", "MGG2026011512345", "Dokumen tidak lengkap", now)
	require.NoError(t, err)
	assert.True(t, strings.Contains(body, "Dokumen tidak lengkap"))
	assert.True(t, strings.Contains(body, "18 Januari 2026"))
}
