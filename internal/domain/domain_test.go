package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 1, 30, 0, 0, time.UTC)

	window := TrailingWindow(now, 14)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), window.To)
	assert.Equal(t, 13, window.Days())
	assert.Len(t, window.Dates(), 14)
	assert.False(t, window.Contains(now), "hoje nunca entra na janela")
}

func TestLatestOf(t *testing.T) {
	older := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	assert.Nil(t, LatestOf(nil, nil))
	assert.Equal(t, &older, LatestOf(&older, nil))
	assert.Equal(t, &newer, LatestOf(nil, &newer))
	assert.Equal(t, &newer, LatestOf(&older, &newer))
	assert.Equal(t, &newer, LatestOf(&newer, &older))
}

func TestParseCampaignStatus(t *testing.T) {
	tests := []struct {
		code    int
		want    CampaignStatus
		wantErr bool
	}{
		{code: -1, want: CampaignStatusDeleted},
		{code: 4, want: CampaignStatusReady},
		{code: 7, want: CampaignStatusCompleted},
		{code: 8, want: CampaignStatusDeclined},
		{code: 9, want: CampaignStatusActive},
		{code: 11, want: CampaignStatusPaused},
		{code: 0, wantErr: true},
		{code: 10, wantErr: true},
	}

	for _, tt := range tests {
		status, err := ParseCampaignStatus(tt.code)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownCampaignStatus)
			assert.Empty(t, status)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tt.want, status)

		code, err := status.Code()
		require.NoError(t, err)
		assert.Equal(t, tt.code, code)
	}
}

func TestParseCampaignType(t *testing.T) {
	for code := 4; code <= 9; code++ {
		campaignType, err := ParseCampaignType(code)
		require.NoError(t, err)

		back, err := campaignType.Code()
		require.NoError(t, err)
		assert.Equal(t, code, back)
	}

	_, err := ParseCampaignType(3)
	assert.ErrorIs(t, err, ErrUnknownCampaignType)

	_, err = CampaignType("UNKNOWN").Code()
	assert.ErrorIs(t, err, ErrUnknownCampaignType)
}

func TestRunSummary_Add(t *testing.T) {
	summary := RunSummary{Job: SyncJobWarehouses}
	summary.Add(SyncOutcomeSucceeded)
	summary.Add(SyncOutcomeFailed)
	summary.Add(SyncOutcomeSkipped)
	summary.Add(SyncOutcomeSucceeded)

	assert.Equal(t, 4, summary.Processed)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
}
