package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentpay/internal/domains/escrow/service"
)

func TestPolicies_Select(t *testing.T) {
	policies, err := service.LoadPolicies("")
	require.NoError(t, err)

	tests := []struct {
		name    string
		policy  string
		notice  time.Duration
		wantBps int64
		wantOK  bool
	}{
		{name: "flexible a day ahead", policy: "flexible", notice: 24 * time.Hour, wantBps: 10000, wantOK: true},
		{name: "flexible same day", policy: "flexible", notice: 23 * time.Hour, wantOK: false},
		{name: "moderate five days ahead", policy: "moderate", notice: 130 * time.Hour, wantBps: 10000, wantOK: true},
		{name: "moderate two days ahead", policy: "moderate", notice: 48 * time.Hour, wantBps: 5000, wantOK: true},
		{name: "moderate same day", policy: "moderate", notice: 10 * time.Hour, wantOK: false},
		{name: "strict a week ahead", policy: "strict", notice: 200 * time.Hour, wantBps: 5000, wantOK: true},
		{name: "strict two days ahead", policy: "strict", notice: 48 * time.Hour, wantOK: false},
		{name: "policy names ignore case", policy: "Moderate", notice: 48 * time.Hour, wantBps: 5000, wantOK: true},
		{name: "unknown policy", policy: "super_strict", notice: 1000 * time.Hour, wantOK: false},
		{name: "cancelled after check-in", policy: "flexible", notice: -time.Hour, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, ok := policies.Select(tt.policy, tt.notice)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBps, tier.BasisPoints)
		})
	}
}

func TestLoadPolicies_File(t *testing.T) {
	dir := t.TempDir()

	t.Run("tiers are ordered by notice", func(t *testing.T) {
		path := filepath.Join(dir, "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"custom":[
			{"label":"late","min_hours":0,"basis_points":1000},
			{"label":"early","min_hours":72,"basis_points":9000}
		]}`), 0o600))

		policies, err := service.LoadPolicies(path)
		require.NoError(t, err)

		tier, ok := policies.Select("custom", 100*time.Hour)
		require.True(t, ok)
		assert.Equal(t, "early", tier.Label)

		tier, ok = policies.Select("custom", time.Hour)
		require.True(t, ok)
		assert.Equal(t, int64(1000), tier.BasisPoints)
	})

	t.Run("basis points above 100 percent", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"bad":[{"label":"x","min_hours":0,"basis_points":10001}]}`), 0o600))

		_, err := service.LoadPolicies(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := service.LoadPolicies(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})
}
