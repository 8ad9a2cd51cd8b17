package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmgate/farmgate-api/internal/domain/enum"
)

func f(v float64) *float64 { return &v }

func TestParseConfigFlatRate(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    float64
	}{
		{"plain rate", []string{"0.05"}, 0.05},
		{"legacy prefix", []string{"flat:0.05"}, 0.05},
		{"whitespace", []string{"  0.12  "}, 0.12},
		{"zero rate", []string{"0"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig(enum.PricingModelFlatRate, tt.entries)
			require.NoError(t, err)
			assert.Equal(t, enum.PricingModelFlatRate, cfg.Model)
			require.NotNil(t, cfg.FlatRate)
			assert.Equal(t, tt.want, *cfg.FlatRate)
			assert.Empty(t, cfg.Tiers)
		})
	}
}

func TestParseConfigTiered(t *testing.T) {
	cfg, err := ParseConfig(enum.PricingModelTieredByWeight, []string{
		"0-10@0.06",
		"10-50@0.04",
		"50-+@0.02",
	})
	require.NoError(t, err)

	require.Len(t, cfg.Tiers, 3)
	assert.Equal(t, Tier{Min: 0, Max: f(10), Rate: 0.06}, cfg.Tiers[0])
	assert.Equal(t, Tier{Min: 10, Max: f(50), Rate: 0.04}, cfg.Tiers[1])
	assert.Equal(t, Tier{Min: 50, Max: nil, Rate: 0.02}, cfg.Tiers[2])
}

func TestParseConfigLegacyTierPrefixes(t *testing.T) {
	cfg, err := ParseConfig(enum.PricingModelTieredByWeight, []string{"w:0-10@0.06", "w:10-+@0.03"})
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 2)

	cfg, err = ParseConfig(enum.PricingModelTieredByDistance, []string{"d:0-100@0.05"})
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 1)
	assert.Equal(t, 0.05, cfg.Tiers[0].Rate)
}

func TestParseConfigSkipsMalformedEntries(t *testing.T) {
	cfg, err := ParseConfig(enum.PricingModelTieredByWeight, []string{
		"0-10@0.06",
		"garbage",
		"10-5@0.04", // max below min
		"x-20@0.04",
		"20-30@abc",
		"30-40@-1", // negative rate
		"40-+@0.02",
	})
	require.NoError(t, err)

	require.Len(t, cfg.Tiers, 2)
	assert.Equal(t, 0.06, cfg.Tiers[0].Rate)
	assert.Equal(t, 0.02, cfg.Tiers[1].Rate)
}

func TestParseConfigUnknownModel(t *testing.T) {
	_, err := ParseConfig(enum.PricingModel(99), []string{"0.05"})
	require.Error(t, err)
	assert.IsType(t, &ConfigurationError{}, err)
}

func TestParseConfigString(t *testing.T) {
	cfg, err := ParseConfigString(enum.PricingModelTieredByDistance, "0-50@0.05,50-200@0.03,200-+@0.01")
	require.NoError(t, err)
	require.Len(t, cfg.Tiers, 3)

	// An empty stored value yields no flat rate at all, not a rate of zero
	cfg, err = ParseConfigString(enum.PricingModelFlatRate, "")
	require.NoError(t, err)
	assert.Nil(t, cfg.FlatRate)
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		model enum.PricingModel
		raw   string
	}{
		{"flat", enum.PricingModelFlatRate, "0.05"},
		{"weight tiers", enum.PricingModelTieredByWeight, "0-10@0.06,10-50@0.04,50-+@0.02"},
		{"distance tiers", enum.PricingModelTieredByDistance, "0-100@0.05,100-+@0.02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfigString(tt.model, tt.raw)
			require.NoError(t, err)

			serialized := SerializeConfigString(cfg)
			assert.Equal(t, tt.raw, serialized)

			reparsed, err := ParseConfigString(tt.model, serialized)
			require.NoError(t, err)
			assert.Equal(t, cfg, reparsed)
		})
	}
}

func TestTierContains(t *testing.T) {
	bounded := Tier{Min: 10, Max: f(50), Rate: 0.04}
	assert.False(t, bounded.Contains(9.99))
	assert.True(t, bounded.Contains(10)) // min is inclusive
	assert.True(t, bounded.Contains(49.99))
	assert.False(t, bounded.Contains(50)) // max is exclusive

	unbounded := Tier{Min: 50, Rate: 0.02}
	assert.True(t, unbounded.Contains(50))
	assert.True(t, unbounded.Contains(1e9))
	assert.False(t, unbounded.Contains(49.99))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			"valid flat",
			&Config{Model: enum.PricingModelFlatRate, FlatRate: f(0.05)},
			false,
		},
		{
			"explicit zero flat rate",
			&Config{Model: enum.PricingModelFlatRate, FlatRate: f(0)},
			false,
		},
		{
			"missing flat rate",
			&Config{Model: enum.PricingModelFlatRate},
			true,
		},
		{
			"negative flat rate",
			&Config{Model: enum.PricingModelFlatRate, FlatRate: f(-1)},
			true,
		},
		{
			"valid tiers",
			&Config{Model: enum.PricingModelTieredByWeight, Tiers: []Tier{
				{Min: 0, Max: f(10), Rate: 0.06},
				{Min: 10, Rate: 0.04},
			}},
			false,
		},
		{
			"no tiers",
			&Config{Model: enum.PricingModelTieredByWeight},
			true,
		},
		{
			"overlapping tiers",
			&Config{Model: enum.PricingModelTieredByWeight, Tiers: []Tier{
				{Min: 0, Max: f(20), Rate: 0.06},
				{Min: 10, Max: f(30), Rate: 0.04},
			}},
			true,
		},
		{
			"tier after unbounded",
			&Config{Model: enum.PricingModelTieredByDistance, Tiers: []Tier{
				{Min: 0, Rate: 0.06},
				{Min: 10, Max: f(30), Rate: 0.04},
			}},
			true,
		},
		{
			"negative tier rate",
			&Config{Model: enum.PricingModelTieredByWeight, Tiers: []Tier{
				{Min: 0, Max: f(10), Rate: -0.01},
			}},
			true,
		},
		{
			"gap between tiers is allowed",
			&Config{Model: enum.PricingModelTieredByWeight, Tiers: []Tier{
				{Min: 0, Max: f(10), Rate: 0.06},
				{Min: 20, Max: f(30), Rate: 0.04},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &ConfigurationError{}, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
