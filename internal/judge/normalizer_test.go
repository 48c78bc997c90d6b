package judge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"decisionengine/internal/domain"
)

func Test_ValidateTicker(t *testing.T) {
	t.Run("canonicalizes to uppercase", func(t *testing.T) {
		symbol, err := ValidateTicker("  aapl ")
		require.NoError(t, err)
		require.Equal(t, "AAPL", symbol)
	})

	t.Run("allows share class separators", func(t *testing.T) {
		symbol, err := ValidateTicker("brk-b")
		require.NoError(t, err)
		require.Equal(t, "BRK-B", symbol)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ValidateTicker("   ")
		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects non-alphanumeric", func(t *testing.T) {
		for _, bad := range []string{"AA PL", "AAPL$", "-AAPL", "AAPL.", "VERYLONGSYMBOL"} {
			_, err := ValidateTicker(bad)
			var validationErr domain.ValidationError
			require.ErrorAs(t, err, &validationErr, "expected %q to be rejected", bad)
		}
	})
}

func Test_Normalize(t *testing.T) {
	t.Run("marker and garbage become no value, zero stays zero", func(t *testing.T) {
		snap, err := Normalize(domain.RawMetrics{
			Ticker:              "aapl",
			CurrentPrice:        189.5,
			PERatio:             domain.NotAvailable,
			MarketCap:           "not a number",
			RevenueGrowthYoYPct: 0.0,
			EPSGrowthPct:        "12.5",
		})
		require.NoError(t, err)

		require.Equal(t, "AAPL", snap.Ticker)
		require.NotNil(t, snap.CurrentPrice)
		require.Equal(t, 189.5, *snap.CurrentPrice)
		require.Nil(t, snap.PERatio)
		require.Nil(t, snap.MarketCap)
		// zero is a real measurement, not missing data
		require.NotNil(t, snap.RevenueGrowthYoYPct)
		require.Equal(t, 0.0, *snap.RevenueGrowthYoYPct)
		require.NotNil(t, snap.EPSGrowthPct)
		require.Equal(t, 12.5, *snap.EPSGrowthPct)
		require.Nil(t, snap.Return30DPct)
		require.Nil(t, snap.VolatilityProxy)
	})

	t.Run("data available requires price, pe, and one growth metric", func(t *testing.T) {
		tests := []struct {
			name string
			raw  domain.RawMetrics
			want bool
		}{
			{
				name: "price, pe and revenue growth",
				raw:  domain.RawMetrics{Ticker: "A", CurrentPrice: 10.0, PERatio: 15.0, RevenueGrowthYoYPct: 5.0},
				want: true,
			},
			{
				name: "price, pe and eps growth",
				raw:  domain.RawMetrics{Ticker: "A", CurrentPrice: 10.0, PERatio: 15.0, EPSGrowthPct: 5.0},
				want: true,
			},
			{
				name: "missing pe",
				raw:  domain.RawMetrics{Ticker: "A", CurrentPrice: 10.0, PERatio: domain.NotAvailable, RevenueGrowthYoYPct: 5.0},
				want: false,
			},
			{
				name: "missing both growth metrics",
				raw:  domain.RawMetrics{Ticker: "A", CurrentPrice: 10.0, PERatio: 15.0, Return30DPct: 2.0, VolatilityProxy: 0.3},
				want: false,
			},
			{
				name: "missing price",
				raw:  domain.RawMetrics{Ticker: "A", PERatio: 15.0, RevenueGrowthYoYPct: 5.0},
				want: false,
			},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				snap, err := Normalize(tc.raw)
				require.NoError(t, err)
				require.Equal(t, tc.want, snap.DataAvailable)
			})
		}
	})

	t.Run("rejects malformed ticker before normalizing", func(t *testing.T) {
		_, err := Normalize(domain.RawMetrics{Ticker: "", CurrentPrice: 10.0})
		var validationErr domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
	})
}
