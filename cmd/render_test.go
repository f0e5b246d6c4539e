package cmd

import (
	"bytes"
	"testing"

	"github.com/inovacc/clientdir/internal/encoding"
	"github.com/inovacc/clientdir/internal/model"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderClients_Golden(t *testing.T) {
	tests := []struct {
		name   string
		format encoding.Format
	}{
		{"list_table", encoding.FormatTable},
		{"list_json", encoding.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, renderClients(&buf, fixtureClients(), tt.format))
			newGoldie(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRenderClient_Golden(t *testing.T) {
	tests := []struct {
		name   string
		format encoding.Format
	}{
		{"show_table", encoding.FormatTable},
		{"show_yaml", encoding.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, renderClient(&buf, fixtureClients()[0], tt.format))
			newGoldie(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRenderClients_Empty(t *testing.T) {
	var table, js bytes.Buffer

	require.NoError(t, renderClients(&table, nil, encoding.FormatTable))
	require.Equal(t, "No clients found.\n", table.String())

	require.NoError(t, renderClients(&js, []model.Client{}, encoding.FormatJSON))
	require.Equal(t, "[]\n", js.String())
}
