package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "100", want: "100"},
		{input: "10.99", want: "10.99"},
		{input: "20.5", want: "20.5"},
		{input: "0", want: "0"},
		{input: "10,99", wantErr: ErrNumberFormat},
		{input: "1.", wantErr: ErrNumberFormat},
		{input: ".5", wantErr: ErrNumberFormat},
		{input: "1.234", wantErr: ErrNumberFormat},
		{input: "-1", wantErr: ErrNumberFormat},
		{input: " 1", wantErr: ErrNumberFormat},
		{input: "1e3", wantErr: ErrNumberFormat},
		{input: "", wantErr: ErrNumberFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var numErr *NumberError
				require.True(t, errors.As(err, &numErr))
				assert.Equal(t, tt.input, numErr.Input)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseStock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{input: "50", want: 50},
		{input: "0", want: 0},
		{input: "007", want: 7},
		{input: "2147483647", want: MaxStock},
		{input: "2147483648", wantErr: ErrOutOfRange},
		{input: "9999999999999", wantErr: ErrOutOfRange},
		{input: "1.0", wantErr: ErrNumberFormat},
		{input: "1 000", wantErr: ErrNumberFormat},
		{input: "+1", wantErr: ErrNumberFormat},
		{input: "abc", wantErr: ErrNumberFormat},
		{input: "", wantErr: ErrNumberFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStock(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPrice_ProducesParsableText(t *testing.T) {
	for _, raw := range []string{"10.99", "100", "20.50", "0.01", "3.14159"} {
		d := decimal.RequireFromString(raw)
		text := FormatPrice(d)

		parsed, err := ParsePrice(text)
		require.NoError(t, err, "format of %s gave %q", raw, text)
		assert.True(t, d.Round(2).Equal(parsed))
	}
}
