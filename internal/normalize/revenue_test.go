package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"billions", 2e9, "$2B"},
		{"half rounds up", 1.5e9, "$2B"},
		{"millions", 10e6, "$10M"},
		{"two and a half million", 2.5e6, "$3M"},
		{"thousands", 50e3, "$50K"},
		{"under a thousand renders literally", 999, "$999"},
		{"zero is empty", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount))
		})
	}
}

func TestRevenue(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want string
	}{
		{
			name: "pair array",
			raw:  Raw{"revenueRange": []any{float64(10e6), float64(50e6)}},
			want: "$10M to $50M",
		},
		{
			name: "comma joined string",
			raw:  Raw{"revenueRange": "1000000,5000000"},
			want: "$1M to $5M",
		},
		{
			name: "min max object",
			raw:  Raw{"revenueRange": map[string]any{"min": float64(1e6), "max": float64(5e6)}},
			want: "$1M to $5M",
		},
		{
			name: "object with display string wins",
			raw:  Raw{"revenueRange": map[string]any{"string": "$10M-$50M", "min": float64(1)}},
			want: "$10M-$50M",
		},
		{
			name: "min only",
			raw:  Raw{"revenueRange": []any{float64(1e6), float64(0)}},
			want: "$1M+",
		},
		{
			name: "max only",
			raw:  Raw{"revenueRange": map[string]any{"max": float64(5e6)}},
			want: "Up to $5M",
		},
		{
			name: "plain revenue number",
			raw:  Raw{"revenue": float64(3e9)},
			want: "$3B",
		},
		{
			name: "annualRevenue fallback",
			raw:  Raw{"annualRevenue": "2000000"},
			want: "$2M",
		},
		{
			name: "unparseable string comes back unchanged",
			raw:  Raw{"revenue": "confidential"},
			want: "confidential",
		},
		{
			name: "absent",
			raw:  Raw{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Revenue(tt.raw))
		})
	}
}
