package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFTSQuery(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{name: "empty is not searched", raw: "", want: "", wantOK: false},
		{name: "whitespace only", raw: "   \t", want: "", wantOK: false},
		{name: "single word", raw: "Nile", want: `"Nile"`, wantOK: true},
		{name: "words become an implicit AND", raw: "up the  Nile", want: `"up" "the" "Nile"`, wantOK: true},
		{name: "embedded quotes are doubled", raw: `He said "hi"`, want: `"He" "said" """hi"""`, wantOK: true},
		{name: "operators are literals", raw: "Nile OR NOT Cairo*", want: `"Nile" "OR" "NOT" "Cairo*"`, wantOK: true},
		{name: "column filter syntax is neutralised", raw: "summary:Nile", want: `"summary:Nile"`, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FTSQuery(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
