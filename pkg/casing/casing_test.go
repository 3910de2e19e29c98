package casing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/casing"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"meatball", "Meatball"},
		{"Meatball", "Meatball"},
		{"meatball_sub", "MeatballSub"},
		{"meatball-sub", "MeatballSub"},
		{"meatball sub", "MeatballSub"},
		{"meatball.sub", "MeatballSub"},
		{"meatballSub", "MeatballSub"},
		{"MeatballSub", "MeatballSub"},
		{"UUIDv4", "UuiDv4"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, casing.Pascal(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"meatball", "meatball"},
		{"Meatball", "meatball"},
		{"meatball_sub", "meatballSub"},
		{"spicy-sausage", "spicySausage"},
		{"MeatballSub", "meatballSub"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, casing.Camel(tt.input))
		})
	}
}

func TestSplitBoundaries(t *testing.T) {
	t.Run("acronym runs stay together", func(t *testing.T) {
		assert.Equal(t, "httpServer", casing.Camel("HTTPServer"))
		assert.Equal(t, "HttpServer", casing.Pascal("HTTPServer"))
	})

	t.Run("consecutive separators collapse", func(t *testing.T) {
		assert.Equal(t, "AB", casing.Pascal("a__b"))
		assert.Equal(t, "AB", casing.Pascal("a-.b"))
	})
}
