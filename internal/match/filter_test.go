package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestFilterInputToFilter(t *testing.T) {
	tests := []struct {
		name string
		in   FilterInput
		want Filter
	}{
		{
			"empty input means no filter",
			FilterInput{},
			Filter{},
		},
		{
			"tag and genre pass through",
			FilterInput{Tag: "Co-op", Genre: "Action"},
			Filter{Tag: "Co-op", Genre: "Action"},
		},
		{
			"free",
			FilterInput{Price: "free"},
			Filter{Price: PriceFree},
		},
		{
			"under10",
			FilterInput{Price: "under10"},
			Filter{Price: PriceUnderTen},
		},
		{
			"under40",
			FilterInput{Price: "under40"},
			Filter{Price: PriceUnderForty},
		},
		{
			"named predicate beats explicit bounds",
			FilterInput{Price: "free", MinPrice: ptr(5), MaxPrice: ptr(10)},
			Filter{Price: PriceFree},
		},
		{
			"range from bounds",
			FilterInput{MinPrice: ptr(5), MaxPrice: ptr(10)},
			Filter{Price: PriceRange, MinPrice: 5, MaxPrice: 10},
		},
		{
			"inverted bounds ignored",
			FilterInput{MinPrice: ptr(10), MaxPrice: ptr(5)},
			Filter{},
		},
		{
			"missing max ignored",
			FilterInput{MinPrice: ptr(5)},
			Filter{},
		},
		{
			"unknown price keyword falls through",
			FilterInput{Price: "cheap"},
			Filter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.ToFilter())
		})
	}
}
