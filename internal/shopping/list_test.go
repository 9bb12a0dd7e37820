package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderEmptyList(t *testing.T) {
	assert.Equal(t, "", Render(nil))
}

func TestRenderFormatsLines(t *testing.T) {
	items := []ListItem{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 250},
		{Name: "milk", MeasurementUnit: "ml", TotalAmount: 187.5},
	}

	assert.Equal(t, "flour | g | 250\nmilk | ml | 187.5", Render(items))
}

func TestRenderWholeAmountsHaveNoDecimalPoint(t *testing.T) {
	items := []ListItem{
		{Name: "sugar", MeasurementUnit: "g", TotalAmount: 100.0},
	}

	assert.Equal(t, "sugar | g | 100", Render(items))
}
