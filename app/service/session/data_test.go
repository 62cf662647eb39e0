package session

import (
	"testing"

	"relaxan/app/service/classify"

	"github.com/stretchr/testify/assert"
)

func TestMergeCarryOver(t *testing.T) {
	prev := Attributes{
		Name:  "гольфы",
		Color: "черный",
		Size:  "4",
		Price: "50",
	}

	merged := prev.Merge(&classify.Intent{Size: "3"})

	assert.Equal(t, "гольфы", merged.Name)
	assert.Equal(t, "черный", merged.Color)
	assert.Equal(t, "3", merged.Size)
	assert.Equal(t, "50", merged.Price)
}

func TestMergeAsymmetry(t *testing.T) {
	prev := Attributes{
		Name:             "гольфы",
		Country:          "Чехия",
		Manufacturer:     "Calze",
		CompressionClass: "I",
	}

	merged := prev.Merge(&classify.Intent{Name: "носки"})

	assert.Equal(t, "носки", merged.Name)
	assert.Empty(t, merged.Country)
	assert.Empty(t, merged.Manufacturer)
	assert.Empty(t, merged.CompressionClass)
}

func TestMergeNewValuesWin(t *testing.T) {
	prev := Attributes{Name: "гольфы", Color: "черный"}

	merged := prev.Merge(&classify.Intent{
		Name:    "чулки",
		Color:   "бежевый",
		Country: "Италия",
	})

	assert.Equal(t, "чулки", merged.Name)
	assert.Equal(t, "бежевый", merged.Color)
	assert.Equal(t, "Италия", merged.Country)
}

func TestLeadDraftComplete(t *testing.T) {
	assert.False(t, LeadDraft{}.Complete())
	assert.False(t, LeadDraft{FullName: "Иванов Сергей Андреевич", Phone: "+375257903263"}.Complete())
	assert.True(t, LeadDraft{FullName: "Иванов Сергей Андреевич", Phone: "+375257903263", City: "Минск"}.Complete())
}
