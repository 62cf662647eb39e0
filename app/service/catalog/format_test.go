package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProduct(t *testing.T) {
	product := Product{
		Name:             "Гольфы компрессионные Relaxsan Basic, закрытый носок",
		Color:            "черный",
		Size:             "4",
		CompressionClass: "I - 18-21 mmHg",
		Country:          "Италия",
		Manufacturer:     "Relaxsan",
		Price:            "37.50",
		Stock: map[string]int{
			"пр-т Мира, 1": 6,
			"ТЦ Тивали":    4,
		},
	}

	expected := "Наименование: Гольфы компрессионные Relaxsan Basic\n" +
		"Цена: 37.50 BYN\n" +
		"Размер: 4\n" +
		"Компрессия: I - 18-21 mmHg\n" +
		"Цвет: черный\n" +
		"Магазины, где можно приобрести:\n" +
		"Магазин \"ТЦ Тивали\": 4 единиц\n" +
		"Магазин \"пр-т Мира, 1\": 6 единиц"

	assert.Equal(t, expected, FormatProduct(product))
}

func TestFormatProductIsIdempotent(t *testing.T) {
	product := Product{
		Name:  "Носки медицинские Aries Avicenum, для диабетиков",
		Price: "24.30",
		Stock: map[string]int{
			"ТЦ Тивали":               1,
			"пр-т Мира, 1":            2,
			"ул. Петра Мстиславца, 2": 3,
		},
	}

	assert.Equal(t, FormatProduct(product), FormatProduct(product))
}

func TestFormatProductWithoutComma(t *testing.T) {
	product := Product{
		Name:  "Гольфы Aries Avicenum 360",
		Stock: map[string]int{},
	}

	assert.Contains(t, FormatProduct(product), "Наименование: Гольфы Aries Avicenum 360\n")
}

func TestFormatProductTrimsNameBeforeComma(t *testing.T) {
	product := Product{
		Name:  "Чулки Medicale Soft , кружевная резинка",
		Stock: map[string]int{},
	}

	assert.Contains(t, FormatProduct(product), "Наименование: Чулки Medicale Soft\n")
}
