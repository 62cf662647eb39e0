package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elliotchance/pie/v2"
)

// FormatProduct renders a product card for the chat. The display name is the
// catalog name cut at the first comma; stock lines are sorted by store name
// so repeated calls produce identical output.
func FormatProduct(product Product) string {
	name := product.Name
	if index := strings.Index(name, ","); index != -1 {
		name = strings.TrimRight(name[:index], " ")
	}

	stores := pie.Keys(product.Stock)
	sort.Strings(stores)

	stockLines := pie.Map(stores, func(store string) string {
		return fmt.Sprintf("Магазин \"%s\": %d единиц", store, product.Stock[store])
	})

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Наименование: %s\n", name))
	builder.WriteString(fmt.Sprintf("Цена: %s BYN\n", product.Price))
	builder.WriteString(fmt.Sprintf("Размер: %s\n", product.Size))
	builder.WriteString(fmt.Sprintf("Компрессия: %s\n", product.CompressionClass))
	builder.WriteString(fmt.Sprintf("Цвет: %s\n", product.Color))
	builder.WriteString("Магазины, где можно приобрести:\n")
	builder.WriteString(strings.Join(stockLines, "\n"))

	return builder.String()
}
