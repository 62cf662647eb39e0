package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"relaxan/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
	"github.com/shopspring/decimal"
)

// priceWindow is how far a product price may deviate from the requested one.
var priceWindow = decimal.NewFromInt(3)

// Service holds the product catalog. The catalog is loaded once at startup
// and stays fixed for the process lifetime; the refresh job only rewrites the
// file for the next start.
type Service struct {
	products []Product
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	data, err := os.ReadFile(cfg.Catalog.File)
	if err != nil {
		return nil, oops.Errorf("failed to read catalog file: %w", err)
	}

	var products []Product
	if err = json.Unmarshal(data, &products); err != nil {
		return nil, oops.Errorf("failed to parse catalog file: %w", err)
	}

	slog.Info("Catalog loaded",
		"file", cfg.Catalog.File,
		"products", len(products),
	)

	return &Service{products: products}, nil
}

// NewWithProducts builds a catalog service over an already materialized
// product list.
func NewWithProducts(products []Product) *Service {
	return &Service{products: products}
}

func (s *Service) Products() []Product {
	return s.products
}

// Find returns every product satisfying all non-empty criteria, in catalog
// order.
func (s *Service) Find(criteria Criteria) []Product {
	var matches []Product

	for _, product := range s.products {
		if criteria.Name != "" && !isSimilarName(criteria.Name, product.Name) {
			continue
		}
		if criteria.Color != "" && !isSimilarColor(criteria.Color, product.Color) {
			continue
		}
		if criteria.Size != "" && criteria.Size != product.Size {
			continue
		}
		if criteria.CompressionClass != "" && !isSimilarCompression(criteria.CompressionClass, product.CompressionClass) {
			continue
		}
		if criteria.Country != "" && !isSimilarCountry(criteria.Country, product.Country) {
			continue
		}
		if criteria.Manufacturer != "" && !isSimilarManufacturer(criteria.Manufacturer, product.Manufacturer) {
			continue
		}
		if criteria.Price != "" && !priceInWindow(criteria.Price, product.Price) {
			continue
		}

		matches = append(matches, product)
	}

	return matches
}

// priceInWindow reports whether the product price lies within priceWindow of
// the requested price. An unparseable requested price excludes the product
// instead of lifting the filter.
func priceInWindow(keyword, productPrice string) bool {
	wanted, err := decimal.NewFromString(keyword)
	if err != nil {
		slog.Warn("Invalid price format", "price", keyword)
		return false
	}

	actual, err := decimal.NewFromString(productPrice)
	if err != nil {
		slog.Warn("Invalid product price in catalog", "price", productPrice)
		return false
	}

	return actual.Sub(wanted).Abs().LessThanOrEqual(priceWindow)
}
