package catalog

// Product is a single catalog entry. The catalog file is regenerated by an
// external parsing script, so field names follow its output.
type Product struct {
	Name             string         `json:"name"`
	Color            string         `json:"color"`
	Size             string         `json:"size"`
	CompressionClass string         `json:"compression_class"`
	Country          string         `json:"country"`
	Manufacturer     string         `json:"manufacturer"`
	Price            string         `json:"price"`
	Stock            map[string]int `json:"stock"`
}

// Criteria is a partial set of search attributes. Empty fields impose no
// constraint.
type Criteria struct {
	Name             string
	Color            string
	Size             string
	CompressionClass string
	Country          string
	Manufacturer     string
	Price            string
}
