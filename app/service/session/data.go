package session

import "relaxan/app/service/classify"

// Attributes is the remembered, searchable part of a user's conversation.
type Attributes struct {
	Name             string
	Color            string
	Size             string
	CompressionClass string
	Country          string
	Manufacturer     string
	Price            string
}

// Merge combines the remembered attributes with this turn's intent. Name,
// color, size and price carry over when not re-stated; compression class,
// country and manufacturer are taken from the current turn verbatim and never
// carry over. The asymmetry is intentional: the narrow filters would
// otherwise keep shrinking every follow-up search.
func (a Attributes) Merge(intent *classify.Intent) Attributes {
	merged := Attributes{
		Name:             intent.Name,
		Color:            intent.Color,
		Size:             intent.Size,
		CompressionClass: intent.CompressionClass,
		Country:          intent.Country,
		Manufacturer:     intent.Manufacturer,
		Price:            intent.Price,
	}

	if merged.Name == "" {
		merged.Name = a.Name
	}
	if merged.Color == "" {
		merged.Color = a.Color
	}
	if merged.Size == "" {
		merged.Size = a.Size
	}
	if merged.Price == "" {
		merged.Price = a.Price
	}

	return merged
}

// LeadDraft accumulates order contact details across turns.
type LeadDraft struct {
	FullName string
	Phone    string
	City     string
}

func (d LeadDraft) Complete() bool {
	return d.FullName != "" && d.Phone != "" && d.City != ""
}

// State is everything remembered about one user.
type State struct {
	Attributes Attributes
	// Collecting is set after the user agreed to place an order and cleared
	// once the lead is submitted or cancelled.
	Collecting bool
	Lead       LeadDraft
}
