package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Image is a single illustration attached to an item.
type Image struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

// Item is built from a request body per request and never persisted.
type Item struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description,omitempty" validate:"max=300"`
	Price       decimal.Decimal  `json:"price" validate:"required,gt=0"`
	Tax         *decimal.Decimal `json:"tax,omitempty" validate:"omitempty,gt=0"`
	Tags        []string         `json:"tags"`
	Image       []Image          `json:"image,omitempty" validate:"omitempty,dive"`
}

// Normalize collapses duplicate tags and sorts them, so equal tag sets
// serialize identically. A missing tags field becomes an empty list.
func (i *Item) Normalize() {
	seen := make(map[string]bool, len(i.Tags))
	tags := make([]string, 0, len(i.Tags))
	for _, tag := range i.Tags {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	i.Tags = tags
}

// PriceWithTax returns price * (tax/100 + 1) in exact decimal arithmetic.
// The second return is false when no tax applies (absent or zero).
func (i *Item) PriceWithTax() (decimal.Decimal, bool) {
	if i.Tax == nil || i.Tax.IsZero() {
		return decimal.Decimal{}, false
	}
	rate := i.Tax.Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1))
	return i.Price.Mul(rate), true
}

// ItemEntry is one row of the fixed catalogue listing.
type ItemEntry struct {
	ItemName string `json:"item_name"`
}

// ModelName is the closed set of bundled model identifiers.
type ModelName string

// Model names.
const (
	ModelAlexNet ModelName = "alexnet"
	ModelResNet  ModelName = "resnet"
	ModelLeNet   ModelName = "lenet"
)
