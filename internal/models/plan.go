package models

import "github.com/lib/pq"

// Plan is a sellable bundle of itineraries with aggregate pricing and
// metadata. The detailed day-by-day content lives in the document store;
// Itineraries holds the ordered list of document reference ids. There is no
// foreign key across the two stores.
type Plan struct {
	BaseModel
	Name              string         `gorm:"not null" json:"name"`
	Description       string         `json:"description"`
	TotalDays         int            `json:"totalDays"`
	Itineraries       pq.StringArray `gorm:"type:text[]" json:"itineraries"`
	ImageUrls         pq.StringArray `gorm:"type:text[]" json:"imageUrls"`
	SelectedCountries pq.StringArray `gorm:"type:text[]" json:"selectedCountries"`
	Accommodations    pq.StringArray `gorm:"type:text[]" json:"accommodations"`
	Seasons           pq.StringArray `gorm:"type:text[]" json:"seasons"`
	TotalPrice        float64        `json:"totalPrice"`
	TotalCost         float64        `json:"totalCost"`
	Sell              bool           `gorm:"default:false" json:"sell"`
	UserID            uint           `gorm:"index;not null" json:"userId"`
}
