package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Itinerary is the detailed day-plan document stored in MongoDB and
// referenced from Plan.Itineraries by hex id.
type Itinerary struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Locations    []Location         `bson:"locations" json:"locations"`
	Transports   []Transport        `bson:"allTransports" json:"allTransports"`
	Suggestions  []string           `bson:"suggestions" json:"suggestions"`
	ItineraryID  int                `bson:"itineraryId" json:"itineraryId"`
	TotalPrice   float64            `bson:"totalPrice" json:"totalPrice"`
}

type Note struct {
	Text  string `bson:"text" json:"text"`
	Theme string `bson:"theme" json:"theme"`
}

type PricedItem struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type LocationDetail struct {
	Coordinates   Coordinates  `bson:"coordinates" json:"coordinates"`
	Items         []PricedItem `bson:"items" json:"items"`
	Value         string       `bson:"value" json:"value"`
	ArrivalTime   string       `bson:"arrivalTime" json:"arrivalTime"`
	DepartureTime string       `bson:"departureTime" json:"departureTime"`
}

type Location struct {
	Name    string         `bson:"name" json:"name"`
	Type    string         `bson:"type" json:"type"`
	Subtype string         `bson:"subtype" json:"subtype"`
	Images  []string       `bson:"images" json:"images"`
	Notes   []Note         `bson:"notes" json:"notes"`
	Details LocationDetail `bson:"details" json:"details"`
}

// TransportLeg describes one outbound/return transport pairing between
// locations, with pricing for each direction.
type TransportLeg struct {
	Destination string  `bson:"destination" json:"destination"`
	NameTo      string  `bson:"nameTo" json:"nameTo"`
	PriceTo     float64 `bson:"priceTo" json:"priceTo"`
	TypeTo      string  `bson:"typeTo" json:"typeTo"`
	NameFrom    string  `bson:"nameFrom" json:"nameFrom"`
	PriceFrom   float64 `bson:"priceFrom" json:"priceFrom"`
	TypeFrom    string  `bson:"typeFrom" json:"typeFrom"`
}

type Transport struct {
	Notes   []Note         `bson:"notes" json:"notes"`
	Details []TransportLeg `bson:"details" json:"details"`
}
