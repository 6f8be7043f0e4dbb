package models

// UnnamedShop is the display name used when the backend supplies no name tag.
const UnnamedShop = "Unnamed Shop"

// PointOfInterest is one discovered shop, ready for rendering.
type PointOfInterest struct {
	ID          string      `json:"id"`
	Coordinates Coordinates `json:"coordinates"`
	DisplayName string      `json:"display_name"`
}

// LookupResult is the outcome of one successful lookup. It always replaces the previous one in full.
type LookupResult struct {
	Center           Coordinates       `json:"center"`
	PointsOfInterest []PointOfInterest `json:"points_of_interest"`
}

// ViewportState is the visible map region.
type ViewportState struct {
	Center Coordinates `json:"center"`
	Zoom   int         `json:"zoom"`
}
