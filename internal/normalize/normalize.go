// Package normalize turns raw spatial backend matches into renderable points of interest.
package normalize

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/pitstop/internal/models"
)

// Normalize maps every feature to exactly one PointOfInterest, preserving input order.
// Features without usable coordinates are placed at (0,0) instead of being dropped,
// so indices and keys stay stable for the rendering layer.
func Normalize(features []models.RawFeature) []models.PointOfInterest {
	pois := make([]models.PointOfInterest, len(features))
	for i, f := range features {
		pois[i] = models.PointOfInterest{
			ID:          featureID(f, i),
			Coordinates: anchor(f),
			DisplayName: displayName(f),
		}
	}

	return pois
}

func anchor(f models.RawFeature) models.Coordinates {
	switch f.Kind {
	case models.FeatureKindPoint:
		if f.Point != nil {
			return *f.Point
		}
	case models.FeatureKindArea:
		if f.Centroid != nil {
			return *f.Centroid
		}
	}

	return models.Coordinates{}
}

func displayName(f models.RawFeature) string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}

	return models.UnnamedShop
}

// featureID falls back to the position in the result set when the backend sent no id.
func featureID(f models.RawFeature, idx int) string {
	if f.HasID {
		return strconv.FormatInt(f.ID, 10)
	}

	return "idx-" + strconv.Itoa(idx)
}
