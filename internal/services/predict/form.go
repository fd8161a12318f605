package predict

import (
	"strconv"

	"turak/internal/domain"
)

// parseForm converts the raw form into its wire shape, enforcing the one
// piece of client-side validation in the system: the four numeric fields
// must parse as integers.
func parseForm(form domain.PredictionForm) (domain.PredictionRequest, error) {
	bedrooms, err1 := strconv.Atoi(form.Bedrooms)
	bathrooms, err2 := strconv.Atoi(form.Bathrooms)
	floors, err3 := strconv.Atoi(form.Floors)
	sqft, err4 := strconv.Atoi(form.Sqft)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return domain.PredictionRequest{}, ErrInvalidForm
	}
	return domain.PredictionRequest{
		Bedrooms:     bedrooms,
		Bathrooms:    bathrooms,
		Floors:       floors,
		Sqft:         sqft,
		HasPool:      form.HasPool,
		PropertyType: form.PropertyType,
		Region:       form.Region,
	}, nil
}
