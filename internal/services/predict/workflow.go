package predict

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"turak/internal/api"
	"turak/internal/domain"
)

var (
	// ErrInvalidForm is returned when a numeric field does not parse as an
	// integer. No network call is made.
	ErrInvalidForm = errors.New("bedrooms, bathrooms, floors and sqft must be whole numbers")

	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission has not resolved. The in-flight flag is authoritative, not
	// advisory: re-entrant submits are rejected, never raced.
	ErrSubmitInFlight = errors.New("a prediction is already in flight")

	// ErrUnknownField is returned by SetField for a field name outside the form.
	ErrUnknownField = errors.New("unknown form field")
)

// Workflow is one prediction form. Price and rent share every field and
// behavior; only the endpoint and the result key differ, so both are
// instances of this type (see NewPrice and NewRent).
type Workflow struct {
	apiClient domain.APIClient
	notify    domain.Notifier
	endpoint  string
	field     string

	mu       sync.Mutex
	form     domain.PredictionForm
	result   *float64
	inFlight bool
}

// New constructs a workflow posting to endpoint and reading the result from
// the given response field.
func New(apiClient domain.APIClient, notify domain.Notifier, endpoint, field string) *Workflow {
	return &Workflow{
		apiClient: apiClient,
		notify:    notify,
		endpoint:  endpoint,
		field:     field,
		form: domain.PredictionForm{
			PropertyType: domain.PropertyApartment,
			Region:       domain.RegionBishkek,
		},
	}
}

// NewPrice returns the sale-price instance.
func NewPrice(apiClient domain.APIClient, notify domain.Notifier) *Workflow {
	return New(apiClient, notify, "/predict/price/", "price")
}

// NewRent returns the monthly-rent instance.
func NewRent(apiClient domain.APIClient, notify domain.Notifier) *Workflow {
	return New(apiClient, notify, "/predict/rent/", "rent")
}

// SetField mutates one form field by name. has_pool parses as a bool; the
// numeric fields stay raw strings until Submit validates them.
func (w *Workflow) SetField(name, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch name {
	case "bedrooms":
		w.form.Bedrooms = value
	case "bathrooms":
		w.form.Bathrooms = value
	case "floors":
		w.form.Floors = value
	case "sqft":
		w.form.Sqft = value
	case "has_pool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("has_pool: %w", err)
		}
		w.form.HasPool = b
	case "property_type":
		w.form.PropertyType = value
	case "region":
		w.form.Region = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Form returns a snapshot of the current field values.
func (w *Workflow) Form() domain.PredictionForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Submit validates the form, posts it, and stores the returned number.
//
// Validation and network failures both leave the previous result untouched;
// only a successful response replaces it. While a submission is in flight
// further submits return ErrSubmitInFlight.
func (w *Workflow) Submit(ctx context.Context) (float64, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return 0, ErrSubmitInFlight
	}

	req, err := parseForm(w.form)
	if err != nil {
		w.mu.Unlock()
		w.notify.Error("Please enter valid numeric values")
		return 0, err
	}

	w.inFlight = true
	w.mu.Unlock()

	var resp map[string]float64
	postErr := w.apiClient.Post(ctx, w.endpoint, req, &resp)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight = false

	if postErr != nil {
		w.notify.Error(api.UserMessage(postErr, "Prediction failed"))
		return 0, postErr
	}
	value, ok := resp[w.field]
	if !ok {
		err := fmt.Errorf("prediction response missing %q", w.field)
		w.notify.Error("Prediction failed")
		return 0, err
	}
	w.result = &value
	w.notify.Success("Prediction ready")
	return value, nil
}

// Result returns the last successful prediction, if any.
func (w *Workflow) Result() (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return 0, false
	}
	return *w.result, true
}

// ResetResult clears the stored prediction.
func (w *Workflow) ResetResult() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.result = nil
}

// InFlight reports whether a submission is unresolved.
func (w *Workflow) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

// Compile-time assertion that Workflow implements domain.PredictionWorkflow.
var _ domain.PredictionWorkflow = (*Workflow)(nil)
