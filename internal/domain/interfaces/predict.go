package interfaces

import (
	"context"

	domaintypes "turak/internal/domain/types"
)

// PredictionWorkflow is one parameterized predict form (price or rent: same
// fields, different endpoint and result field). Submit is single-flight: a
// second submission while one is in flight is rejected, not raced.
type PredictionWorkflow interface {
	SetField(name, value string) error
	Form() domaintypes.PredictionForm
	Submit(ctx context.Context) (float64, error)
	Result() (float64, bool)
	ResetResult()
	InFlight() bool
}

// PredictionHistory reads the server-kept log of past predictions.
type PredictionHistory interface {
	Fetch(ctx context.Context) ([]domaintypes.PredictionRecord, error)
	Graph(ctx context.Context, id int64) ([]domaintypes.GraphPoint, error)
}
