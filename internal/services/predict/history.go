package predict

import (
	"context"
	"fmt"

	"turak/internal/api"
	"turak/internal/domain"
)

// History reads the server-kept log of past predictions. It holds no state;
// both workflows share one instance.
type History struct {
	apiClient domain.APIClient
	notify    domain.Notifier
}

// NewHistory constructs a history reader.
func NewHistory(apiClient domain.APIClient, notify domain.Notifier) *History {
	return &History{apiClient: apiClient, notify: notify}
}

// Fetch returns the viewer's past predictions, newest first as the server
// orders them.
func (h *History) Fetch(ctx context.Context) ([]domain.PredictionRecord, error) {
	var records []domain.PredictionRecord
	if err := h.apiClient.Get(ctx, "predict/history/", &records); err != nil {
		h.notify.Error(api.UserMessage(err, "Failed to load history"))
		return nil, err
	}
	return records, nil
}

// Graph returns the trend samples for one history entry.
func (h *History) Graph(ctx context.Context, id int64) ([]domain.GraphPoint, error) {
	var points []domain.GraphPoint
	if err := h.apiClient.Get(ctx, fmt.Sprintf("predict/history/%d/graph/", id), &points); err != nil {
		h.notify.Error(api.UserMessage(err, "Failed to load graph"))
		return nil, err
	}
	return points, nil
}

// Compile-time assertion that History implements domain.PredictionHistory.
var _ domain.PredictionHistory = (*History)(nil)
