package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// MaxBulkItems bounds a single BulkCreate call.
const MaxBulkItems = 500

// BulkItemResult reports the outcome of one item of a bulk request.
type BulkItemResult struct {
	Index int
	Entry *Entry
	Err   error
}

// BulkResult summarises a best-effort bulk creation.
type BulkResult struct {
	Created int
	Failed  int
	Items   []BulkItemResult
}

// BulkCreate creates each item independently. A failing item is recorded and the loop moves on;
// earlier successes are never rolled back.
func (s *service) BulkCreate(ctx context.Context, inputs []CreateInput) (BulkResult, error) {
	if len(inputs) == 0 {
		return BulkResult{}, &ValidationError{Fields: FieldErrors{"entries": {"at least one entry is required"}}}
	}
	if len(inputs) > MaxBulkItems {
		return BulkResult{}, &ValidationError{Fields: FieldErrors{
			"entries": {fmt.Sprintf("at most %d entries per request", MaxBulkItems)},
		}}
	}

	result := BulkResult{Items: make([]BulkItemResult, 0, len(inputs))}
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			result.Items = append(result.Items, BulkItemResult{Index: i, Err: err})
			result.Failed++
			continue
		}

		created, err := s.Create(ctx, input)
		if err != nil {
			result.Items = append(result.Items, BulkItemResult{Index: i, Err: err})
			result.Failed++
			continue
		}

		entry := created
		result.Items = append(result.Items, BulkItemResult{Index: i, Entry: &entry})
		result.Created++
	}

	s.loggerFrom(ctx).Info("bulk create finished",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
