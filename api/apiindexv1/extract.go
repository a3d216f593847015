package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/metrics"
	"github.com/fulldump/stockpile/watch"
)

func extract(ctx context.Context, w http.ResponseWriter, input *itemParams) (*amountResponse, error) {

	index, indexName, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	accepted, err := index.ExtractItem(input.key(), input.Count, input.Simulate)
	if err == inventory.ErrNegativeCount {
		w.WriteHeader(http.StatusBadRequest)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if !input.Simulate {
		metrics.Commits.Inc()
		GetServicer(ctx).Watch().Publish(watch.Event{
			Type:  "extract",
			Index: indexName,
			Item:  input.key().String(),
			Count: accepted,
		})
	}

	return &amountResponse{Accepted: accepted}, nil
}
