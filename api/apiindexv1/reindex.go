package apiindexv1

import (
	"context"

	"github.com/fulldump/stockpile/metrics"
	"github.com/fulldump/stockpile/watch"
)

type reindexResponse struct {
	Accurate bool `json:"accurate"`
}

func reindex(ctx context.Context) (*reindexResponse, error) {

	index, indexName, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	accurate := index.ReIndex()
	metrics.ReindexRuns.Inc()

	GetServicer(ctx).Watch().Publish(watch.Event{
		Type:  "reindex",
		Index: indexName,
	})

	return &reindexResponse{Accurate: accurate}, nil
}
