package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/metrics"
	"github.com/fulldump/stockpile/watch"
)

type bindResponse struct {
	Result string `json:"result"`
}

func bind(ctx context.Context, w http.ResponseWriter, input *inventory.Link) (*bindResponse, error) {

	index, indexName, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := index.Bind(*input)
	metrics.Binds.WithLabelValues(result.String()).Inc()

	if result != inventory.NoBind {
		GetServicer(ctx).Watch().Publish(watch.Event{
			Type:  "bind",
			Index: indexName,
			Peer:  input.Peer,
		})
	}

	return &bindResponse{Result: result.String()}, nil
}
