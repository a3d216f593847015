package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/watch"
)

type unbindResponse struct {
	Removed bool `json:"removed"`
}

func unbind(ctx context.Context, w http.ResponseWriter, input *inventory.Link) (*unbindResponse, error) {

	index, indexName, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	removed := index.Unbind(*input)
	if removed {
		GetServicer(ctx).Watch().Publish(watch.Event{
			Type:  "unbind",
			Index: indexName,
			Peer:  input.Peer,
		})
	}

	return &unbindResponse{Removed: removed}, nil
}
