package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/service"
)

// itemParams is the common body for item movement operations.
type itemParams struct {
	Item       string   `json:"item"`
	Durability int      `json:"durability"`
	Tags       []string `json:"tags"`
	Count      int      `json:"count"`
	Simulate   bool     `json:"simulate"`
}

func (p *itemParams) key() inventory.Key {
	return inventory.NewKey(p.Item, p.Durability, p.Tags...)
}

type amountResponse struct {
	Accepted int `json:"accepted"`
}

// requireIndex resolves the {indexName} url parameter, writing a 404
// when the index does not exist.
func requireIndex(ctx context.Context) (*inventory.Index, string, error) {

	s := GetServicer(ctx)
	indexName := box.GetUrlParameter(ctx, "indexName")

	index, err := s.GetIndex(indexName)
	if err == service.ErrorIndexNotFound {
		box.GetResponse(ctx).WriteHeader(http.StatusNotFound)
		return nil, indexName, err
	}
	if err != nil {
		return nil, indexName, err
	}

	return index, indexName, nil
}
