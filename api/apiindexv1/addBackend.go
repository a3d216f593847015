package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/stockpile/service"
)

type addBackendRequest struct {
	Slots     int `json:"slots"`
	StackSize int `json:"stack_size"`
}

func addBackend(ctx context.Context, w http.ResponseWriter, input *addBackendRequest) (*service.Info, error) {

	s := GetServicer(ctx)
	indexName := box.GetUrlParameter(ctx, "indexName")

	defaults := newIndexDefaults()
	if input.Slots == 0 {
		input.Slots = defaults.Slots
	}
	if input.StackSize == 0 {
		input.StackSize = defaults.StackSize
	}

	info, err := s.AddBackend(indexName, input.Slots, input.StackSize)
	if err == service.ErrorIndexNotFound {
		w.WriteHeader(http.StatusNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return info, nil
}
