package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/stockpile/service"
)

type createIndexRequest struct {
	Name      string `json:"name"`
	Slots     int    `json:"slots"`
	StackSize int    `json:"stack_size"`
}

func newIndexDefaults() *createIndexRequest {
	return &createIndexRequest{
		Slots:     27,
		StackSize: 64,
	}
}

func createIndex(ctx context.Context, w http.ResponseWriter, input *createIndexRequest) (*service.Info, error) {

	s := GetServicer(ctx)

	defaults := newIndexDefaults()
	if input.Slots == 0 {
		input.Slots = defaults.Slots
	}
	if input.StackSize == 0 {
		input.StackSize = defaults.StackSize
	}

	info, err := s.CreateIndex(input.Name, input.Slots, input.StackSize)
	if err == service.ErrorIndexAlreadyExists {
		w.WriteHeader(http.StatusConflict)
		return nil, err // todo: return custom error, with detailed description
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return info, nil
}
