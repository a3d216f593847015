package apiindexv1

import (
	"context"
)

type updateIndexResponse struct {
	Changed bool `json:"changed"`
}

func updateIndex(ctx context.Context) (*updateIndexResponse, error) {

	index, _, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	return &updateIndexResponse{Changed: index.UpdateIndex()}, nil
}
