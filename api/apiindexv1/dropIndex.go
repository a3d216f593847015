package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/stockpile/service"
)

func dropIndex(ctx context.Context, w http.ResponseWriter) (any, error) {

	s := GetServicer(ctx)
	indexName := box.GetUrlParameter(ctx, "indexName")

	err := s.DropIndex(indexName)
	if err == service.ErrorIndexNotFound {
		w.WriteHeader(http.StatusNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}
