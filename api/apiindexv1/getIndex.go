package apiindexv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/stockpile/service"
)

func getIndex(ctx context.Context, w http.ResponseWriter) (*service.Info, error) {

	s := GetServicer(ctx)
	indexName := box.GetUrlParameter(ctx, "indexName")

	info, err := s.GetInfo(indexName)
	if err == service.ErrorIndexNotFound {
		w.WriteHeader(http.StatusNotFound)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	return info, nil
}
