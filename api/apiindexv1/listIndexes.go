package apiindexv1

import (
	"context"

	"github.com/fulldump/stockpile/service"
)

func listIndexes(ctx context.Context) ([]*service.Info, error) {

	s := GetServicer(ctx)

	result, err := s.ListIndexes()
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*service.Info{}
	}

	return result, nil
}
