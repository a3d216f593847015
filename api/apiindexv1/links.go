package apiindexv1

import (
	"context"

	"github.com/fulldump/stockpile/inventory"
)

func links(ctx context.Context) ([]inventory.Link, error) {

	index, _, err := requireIndex(ctx)
	if err != nil {
		return nil, err
	}

	result := index.BoundLinks()
	if result == nil {
		result = []inventory.Link{}
	}

	return result, nil
}
