package apiindexv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/stockpile/service"
)

func BuildV1Indexes(v1 *box.R, s service.Servicer) *box.R {

	indexes := v1.Resource("/indexes").
		WithActions(
			box.Get(listIndexes),
			box.Post(createIndex),
		)

	v1.Resource("/indexes/{indexName}").
		WithActions(
			box.Get(getIndex),
			box.ActionPost(insert),
			box.ActionPost(extract),
			box.ActionPost(transaction),
			box.ActionPost(find),
			box.ActionPost(reindex),
			box.ActionPost(updateIndex),
			box.ActionPost(bind),
			box.ActionPost(unbind),
			box.ActionPost(links),
			box.ActionPost(addBackend),
			box.ActionPost(dropIndex),
		)

	v1.Resource("/indexes/{indexName}/watch").
		WithActions(
			box.Get(watchIndex),
		)

	return indexes
}
