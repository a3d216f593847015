package api

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	"github.com/fulldump/box/boxopenapi"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fulldump/stockpile/api/apiindexv1"
	"github.com/fulldump/stockpile/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	apiindexv1.BuildV1Indexes(v1, s).
		WithInterceptors(
			injectServicer(s),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	b.Resource("/metrics").
		WithActions(
			box.Get(promhttp.Handler().ServeHTTP).WithName("metrics"),
		)

	spec := boxopenapi.Spec(b)
	spec.Info.Title = "Stockpile"
	spec.Info.Description = "An item index with bulk transactions and inventory links."
	spec.Info.Contact = &boxopenapi.Contact{
		Url: "https://github.com/fulldump/stockpile/issues/new",
	}
	b.Handle("GET", "/openapi.json", func(r *http.Request) any {

		spec.Servers = []boxopenapi.Server{
			{
				Url: "http://" + r.Host,
			},
		}

		return spec
	})

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiindexv1.SetServicer(ctx, s))
		}
	}
}
