package api

import (
	"testing"
	"time"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/stockpile/registry"
	"github.com/fulldump/stockpile/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		reg := registry.NewRegistry(&registry.Config{
			UpdateInterval: time.Minute, // no ticking during the test
		})

		biff.AssertNil(reg.Open())
		biff.AssertEqual(reg.GetStatus(), registry.StatusOperating)

		s := service.NewService(reg)

		b := Build(s, "test")
		b.WithInterceptors(
			InterceptorUnavailable(reg),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
