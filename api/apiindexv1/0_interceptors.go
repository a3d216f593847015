package apiindexv1

import (
	"context"

	"github.com/fulldump/stockpile/service"
)

const ContextServicerKey = "3f8a6c52-8f0d-11f0-b7a3-b7ae4f23a1cd"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}
