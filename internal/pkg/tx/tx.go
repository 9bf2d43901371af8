package tx

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
)

type key string

// KeyTx carries the request-scoped transaction runner.
const KeyTx = key("tx")

// DbRepo is the minimal repository surface the middleware needs.
type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxExecute runs cb inside the request transaction if one was attached by
// the middleware, and directly otherwise.
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return cb(ctx)
	}
	return t.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DbRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxMiddlewareGRPC(repo DbRepo) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
		return handler(ctx, req)
	}
}
