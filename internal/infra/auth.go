package infra

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/dialog-service/internal/config"
)

// AuthInterceptorHTTP requires the gateway-provided user uuid header and
// places it into the request context. Without it the session cannot be
// attributed to anybody, so the request is rejected outright.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get("uuid")
		if userUUID == "" {
			http.Error(w, "no user uuid provided", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AuthInterceptorGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no metadata provided")
	}

	uuids := md.Get("uuid")
	if len(uuids) == 0 || uuids[0] == "" {
		return nil, status.Error(codes.Unauthenticated, "no user uuid provided")
	}

	ctx = context.WithValue(ctx, config.KeyUUID, uuids[0])
	return handler(ctx, req)
}
