//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
//go:generate mockgen -destination=mock_session_test.go -package=${GOPACKAGE} github.com/s21platform/dialog-service/internal/service/session Session
package rest

import (
	"context"

	"github.com/google/uuid"

	api "github.com/s21platform/dialog-service/internal/generated"
	"github.com/s21platform/dialog-service/internal/model"
	"github.com/s21platform/dialog-service/internal/service/session"
)

type SessionProvider interface {
	Join(ctx context.Context, userID, companionID uuid.UUID) (session.Session, error)
	Get(userID, companionID uuid.UUID) (session.Session, bool)
	Leave(userID, companionID uuid.UUID)
}

type Validator interface {
	ValidateSendMessage(req *api.SendDialogMessageRequest) error
	ValidateEditMessage(req *api.EditDialogMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, dialogID string) (string, int64, error)
	ValidateConnectToken(tokenString string) (*model.CentrifugoConnectClaims, error)
	ValidateSubscribeToken(tokenString string) (*model.CentrifugoSubscribeClaims, error)
}
