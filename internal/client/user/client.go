package user

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	userproto "github.com/s21platform/user-proto/user-proto"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/model"
)

type Client struct {
	client userproto.UserServiceClient
}

func New(cfg *config.Config) *Client {
	connStr := fmt.Sprintf("%s:%s", cfg.User.Host, cfg.User.Port)
	conn, err := grpc.NewClient(connStr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("failed to connect to user service: ", err)
	}

	return &Client{
		client: userproto.NewUserServiceClient(conn),
	}
}

func (c *Client) GetUserInfoByUUID(ctx context.Context, userUUID string) (*model.Participant, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, "uuid", userUUID)

	resp, err := c.client.GetUserInfoByUUID(ctx, &userproto.GetUserInfoByUUIDIn{Uuid: userUUID})
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %v", err)
	}

	return &model.Participant{
		UserID:    userUUID,
		Nickname:  resp.Nickname,
		AvatarURL: resp.Avatar,
	}, nil
}
