package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) FetchDialog(ctx context.Context, userID, companionID uuid.UUID) (model.MessageList, error) {
	query, args, err := sq.Select(
		"id",
		"sender_id",
		"recipient_id",
		"kind",
		"content",
		"media_url",
		"reply_to_id",
		"event_date",
		"sent_at",
		"updated_at",
	).
		From("dialog_messages").
		Where(sq.Eq{"deleted_at": nil}).
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": userID}, sq.Eq{"recipient_id": companionID}},
			sq.And{sq.Eq{"sender_id": companionID}, sq.Eq{"recipient_id": userID}},
		}).
		OrderBy("sent_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dialog: %v", err)
	}

	return messages, nil
}

func (r *Repository) InsertMessage(ctx context.Context, message *model.NewMessage) error {
	query, args, err := sq.Insert("dialog_messages").
		Columns("sender_id", "recipient_id", "kind", "content", "media_url", "reply_to_id", "event_date").
		Values(message.SenderID, message.RecipientID, message.Kind, message.Content, message.MediaURL, message.ReplyToID, message.EventDate).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert message: %v", err)
	}

	return nil
}

func (r *Repository) UpdateMessage(ctx context.Context, id uuid.UUID, patch model.MessagePatch) error {
	queryBuilder := sq.Update("dialog_messages").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "deleted_at": nil})

	if patch.Content != nil {
		queryBuilder = queryBuilder.Set("content", *patch.Content)
	}
	if patch.MediaURL != nil {
		queryBuilder = queryBuilder.Set("media_url", *patch.MediaURL)
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update message: %v", err)
	}

	return nil
}

func (r *Repository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Update("dialog_messages").
		Set("deleted_at", time.Now()).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	return nil
}

func (r *Repository) CountMessagesSince(ctx context.Context, senderID uuid.UUID, since time.Time) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("dialog_messages").
		Where(sq.Eq{"sender_id": senderID, "kind": model.UserMessageKind}).
		Where(sq.GtOrEq{"sent_at": since}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %v", err)
	}

	return count, nil
}

func (r *Repository) UpsertTyping(ctx context.Context, userID uuid.UUID, typing bool) error {
	query, args, err := sq.Insert("dialog_typing").
		Columns("user_id", "typing", "updated_at").
		Values(userID, typing, time.Now()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET typing = EXCLUDED.typing, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert typing state: %v", err)
	}

	return nil
}

func (r *Repository) AddParticipant(ctx context.Context, participant *model.Participant) error {
	query, args, err := sq.Insert("dialog_participants").
		Columns("id", "nickname", "avatar_url").
		Values(participant.UserID, participant.Nickname, participant.AvatarURL).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetParticipant(ctx context.Context, userUUID string) (*model.Participant, error) {
	query, args, err := sq.Select("id", "nickname", "avatar_url").
		From("dialog_participants").
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var participant model.Participant
	err = r.Chk(ctx).GetContext(ctx, &participant, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %v", err)
	}

	return &participant, nil
}

func (r *Repository) UpdateParticipantNickname(ctx context.Context, userUUID, newNickname string) error {
	query, args, err := sq.Update("dialog_participants").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateParticipantAvatar(ctx context.Context, userUUID, avatarLink string) error {
	query, args, err := sq.Update("dialog_participants").
		Set("avatar_url", avatarLink).
		Where(sq.Eq{"id": userUUID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
