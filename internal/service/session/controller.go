package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/model"
)

const (
	messagesFeed = "dialog_messages_feed"
	typingFeed   = "dialog_typing_feed"
)

// Deps carries the collaborators shared by all dialog sessions.
type Deps struct {
	Store       RemoteStore
	Events      EventSource
	Attachments *AttachmentPipeline
	Publisher   Publisher
	Notifier    Notifier
	Users       UserProvider
	Logger      logger_lib.LoggerInterface

	QuotaLimit   int
	QuotaWindow  time.Duration
	TypingTTL    time.Duration
	ExpiryWindow time.Duration
}

// Controller drives one dialog session through its lifecycle: join, live
// updates, user actions, leave. All remote failures are absorbed here and
// surfaced as user-facing errors; only a missing identity is fatal.
type Controller struct {
	store       RemoteStore
	events      EventSource
	attachments *AttachmentPipeline
	publisher   Publisher
	notifier    Notifier
	users       UserProvider
	logger      logger_lib.LoggerInterface

	userID       uuid.UUID
	companionID  uuid.UUID
	channel      string
	expiryWindow time.Duration

	timeline *Timeline
	typing   *TypingPresence
	quota    *QuotaGuard

	mu       sync.Mutex
	state    string
	allowed  bool
	loading  bool
	degraded bool
	replyTo  *uuid.UUID

	messageSub Subscription
	typingSub  Subscription
	done       chan struct{}
	leaveOnce  sync.Once
}

func NewController(deps Deps, userID, companionID uuid.UUID) *Controller {
	return &Controller{
		store:        deps.Store,
		events:       deps.Events,
		attachments:  deps.Attachments,
		publisher:    deps.Publisher,
		notifier:     deps.Notifier,
		users:        deps.Users,
		logger:       deps.Logger,
		userID:       userID,
		companionID:  companionID,
		channel:      DialogChannel(userID, companionID),
		expiryWindow: deps.ExpiryWindow,
		timeline:     NewTimeline(),
		typing:       NewTypingPresence(deps.Store, deps.Logger, userID, companionID, deps.TypingTTL),
		quota:        NewQuotaGuard(deps.Store, deps.Logger, deps.QuotaLimit, deps.QuotaWindow),
		state:        model.SessionIdle,
		allowed:      true,
		done:         make(chan struct{}),
	}
}

// DialogChannel names the push channel for a participant pair. The pair is
// unordered, so both sides land on the same channel.
func DialogChannel(a, b uuid.UUID) string {
	ids := []string{a.String(), b.String()}
	sort.Strings(ids)
	return fmt.Sprintf("dialog:%s:%s", ids[0], ids[1])
}

// Join runs the session bring-up: quota gate, hydrate, the live
// subscriptions, then the one-time joined notice. Any step may fail without
// blocking the user; the session then runs degraded. A missing identity is
// the one fatal case.
func (c *Controller) Join(ctx context.Context) error {
	if c.userID == uuid.Nil {
		c.setState(model.SessionFailed)
		return ErrAuthRequired
	}

	c.mu.Lock()
	c.state = model.SessionJoining
	c.loading = true
	c.mu.Unlock()

	allowed := c.quota.CheckAllowed(ctx, c.userID)

	hydrated := true
	rows, err := c.store.FetchDialog(ctx, c.userID, c.companionID)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to hydrate dialog: %v", err))
		hydrated = false
	} else {
		c.timeline.Hydrate(rows)
	}

	subscribed := c.subscribe()
	if subscribed {
		go c.pump()
	}

	// the feed must be live before the notice insert so its event loops back
	// into this session's timeline
	if hydrated && !c.timeline.HasSystemFrom(c.userID) {
		c.insertJoinedNotice(ctx)
	}

	c.mu.Lock()
	c.state = model.SessionActive
	c.allowed = allowed
	c.loading = false
	c.degraded = !hydrated || !subscribed
	c.mu.Unlock()

	return nil
}

func (c *Controller) subscribe() bool {
	messageSub, err := c.events.Subscribe(messagesFeed)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to subscribe to message feed: %v", err))
		return false
	}

	typingSub, err := c.events.Subscribe(typingFeed)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to subscribe to typing feed: %v", err))
		messageSub.Unsubscribe()
		return false
	}

	c.mu.Lock()
	c.messageSub = messageSub
	c.typingSub = typingSub
	c.mu.Unlock()

	return true
}

func (c *Controller) insertJoinedNotice(ctx context.Context) {
	nickname := c.userID.String()
	if info, err := c.users.GetUserInfoByUUID(ctx, c.userID.String()); err != nil {
		c.logger.Error(fmt.Sprintf("failed to get own profile for joined notice: %v", err))
	} else {
		nickname = info.Nickname
		if err := c.store.AddParticipant(ctx, info); err != nil {
			c.logger.Error(fmt.Sprintf("failed to save participant: %v", err))
		}
	}

	content := fmt.Sprintf("%s joined the conversation", nickname)
	notice := model.NewMessage{
		SenderID:    c.userID,
		RecipientID: c.companionID,
		Kind:        model.SystemMessageKind,
		Content:     &content,
	}

	if err := c.store.InsertMessage(ctx, &notice); err != nil {
		c.logger.Error(fmt.Sprintf("failed to insert joined notice: %v", err))
	}
}

// SendDraft is a user send action. Media is optional; content may be empty
// for a media-only message.
type SendDraft struct {
	Content       string
	MediaFilename string
	MediaData     []byte
	EventDate     *time.Time
}

// Send performs the optimistic write. No placeholder is added locally; the
// message appears when its insert event loops back from the store.
func (c *Controller) Send(ctx context.Context, draft SendDraft) error {
	c.mu.Lock()
	if c.state != model.SessionActive {
		c.mu.Unlock()
		return ErrSessionClosed
	}
	if !c.allowed {
		c.mu.Unlock()
		return ErrQuotaExceeded
	}
	replyTo := c.replyTo
	c.mu.Unlock()

	text := strings.TrimSpace(draft.Content)

	var mediaURL *string
	if draft.MediaFilename != "" {
		url, err := c.attachments.Upload(ctx, c.userID, draft.MediaFilename, draft.MediaData)
		if err != nil {
			c.logger.Error(fmt.Sprintf("attachment upload failed: %v", err))
			if text == "" {
				return ErrUploadFailed
			}
			// text survives, message goes out without media
		} else {
			mediaURL = &url
		}
	}

	var content *string
	if text != "" {
		content = &text
	}

	message := model.NewMessage{
		SenderID:    c.userID,
		RecipientID: c.companionID,
		Kind:        model.UserMessageKind,
		Content:     content,
		MediaURL:    mediaURL,
		ReplyToID:   replyTo,
		EventDate:   draft.EventDate,
	}

	if err := c.store.InsertMessage(ctx, &message); err != nil {
		return fmt.Errorf("failed to send message: %v", err)
	}

	c.CancelReply()
	c.notify(ctx, text)

	return nil
}

func (c *Controller) notify(ctx context.Context, text string) {
	preview := text
	if preview == "" {
		preview = "sent a photo"
	}

	nickname := ""
	if participant, err := c.store.GetParticipant(ctx, c.userID.String()); err == nil {
		nickname = participant.Nickname
	}

	notice := model.NewMessageNotification{
		RecipientID:    c.companionID.String(),
		SenderID:       c.userID.String(),
		SenderNickname: nickname,
		Preview:        preview,
	}

	if err := c.notifier.NotifyNewMessage(ctx, notice); err != nil {
		c.logger.Error(fmt.Sprintf("failed to notify companion: %v", err))
	}
}

// Edit rewrites the content of the user's own message, then re-hydrates the
// whole timeline rather than patching locally.
func (c *Controller) Edit(ctx context.Context, messageID uuid.UUID, content string) error {
	if err := c.requireOwn(messageID); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(content)
	patch := model.MessagePatch{Content: &trimmed}

	if err := c.store.UpdateMessage(ctx, messageID, patch); err != nil {
		return fmt.Errorf("failed to edit message: %v", err)
	}

	c.rehydrate(ctx)
	return nil
}

// Delete is two-phase: best-effort attachment removal, then the row delete.
// A failed removal is logged and never blocks the delete.
func (c *Controller) Delete(ctx context.Context, messageID uuid.UUID) error {
	if err := c.requireOwn(messageID); err != nil {
		return err
	}

	if msg := c.timeline.Get(messageID); msg != nil && msg.MediaURL != nil {
		if err := c.attachments.Remove(ctx, *msg.MediaURL); err != nil {
			c.logger.Error(fmt.Sprintf("failed to remove attachment for %s: %v", messageID, err))
		}
	}

	if err := c.store.DeleteMessage(ctx, messageID); err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	c.rehydrate(ctx)
	return nil
}

func (c *Controller) requireOwn(messageID uuid.UUID) error {
	c.mu.Lock()
	active := c.state == model.SessionActive
	c.mu.Unlock()
	if !active {
		return ErrSessionClosed
	}

	msg := c.timeline.Get(messageID)
	if msg == nil {
		return ErrNotFound
	}
	if msg.SenderID != c.userID {
		return ErrNotOwner
	}

	return nil
}

func (c *Controller) rehydrate(ctx context.Context) {
	rows, err := c.store.FetchDialog(ctx, c.userID, c.companionID)
	if err != nil {
		c.logger.Error(fmt.Sprintf("failed to re-hydrate dialog: %v", err))
		return
	}
	c.timeline.Hydrate(rows)
}

// Refresh is the manual re-fetch escape hatch for degraded sessions.
func (c *Controller) Refresh(ctx context.Context) error {
	rows, err := c.store.FetchDialog(ctx, c.userID, c.companionID)
	if err != nil {
		return fmt.Errorf("failed to refresh dialog: %v", err)
	}

	c.timeline.Hydrate(rows)

	c.mu.Lock()
	c.degraded = c.messageSub == nil
	c.mu.Unlock()

	return nil
}

func (c *Controller) SelectReply(messageID uuid.UUID) error {
	if c.timeline.Get(messageID) == nil {
		return ErrNotFound
	}

	c.mu.Lock()
	id := messageID
	c.replyTo = &id
	c.mu.Unlock()

	return nil
}

func (c *Controller) CancelReply() {
	c.mu.Lock()
	c.replyTo = nil
	c.mu.Unlock()
}

func (c *Controller) ReplyTarget(messageID uuid.UUID) *model.Message {
	return c.timeline.ReplyTarget(messageID)
}

func (c *Controller) Keystroke(ctx context.Context) error {
	c.mu.Lock()
	active := c.state == model.SessionActive
	c.mu.Unlock()
	if !active {
		return ErrSessionClosed
	}

	return c.typing.Keystroke(ctx)
}

// Snapshot assembles everything the UI renders.
func (c *Controller) Snapshot() model.DialogSnapshot {
	c.mu.Lock()
	state := c.state
	loading := c.loading
	degraded := c.degraded
	blocked := !c.allowed
	var replyTo *string
	if c.replyTo != nil {
		id := c.replyTo.String()
		replyTo = &id
	}
	c.mu.Unlock()

	return model.DialogSnapshot{
		State:           state,
		Messages:        c.timeline.Messages(),
		CompanionTyping: c.typing.CompanionTyping(),
		ExpiresSoon:     c.expiresSoon(),
		QuotaBlocked:    blocked,
		Loading:         loading,
		ReplyToID:       replyTo,
		Degraded:        degraded,
	}
}

func (c *Controller) expiresSoon() bool {
	date := c.timeline.EarliestEventDate()
	if date == nil {
		return false
	}
	return !date.After(time.Now().Add(c.expiryWindow))
}

// Leave tears the session down: feed subscriptions exactly once, pending
// typing clear cancelled. Safe to call from any exit path, any number of
// times.
func (c *Controller) Leave() {
	c.leaveOnce.Do(func() {
		c.mu.Lock()
		c.state = model.SessionLeaving
		messageSub := c.messageSub
		typingSub := c.typingSub
		c.mu.Unlock()

		close(c.done)
		if messageSub != nil {
			messageSub.Unsubscribe()
		}
		if typingSub != nil {
			typingSub.Unsubscribe()
		}
		c.typing.Stop()

		c.setState(model.SessionClosed)
	})
}

func (c *Controller) setState(state string) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// pump routes live change events into the timeline and the typing presence
// until the session leaves. Store emission order is preserved per feed.
func (c *Controller) pump() {
	messageEvents := c.messageSub.Events()
	typingEvents := c.typingSub.Events()

	for {
		select {
		case <-c.done:
			return
		case event, ok := <-messageEvents:
			if !ok {
				messageEvents = nil
				c.markDegraded()
				break
			}
			c.handleMessageEvent(event)
		case event, ok := <-typingEvents:
			if !ok {
				typingEvents = nil
				break
			}
			c.handleTypingEvent(event)
		}

		if messageEvents == nil && typingEvents == nil {
			return
		}
	}
}

func (c *Controller) markDegraded() {
	c.mu.Lock()
	c.degraded = true
	c.mu.Unlock()
}

func (c *Controller) handleMessageEvent(event model.ChangeEvent) {
	if event.Message == nil {
		return
	}
	// events for other dialogs share the feed and are dropped here
	if !event.Message.IsBetween(c.userID, c.companionID) {
		return
	}

	switch event.Op {
	case model.InsertOp:
		if c.timeline.ApplyInsert(*event.Message) {
			c.push(model.DialogPushEvent{Type: model.PushMessageEvent, Message: event.Message})
		}
	case model.UpdateOp:
		if c.timeline.ApplyUpdate(*event.Message) {
			c.push(model.DialogPushEvent{Type: model.PushMessageEvent, Message: event.Message})
		}
	case model.DeleteOp:
		if c.timeline.ApplyDelete(event.Message.ID) {
			c.push(model.DialogPushEvent{Type: model.PushMessageEvent, Message: event.Message})
		}
	}
}

func (c *Controller) handleTypingEvent(event model.ChangeEvent) {
	if event.Typing == nil {
		return
	}
	if event.Typing.UserID != c.companionID {
		return
	}

	c.typing.ApplyRemote(event.Typing.UserID, event.Typing.Typing)
	c.push(model.DialogPushEvent{Type: model.PushTypingEvent, Typing: event.Typing})
}

func (c *Controller) push(event model.DialogPushEvent) {
	if err := c.publisher.Publish(context.Background(), c.channel, event); err != nil {
		c.logger.Error(fmt.Sprintf("failed to publish push event: %v", err))
	}
}
