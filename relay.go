package herald

import (
	"context"
	"fmt"
	"log/slog"
)

// Relay correlates command invocations with their form submissions and
// posts the result on the actor's behalf.
type Relay struct {
	platform Platform
	sessions *Sessions
	allow    AllowList
	filter   ChannelFilter
	auditor  Auditor
	logger   *slog.Logger
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithLogger sets the logger. If nil or not set, logs are discarded.
func WithLogger(l *slog.Logger) RelayOption {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithChannelFilter restricts the channels a submission may target.
func WithChannelFilter(f ChannelFilter) RelayOption {
	return func(r *Relay) {
		r.filter = f
	}
}

// WithAuditor sets a recorder that receives every dispatch attempt.
func WithAuditor(a Auditor) RelayOption {
	return func(r *Relay) {
		r.auditor = a
	}
}

// NewRelay creates a Relay posting through platform.
func NewRelay(platform Platform, sessions *Sessions, allow AllowList, opts ...RelayOption) *Relay {
	r := &Relay{
		platform: platform,
		sessions: sessions,
		allow:    allow,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle routes an interaction to Invoke or Submit. Every outcome the actor
// should hear about is answered through resp; the returned error is reserved
// for failures to talk to the actor at all and for interactions herald does
// not own.
func (r *Relay) Handle(ctx context.Context, in Interaction, resp Responder) error {
	switch in := in.(type) {
	case CommandInvocation:
		return r.Invoke(ctx, in, resp)
	case FormSubmission:
		return r.Submit(ctx, in, resp)
	default:
		return fmt.Errorf("unsupported interaction %T", in)
	}
}

// Invoke authorizes the actor, records their channel selection and opens
// the command's form. A second invocation before submitting replaces the
// first selection.
func (r *Relay) Invoke(ctx context.Context, in CommandInvocation, resp Responder) error {
	cmd, ok := lookupCommand(in.Command)
	if !ok {
		return fmt.Errorf("%q: %w", in.Command, ErrUnknownCommand)
	}
	log := r.logger.With("command", cmd.Name, "actor", in.Actor.ID, "guild", in.GuildID)

	if !r.allow.Permits(in.Actor.Roles) {
		log.Info("command denied")
		return r.reply(ctx, resp, NoticeDenied)
	}
	if err := cmd.ValidateOptions(in.Options); err != nil {
		return r.reply(ctx, resp, NoticeInvalidInput(err))
	}

	form, _ := FormFor(cmd.Kind)
	r.sessions.Store(cmd.Kind).Put(in.Actor.ID, in.ChannelID, in.GuildID, in.Options)
	log.Debug("session opened", "channel", in.ChannelID)

	if err := resp.OpenForm(ctx, form); err != nil {
		return fmt.Errorf("open %s: %w", form.ID, err)
	}
	return nil
}

// Submit consumes the actor's pending session and, once the target channel
// and the bot's permissions there check out, dispatches the content built
// from the submitted fields. Each submission makes at most one dispatch
// attempt.
func (r *Relay) Submit(ctx context.Context, in FormSubmission, resp Responder) error {
	kind, ok := FormKind(in.FormID)
	if !ok {
		return fmt.Errorf("%q: %w", in.FormID, ErrUnknownForm)
	}
	log := r.logger.With("form", in.FormID, "actor", in.Actor.ID, "guild", in.GuildID)

	sess, ok := r.sessions.Store(kind).Take(in.Actor.ID)
	if !ok {
		log.Debug("no pending session")
		return r.reply(ctx, resp, NoticeSessionExpired(kind))
	}
	log = log.With("channel", sess.ChannelID)

	// Roles may have changed since the command was invoked.
	if !r.allow.Permits(in.Actor.Roles) {
		log.Info("submission denied")
		return r.reply(ctx, resp, NoticeDenied)
	}

	ch, err := r.platform.Channel(ctx, sess.ChannelID)
	if err != nil || !ch.Text {
		log.Debug("invalid target", "error", err)
		return r.reply(ctx, resp, NoticeInvalidTarget)
	}
	if r.filter != nil && !r.filter.Allow(ch) {
		log.Info("target outside channel patterns", "name", ch.Name)
		return r.reply(ctx, resp, NoticeTargetNotAllowed(ch))
	}

	perms, err := r.platform.Permissions(ctx, ch)
	switch {
	case err != nil:
		log.Warn("resolve permissions", "error", err)
		return r.reply(ctx, resp, NoticePermissionsUnknown(ch))
	case !perms.View:
		return r.reply(ctx, resp, NoticeMissingView(ch))
	case !perms.Send:
		return r.reply(ctx, resp, NoticeMissingSend(ch))
	}

	form, _ := FormFor(kind)
	if err := form.Validate(in.Fields); err != nil {
		return r.reply(ctx, resp, NoticeInvalidInput(err))
	}

	var content Content
	switch kind {
	case KindAnnounce:
		content = AnnouncementContent(in.Fields, sess.Options)
	default:
		content = PlainContent(in.Fields)
	}

	sendErr := r.platform.Send(ctx, ch, content)
	r.audit(ctx, Dispatch{
		Kind:      kind,
		ActorID:   in.Actor.ID,
		GuildID:   sess.GuildID,
		ChannelID: ch.ID,
		Content:   content,
		SentAt:    r.sessions.Clock().Now(),
		Err:       errText(sendErr),
	})
	if sendErr != nil {
		log.Warn("dispatch failed", "error", sendErr)
		return r.reply(ctx, resp, NoticeSendFailed(kind, sendErr))
	}
	log.Info("dispatched", "kind", kind)
	return r.reply(ctx, resp, NoticeSent(kind, ch))
}

func (r *Relay) reply(ctx context.Context, resp Responder, text string) error {
	if err := resp.Reply(ctx, text); err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	return nil
}

func (r *Relay) audit(ctx context.Context, d Dispatch) {
	if r.auditor == nil {
		return
	}
	if err := r.auditor.Record(ctx, d); err != nil {
		r.logger.Error("record dispatch", "error", err)
	}
}

func lookupCommand(name string) (Command, bool) {
	for _, c := range Commands() {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
