package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fwojciec/herald"
)

// replyTimeout bounds a single response to the actor. Replies run on their
// own deadline so a platform call that used up the interaction's budget
// cannot also swallow the notice explaining the failure.
const replyTimeout = 5 * time.Second

// InteractionClient is the subset of *discordgo.Session used to answer
// interactions.
type InteractionClient interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Responder answers one interaction. Until Defer is called replies are the
// initial interaction response; afterwards they are ephemeral follow-ups.
type Responder struct {
	client      InteractionClient
	interaction *discordgo.Interaction
	deferred    bool
}

var _ herald.Responder = (*Responder)(nil)

// NewResponder creates a Responder for i.
func NewResponder(client InteractionClient, i *discordgo.Interaction) *Responder {
	return &Responder{client: client, interaction: i}
}

// Defer acknowledges the interaction privately. Discord shows the actor a
// pending state until the first follow-up arrives.
func (r *Responder) Defer(ctx context.Context) error {
	ctx, cancel := replyContext(ctx)
	defer cancel()
	err := r.client.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return err
	}
	r.deferred = true
	return nil
}

// Reply sends an ephemeral message that never pings anyone.
func (r *Responder) Reply(ctx context.Context, text string) error {
	ctx, cancel := replyContext(ctx)
	defer cancel()
	if r.deferred {
		_, err := r.client.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content:         text,
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		}, discordgo.WithContext(ctx))
		return err
	}
	return r.client.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:         text,
			Flags:           discordgo.MessageFlagsEphemeral,
			AllowedMentions: &discordgo.MessageAllowedMentions{},
		},
	}, discordgo.WithContext(ctx))
}

// OpenForm shows f as a modal. A modal must be the initial response, so it
// cannot follow Defer.
func (r *Responder) OpenForm(ctx context.Context, f herald.Form) error {
	ctx, cancel := replyContext(ctx)
	defer cancel()
	return r.client.InteractionRespond(r.interaction, Modal(f), discordgo.WithContext(ctx))
}

// replyContext keeps ctx's values but not its deadline or cancellation.
func replyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), replyTimeout)
}

// Handler feeds Discord interactions to a Relay.
type Handler struct {
	relay   *herald.Relay
	client  InteractionClient
	logger  *slog.Logger
	timeout time.Duration
}

// NewHandler creates a Handler. Each interaction gets timeout for its
// platform calls; replies to the actor are not bound by it.
func NewHandler(relay *herald.Relay, client InteractionClient, logger *slog.Logger, timeout time.Duration) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{relay: relay, client: client, logger: logger, timeout: timeout}
}

// Handle processes one interaction. Form submissions are acknowledged
// before any platform call so the three second response window never
// depends on channel lookups or the send. Errors are logged; nothing
// escapes to the gateway loop.
func (h *Handler) Handle(ctx context.Context, i *discordgo.Interaction) {
	in, ok := Interaction(i)
	if !ok {
		return
	}
	resp := NewResponder(h.client, i)
	if _, ok := in.(herald.FormSubmission); ok {
		if err := resp.Defer(ctx); err != nil {
			h.logger.Error("acknowledge interaction", "id", i.ID, "error", err)
			return
		}
	}
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.relay.Handle(ctx, in, resp); err != nil {
		h.logger.Error("handle interaction", "id", i.ID, "type", i.Type.String(), "error", err)
	}
}
