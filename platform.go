package herald

import "context"

// Channel is a resolved destination.
type Channel struct {
	ID      string
	Name    string
	GuildID string
	Text    bool // accepts messages
}

// Mention returns the platform markup referencing the channel.
func (c Channel) Mention() string {
	return "<#" + c.ID + ">"
}

// Permissions are the bot's capabilities in one channel.
type Permissions struct {
	View bool
	Send bool
}

// Platform is the chat platform as seen by the relay. Implementations
// resolve state live on every call; nothing is cached across interactions.
//
// Channel returns an error wrapping ErrChannelNotFound when the channel
// does not exist. Permissions returns an error wrapping
// ErrPermissionsUnknown when the bot's permissions cannot be computed.
type Platform interface {
	Channel(ctx context.Context, id string) (Channel, error)
	Permissions(ctx context.Context, ch Channel) (Permissions, error)
	Send(ctx context.Context, ch Channel, c Content) error
}

// Responder answers the actor of a single interaction. Replies are private
// to the actor.
type Responder interface {
	Reply(ctx context.Context, text string) error
	OpenForm(ctx context.Context, f Form) error
}

// Auditor records dispatch attempts.
type Auditor interface {
	Record(ctx context.Context, d Dispatch) error
}

// ChannelFilter restricts which channels may be targeted.
type ChannelFilter interface {
	Allow(ch Channel) bool
}
