package herald

// Interaction is a sealed interface for events delivered by the chat
// platform. The unexported marker method prevents external implementations.
type Interaction interface {
	interaction()
}

// Actor is the user behind an interaction, with the guild roles they hold
// at the time the event was delivered.
type Actor struct {
	ID    string
	Name  string
	Roles []string
}

// CommandInvocation is a slash command with its target channel selection.
// Options holds the string options other than the channel.
type CommandInvocation struct {
	Command   string
	Actor     Actor
	GuildID   string
	ChannelID string
	Options   map[string]string
}

func (CommandInvocation) interaction() {}

// FormSubmission is a submitted form keyed by field ID.
type FormSubmission struct {
	FormID  string
	Actor   Actor
	GuildID string
	Fields  map[string]string
}

func (FormSubmission) interaction() {}

// Interface compliance checks.
var (
	_ Interaction = CommandInvocation{}
	_ Interaction = FormSubmission{}
)
