package herald

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates submitted form values failed validation.
	ErrValidation = errors.New("validation error")

	// ErrChannelNotFound indicates a channel could not be resolved.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrPermissionsUnknown indicates the bot's permissions in a channel
	// could not be computed, usually because the bot is not a visible
	// member of the guild.
	ErrPermissionsUnknown = errors.New("permissions unknown")

	// ErrUnknownCommand indicates an invocation of a command herald does
	// not own.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownForm indicates a submission of a form herald does not own.
	ErrUnknownForm = errors.New("unknown form")
)
