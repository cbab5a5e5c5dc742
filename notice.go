package herald

import (
	"fmt"
	"strings"
)

// NoticeDenied is shown to actors without an allowed role.
const NoticeDenied = "You do not have permission to use this command."

// NoticeInvalidTarget is shown when the selected channel is gone or cannot
// hold messages.
const NoticeInvalidTarget = "That channel no longer exists or is not a text channel. Please pick another channel."

// NoticeSessionExpired asks the actor to run the command again.
func NoticeSessionExpired(kind SessionKind) string {
	return fmt.Sprintf("Your session expired. Please run /%s again.", kind)
}

// NoticeTargetNotAllowed is shown when ch is outside the configured
// channel patterns.
func NoticeTargetNotAllowed(ch Channel) string {
	return fmt.Sprintf("I'm not allowed to post in %s.", ch.Mention())
}

// NoticePermissionsUnknown is shown when the bot's permissions in ch cannot
// be computed.
func NoticePermissionsUnknown(ch Channel) string {
	return fmt.Sprintf("I couldn't determine my permissions in %s. Make sure I'm a member of this server and can see that channel.", ch.Mention())
}

// NoticeMissingView asks for the View Channel permission.
func NoticeMissingView(ch Channel) string {
	return fmt.Sprintf("I can't see %s. Grant me the **View Channel** permission there and try again.", ch.Mention())
}

// NoticeMissingSend asks for the Send Messages permission.
func NoticeMissingSend(ch Channel) string {
	return fmt.Sprintf("I can't send messages in %s. Grant me the **Send Messages** permission there and try again.", ch.Mention())
}

// NoticeInvalidInput reports a validation failure.
func NoticeInvalidInput(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+ErrValidation.Error())
	return fmt.Sprintf("Invalid input: %s.", msg)
}

// NoticeSent confirms a dispatch.
func NoticeSent(kind SessionKind, ch Channel) string {
	if kind == KindAnnounce {
		return fmt.Sprintf("Announcement sent to %s.", ch.Mention())
	}
	return fmt.Sprintf("Message sent to %s.", ch.Mention())
}

// NoticeSendFailed reports a dispatch error.
func NoticeSendFailed(kind SessionKind, err error) string {
	if kind == KindAnnounce {
		return fmt.Sprintf("Failed to send announcement: %s", err)
	}
	return fmt.Sprintf("Failed to send message: %s", err)
}
