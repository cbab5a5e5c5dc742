package herald

import (
	"strings"
	"time"
)

// Content is a payload dispatched to a channel. Text is sent as the message
// body; Embed, when set, is attached as a rich announcement.
type Content struct {
	Text  string
	Embed *Embed
}

// Embed is a rich announcement.
type Embed struct {
	Title        string
	Description  string
	Color        int
	ImageURL     string
	ThumbnailURL string
	Footer       string
}

// PlainContent returns the say payload. The message is used verbatim.
func PlainContent(fields map[string]string) Content {
	return Content{Text: fields[FieldMessage]}
}

// AnnouncementContent builds the announce payload from form fields and the
// options captured with the command. Literal "\n" sequences in the
// description become line breaks. Optional parts are dropped when blank.
func AnnouncementContent(fields, options map[string]string) Content {
	e := &Embed{
		Title:        strings.TrimSpace(fields[FieldTitle]),
		Description:  strings.ReplaceAll(fields[FieldDescription], `\n`, "\n"),
		Color:        ResolveColor(fields[FieldColor]),
		ImageURL:     strings.TrimSpace(fields[FieldImage]),
		ThumbnailURL: strings.TrimSpace(options[OptionThumbnail]),
		Footer:       strings.TrimSpace(fields[FieldFooter]),
	}
	return Content{
		Text:  strings.TrimSpace(options[OptionPreamble]),
		Embed: e,
	}
}

// Dispatch records one send attempt.
type Dispatch struct {
	Kind      SessionKind
	ActorID   string
	GuildID   string
	ChannelID string
	Content   Content
	SentAt    time.Time
	Err       string // empty on success
}
