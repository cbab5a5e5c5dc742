package herald

// Form IDs identify which session kind a submission completes.
const (
	FormSay          = "say_modal"
	FormAnnouncement = "announcement_modal"
)

// Form field IDs.
const (
	FieldMessage     = "message"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldColor       = "color"
	FieldImage       = "image"
	FieldFooter      = "footer"
)

// Command option names.
const (
	OptionChannel   = "channel"
	OptionPreamble  = "preamble"
	OptionThumbnail = "thumbnail"
)

// TextStyle is the input style of a form field.
type TextStyle int

const (
	TextShort     TextStyle = iota // Single line.
	TextParagraph                  // Multi-line.
)

// Field is one input of a Form.
type Field struct {
	ID          string
	Label       string
	Placeholder string
	Style       TextStyle
	Required    bool
	MaxLength   int  // 0 = unlimited
	URL         bool // value, when present, must be an http(s) URL
}

// Form is a structured input surface shown after a command.
type Form struct {
	ID     string
	Title  string
	Kind   SessionKind
	Fields []Field
}

var forms = map[SessionKind]Form{
	KindSay: {
		ID:    FormSay,
		Title: "Send Message",
		Kind:  KindSay,
		Fields: []Field{
			{ID: FieldMessage, Label: "Message", Placeholder: "What should I say?", Style: TextParagraph, Required: true, MaxLength: 2000},
		},
	},
	KindAnnounce: {
		ID:    FormAnnouncement,
		Title: "Create Announcement",
		Kind:  KindAnnounce,
		Fields: []Field{
			{ID: FieldTitle, Label: "Title", Style: TextShort, Required: true, MaxLength: 256},
			{ID: FieldDescription, Label: "Description", Placeholder: `Use \n for line breaks`, Style: TextParagraph, Required: true, MaxLength: 4000},
			{ID: FieldColor, Label: "Color", Placeholder: "red, gold, #5865F2...", Style: TextShort, MaxLength: 20},
			{ID: FieldImage, Label: "Image URL", Placeholder: "https://...", Style: TextShort, URL: true},
			{ID: FieldFooter, Label: "Footer", Style: TextParagraph, MaxLength: 2048},
		},
	},
}

// FormFor returns the form opened by commands of kind.
func FormFor(kind SessionKind) (Form, bool) {
	f, ok := forms[kind]
	return f, ok
}

// FormKind maps a form ID back to its session kind.
func FormKind(formID string) (SessionKind, bool) {
	for k, f := range forms {
		if f.ID == formID {
			return k, true
		}
	}
	return "", false
}

// OptionType is the value type of a command option.
type OptionType int

const (
	OptionTypeChannel OptionType = iota
	OptionTypeString
)

// CommandOption is a parameter of a Command.
type CommandOption struct {
	Name        string
	Description string
	Type        OptionType
	Required    bool
	MaxLength   int
	URL         bool
}

// Command describes a slash command herald registers.
type Command struct {
	Name        string
	Description string
	Kind        SessionKind
	Options     []CommandOption
}

var channelOption = CommandOption{
	Name:        OptionChannel,
	Description: "The channel to post in",
	Type:        OptionTypeChannel,
	Required:    true,
}

// Commands returns the command catalogue.
func Commands() []Command {
	return []Command{
		{
			Name:        string(KindSay),
			Description: "Send a message to a channel as the bot (Staff only)",
			Kind:        KindSay,
			Options:     []CommandOption{channelOption},
		},
		{
			Name:        string(KindAnnounce),
			Description: "Post an announcement embed to a channel as the bot (Staff only)",
			Kind:        KindAnnounce,
			Options: []CommandOption{
				channelOption,
				{Name: OptionPreamble, Description: "Plain text sent above the embed, e.g. a role mention", Type: OptionTypeString, MaxLength: 2000},
				{Name: OptionThumbnail, Description: "Thumbnail image URL", Type: OptionTypeString, URL: true},
			},
		},
	}
}

// CommandKind maps a command name to its session kind.
func CommandKind(name string) (SessionKind, bool) {
	c, ok := lookupCommand(name)
	return c.Kind, ok
}
