package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fwojciec/herald"
)

// textChannelTypes are the channel types a relay may target.
var textChannelTypes = []discordgo.ChannelType{
	discordgo.ChannelTypeGuildText,
	discordgo.ChannelTypeGuildNews,
}

// ApplicationCommands converts herald's command catalogue into slash
// command definitions. Commands are guild-only.
func ApplicationCommands() []*discordgo.ApplicationCommand {
	dm := false
	var out []*discordgo.ApplicationCommand
	for _, c := range herald.Commands() {
		ac := &discordgo.ApplicationCommand{
			Name:         c.Name,
			Description:  c.Description,
			DMPermission: &dm,
		}
		for _, o := range c.Options {
			ac.Options = append(ac.Options, commandOption(o))
		}
		out = append(out, ac)
	}
	return out
}

func commandOption(o herald.CommandOption) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Name:        o.Name,
		Description: o.Description,
		Required:    o.Required,
	}
	switch o.Type {
	case herald.OptionTypeChannel:
		opt.Type = discordgo.ApplicationCommandOptionChannel
		opt.ChannelTypes = textChannelTypes
	default:
		opt.Type = discordgo.ApplicationCommandOptionString
		opt.MaxLength = o.MaxLength
	}
	return opt
}

// Modal converts a form into a modal response. Each field gets its own
// action row, as Discord requires.
func Modal(f herald.Form) *discordgo.InteractionResponse {
	rows := make([]discordgo.MessageComponent, 0, len(f.Fields))
	for _, fd := range f.Fields {
		style := discordgo.TextInputShort
		if fd.Style == herald.TextParagraph {
			style = discordgo.TextInputParagraph
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    fd.ID,
					Label:       fd.Label,
					Style:       style,
					Placeholder: fd.Placeholder,
					Required:    fd.Required,
					MaxLength:   fd.MaxLength,
				},
			},
		})
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   f.ID,
			Title:      f.Title,
			Components: rows,
		},
	}
}

// MessageSend converts content into a message. Users and roles may be
// pinged; @everyone and @here only when the text spells them out.
func MessageSend(c herald.Content) *discordgo.MessageSend {
	msg := &discordgo.MessageSend{
		Content: c.Text,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{
				discordgo.AllowedMentionTypeUsers,
				discordgo.AllowedMentionTypeRoles,
			},
		},
	}
	if strings.Contains(c.Text, "@everyone") || strings.Contains(c.Text, "@here") {
		msg.AllowedMentions.Parse = append(msg.AllowedMentions.Parse, discordgo.AllowedMentionTypeEveryone)
	}
	if e := c.Embed; e != nil {
		me := &discordgo.MessageEmbed{
			Title:       e.Title,
			Description: e.Description,
			Color:       e.Color,
		}
		if e.ImageURL != "" {
			me.Image = &discordgo.MessageEmbedImage{URL: e.ImageURL}
		}
		if e.ThumbnailURL != "" {
			me.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.ThumbnailURL}
		}
		if e.Footer != "" {
			me.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
		}
		msg.Embeds = []*discordgo.MessageEmbed{me}
	}
	return msg
}
