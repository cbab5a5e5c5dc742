// Package discord connects herald to Discord through discordgo. It
// translates gateway interactions into herald interactions, answers actors
// with ephemeral responses and modals, and implements herald.Platform over
// the REST API.
package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fwojciec/herald"
)

// Interaction translates a Discord interaction. It reports false for
// interaction types herald does not handle (pings, autocomplete, buttons).
func Interaction(i *discordgo.Interaction) (herald.Interaction, bool) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return commandInvocation(i), true
	case discordgo.InteractionModalSubmit:
		return formSubmission(i), true
	default:
		return nil, false
	}
}

func commandInvocation(i *discordgo.Interaction) herald.CommandInvocation {
	data := i.ApplicationCommandData()
	in := herald.CommandInvocation{
		Command: data.Name,
		Actor:   actor(i),
		GuildID: i.GuildID,
	}
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionChannel:
			if id, ok := opt.Value.(string); ok && opt.Name == herald.OptionChannel {
				in.ChannelID = id
			}
		case discordgo.ApplicationCommandOptionString:
			if in.Options == nil {
				in.Options = make(map[string]string)
			}
			in.Options[opt.Name] = opt.StringValue()
		}
	}
	return in
}

func formSubmission(i *discordgo.Interaction) herald.FormSubmission {
	data := i.ModalSubmitData()
	fields := make(map[string]string)
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if ti, ok := rc.(*discordgo.TextInput); ok {
				fields[ti.CustomID] = ti.Value
			}
		}
	}
	return herald.FormSubmission{
		FormID:  data.CustomID,
		Actor:   actor(i),
		GuildID: i.GuildID,
		Fields:  fields,
	}
}

// actor prefers the guild member, which carries roles. Interactions from
// direct messages only have a user and therefore no roles.
func actor(i *discordgo.Interaction) herald.Actor {
	if m := i.Member; m != nil && m.User != nil {
		return herald.Actor{ID: m.User.ID, Name: m.User.Username, Roles: m.Roles}
	}
	if i.User != nil {
		return herald.Actor{ID: i.User.ID, Name: i.User.Username}
	}
	return herald.Actor{}
}
