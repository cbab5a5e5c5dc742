package json

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/herald"
)

// record is the v1 wire format for one audited dispatch.
type record struct {
	Version   int       `json:"version"`
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actor_id"`
	GuildID   string    `json:"guild_id"`
	ChannelID string    `json:"channel_id"`
	SentAt    time.Time `json:"sent_at"`
	Text      *string   `json:"text,omitempty"`
	Embed     *embedDTO `json:"embed,omitempty"`
	Error     *string   `json:"error,omitempty"`
}

// embedDTO is the JSON representation of an Embed.
type embedDTO struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Color        int     `json:"color"`
	ImageURL     *string `json:"image_url,omitempty"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Footer       *string `json:"footer,omitempty"`
}

// MarshalDispatch serializes a Dispatch to a single line of JSON.
func MarshalDispatch(d herald.Dispatch) ([]byte, error) {
	if d.Kind == "" {
		return nil, fmt.Errorf("dispatch kind is required")
	}
	rec := record{
		Version:   1,
		Kind:      string(d.Kind),
		ActorID:   d.ActorID,
		GuildID:   d.GuildID,
		ChannelID: d.ChannelID,
		SentAt:    d.SentAt,
		Text:      optional(d.Content.Text),
		Error:     optional(d.Err),
	}
	if e := d.Content.Embed; e != nil {
		rec.Embed = &embedDTO{
			Title:        e.Title,
			Description:  e.Description,
			Color:        e.Color,
			ImageURL:     optional(e.ImageURL),
			ThumbnailURL: optional(e.ThumbnailURL),
			Footer:       optional(e.Footer),
		}
	}
	return json.Marshal(rec)
}

// UnmarshalDispatch deserializes a Dispatch written by MarshalDispatch.
func UnmarshalDispatch(data []byte) (herald.Dispatch, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return herald.Dispatch{}, fmt.Errorf("unmarshal record: %w", err)
	}
	if rec.Version != 1 {
		return herald.Dispatch{}, fmt.Errorf("unsupported record version: %d", rec.Version)
	}
	d := herald.Dispatch{
		Kind:      herald.SessionKind(rec.Kind),
		ActorID:   rec.ActorID,
		GuildID:   rec.GuildID,
		ChannelID: rec.ChannelID,
		SentAt:    rec.SentAt,
		Content:   herald.Content{Text: deref(rec.Text)},
		Err:       deref(rec.Error),
	}
	if e := rec.Embed; e != nil {
		d.Content.Embed = &herald.Embed{
			Title:        e.Title,
			Description:  e.Description,
			Color:        e.Color,
			ImageURL:     deref(e.ImageURL),
			ThumbnailURL: deref(e.ThumbnailURL),
			Footer:       deref(e.Footer),
		}
	}
	return d, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
