// Package mock provides test doubles for herald interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/herald"
)

// Interface compliance checks.
var (
	_ herald.Platform      = (*Platform)(nil)
	_ herald.Responder     = (*Responder)(nil)
	_ herald.Auditor       = (*Auditor)(nil)
	_ herald.ChannelFilter = (*ChannelFilter)(nil)
)

// Platform is a test double for herald.Platform.
// Set the function fields for the methods you need.
type Platform struct {
	ChannelFn     func(ctx context.Context, id string) (herald.Channel, error)
	PermissionsFn func(ctx context.Context, ch herald.Channel) (herald.Permissions, error)
	SendFn        func(ctx context.Context, ch herald.Channel, c herald.Content) error
}

// Channel delegates to ChannelFn.
func (p *Platform) Channel(ctx context.Context, id string) (herald.Channel, error) {
	return p.ChannelFn(ctx, id)
}

// Permissions delegates to PermissionsFn.
func (p *Platform) Permissions(ctx context.Context, ch herald.Channel) (herald.Permissions, error) {
	return p.PermissionsFn(ctx, ch)
}

// Send delegates to SendFn.
func (p *Platform) Send(ctx context.Context, ch herald.Channel, c herald.Content) error {
	return p.SendFn(ctx, ch, c)
}

// Responder is a test double for herald.Responder.
// Set the function fields for the methods you need.
type Responder struct {
	ReplyFn    func(ctx context.Context, text string) error
	OpenFormFn func(ctx context.Context, f herald.Form) error
}

// Reply delegates to ReplyFn.
func (r *Responder) Reply(ctx context.Context, text string) error {
	return r.ReplyFn(ctx, text)
}

// OpenForm delegates to OpenFormFn.
func (r *Responder) OpenForm(ctx context.Context, f herald.Form) error {
	return r.OpenFormFn(ctx, f)
}

// Auditor is a test double for herald.Auditor.
// Set RecordFn before calling Record.
type Auditor struct {
	RecordFn func(ctx context.Context, d herald.Dispatch) error
}

// Record delegates to RecordFn.
func (a *Auditor) Record(ctx context.Context, d herald.Dispatch) error {
	return a.RecordFn(ctx, d)
}

// ChannelFilter is a test double for herald.ChannelFilter.
// Set AllowFn before calling Allow.
type ChannelFilter struct {
	AllowFn func(ch herald.Channel) bool
}

// Allow delegates to AllowFn.
func (f *ChannelFilter) Allow(ch herald.Channel) bool {
	return f.AllowFn(ch)
}
