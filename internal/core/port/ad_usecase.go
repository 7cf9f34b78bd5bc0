package port

import (
	"context"

	"tribe-pulse-ads/internal/core/domain"
)

// Direction of a swipe gesture. Both directions advance the reel.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// AdUseCase defines the operations exposed to the view layer. This
// interface is the primary port into the application; the HTTP adapter
// depends only on it.
type AdUseCase interface {
	// SelectAd runs a one-off selection against the current catalog
	// without recording anything. It returns nil when no advertisement is
	// available.
	SelectAd(ctx context.Context, preferPremium bool) (*domain.Advertisement, error)

	// OpenReel starts a viewing session and mounts its first
	// advertisement.
	OpenReel(ctx context.Context, preferPremium bool) (domain.Rotation, error)

	// AdvanceReel handles a swipe in the given session.
	AdvanceReel(ctx context.Context, sessionID string, dir Direction) (domain.Rotation, error)

	// TapReel handles a tap on the displayed advertisement. The returned
	// boolean reports whether a click was tracked.
	TapReel(ctx context.Context, sessionID string, viewer domain.Viewer) (bool, error)

	// CloseReel unmounts the session.
	CloseReel(ctx context.Context, sessionID string) error

	// GetStats returns counters for one advertisement.
	GetStats(ctx context.Context, req domain.StatsReq) (*domain.Stats, error)
}
