// Package fx computes the visual-interaction values the presentational
// layer applies as rendering parameters: pointer-driven 3D tilt, clamped
// linear range mapping for scroll-linked effects, perspective projection,
// spring smoothing and entrance tweens.
//
// Everything here is pure or owns only its own small state. Callers own
// event subscriptions and feed raw input in.
package fx
