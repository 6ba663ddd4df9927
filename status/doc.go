// Package status implements the per-LED status table.
//
// The table is a fixed arena of [Count] slots, one per physical LED, in
// render order. Each slot holds a raw RGB color and the time it has left
// before it expires. A slot is off exactly when its remaining lifetime is
// zero, and expiry zeroes the color in the same step, so the two can never
// disagree.
//
// Only two operations change a slot:
//
//   - [Table.Set] writes a color and restarts the lifetime at the table's
//     timeout window.
//   - [Table.Tick] counts lifetimes down and clears slots that run out.
//
// Indices outside [0, Count) are ignored everywhere. They come straight
// from host reports and must never disturb neighboring slots.
//
// The table performs no locking. It belongs to the control loop, which is
// its only writer.
package status
