// Package command turns raw controller inputs into status table commands.
//
// Two inputs feed it:
//
//   - Host output reports. [DecodeReport] recognizes exactly one shape,
//     [ReportIDSetLED] followed by index, red, green and blue. Anything
//     else is ignored without an error.
//   - The reboot button. [Button] watches the pin level once per tick and
//     reports the not-pressed to pressed edge.
//
// Reports arrive in interrupt context, so they are never applied directly.
// [HandleReport] decodes and offers them to a bounded [Queue] that the
// control loop drains at a fixed point of each tick. A full queue drops the
// newest command; the callback never blocks.
package command
