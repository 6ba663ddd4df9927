// Package strip renders the status table onto an addressable LED strip.
//
// [Renderer] shifts every slot out in index order inside one interrupt
// critical section, then latches the frame. The strip itself is a
// [hal.Strip]; this package also provides two implementations of it:
//
//   - [Encoder] produces the WS2812 wire encoding (GRB, MSB first, each
//     data bit as a 3-bit SPI symbol) and writes whole frames to an
//     [io.Writer]
//   - [Recorder] keeps the last latched frame in memory
//
// [DecodeFrame] inverts the wire encoding.
package strip
