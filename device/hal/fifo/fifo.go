package fifo

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/ardnew/neostatus/pkg"
)

// MaxPayload is the largest message payload. Messages stay below PIPE_BUF
// so non-blocking writes are atomic.
const MaxPayload = 512

// Message types for the FIFO protocol.
const (
	msgReport = 0x02 // HID report (OUT on host_to_device, IN on device_to_host)
	msgAck    = 0x03 // Host collected the last IN report
	msgButton = 0x20 // Button level: payload [1 = high, 0 = low]
	msgFrame  = 0x21 // WS2812 wire frame
)

// Header size for messages.
const headerSize = 3 // type (1) + length (2)

// FIFO file names.
const (
	fifoHostToDevice = "host_to_device"
	fifoDeviceToHost = "device_to_host"
	fifoButton       = "button"
	fifoStrip        = "strip"
)

var fifoNames = [...]string{fifoHostToDevice, fifoDeviceToHost, fifoButton, fifoStrip}

// devicePrefix prefixes every device directory under the bus directory.
const devicePrefix = "device-"

// pollInterval bounds each blocking read so cancellation is noticed.
const pollInterval = 100 * time.Millisecond

// frameWriteTimeout bounds a strip frame write. Frames nobody reads are
// dropped once the pipe is full rather than stalling the loop.
const frameWriteTimeout = 2 * time.Millisecond

// pipe frames messages over one named pipe. A pipe has at most one
// reader goroutine; writers are serialized.
type pipe struct {
	f    *os.File
	done <-chan struct{}

	// writeTimeout bounds each send when nonzero; otherwise sends block
	// until the reader drains the pipe.
	writeTimeout time.Duration

	wmu  sync.Mutex
	wbuf [headerSize + MaxPayload]byte
	rbuf [headerSize + MaxPayload]byte
}

// createFIFO creates a named pipe at path, replacing any existing file.
func createFIFO(path string) error {
	os.Remove(path)
	if err := syscall.Mkfifo(path, 0o666); err != nil {
		return fmt.Errorf("mkfifo %s: %w", filepath.Base(path), err)
	}
	return nil
}

// openPipe opens a named pipe with O_RDWR|O_NONBLOCK, so opening never
// waits for the other side.
func openPipe(path string, done <-chan struct{}) (*pipe, error) {
	f, err := os.OpenFile(path, os.O_RDWR|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	return &pipe{f: f, done: done}, nil
}

func (p *pipe) Close() error {
	return p.f.Close()
}

// send writes one message [type, len_lo, len_hi, data...].
func (p *pipe) send(msgType byte, data []byte) error {
	if len(data) > MaxPayload {
		return pkg.ErrBufferTooSmall
	}

	p.wmu.Lock()
	defer p.wmu.Unlock()

	p.wbuf[0] = msgType
	binary.LittleEndian.PutUint16(p.wbuf[1:headerSize], uint16(len(data)))
	copy(p.wbuf[headerSize:], data)
	total := headerSize + len(data)

	if p.writeTimeout > 0 {
		p.f.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	}
	written := 0
	for written < total {
		n, err := p.f.Write(p.wbuf[written:total])
		written += n
		if err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(p.f.Name()), err)
		}
	}
	return nil
}

// receive reads one message. The payload aliases an internal buffer that
// is reused by the next call.
func (p *pipe) receive(ctx context.Context) (byte, []byte, error) {
	header := p.rbuf[:headerSize]
	if err := p.readFull(ctx, header); err != nil {
		return 0, nil, err
	}
	msgType := header[0]
	length := int(binary.LittleEndian.Uint16(header[1:headerSize]))
	if length > MaxPayload {
		return 0, nil, fmt.Errorf("message length %d: %w", length, pkg.ErrProtocol)
	}

	payload := p.rbuf[headerSize : headerSize+length]
	if err := p.readFull(ctx, payload); err != nil {
		return 0, nil, err
	}
	return msgType, payload, nil
}

// readFull reads exactly len(buf) bytes, retrying on read deadlines so
// ctx and the close channel are checked periodically.
func (p *pipe) readFull(ctx context.Context, buf []byte) error {
	total := 0
	for total < len(buf) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.done:
			return pkg.ErrCancelled
		default:
		}

		p.f.SetReadDeadline(time.Now().Add(pollInterval))
		n, err := p.f.Read(buf[total:])
		total += n
		if err != nil {
			if os.IsTimeout(err) || err == io.EOF {
				continue
			}
			return err
		}
	}
	return nil
}
