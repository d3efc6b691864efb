package dispatch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
)

const maxFrameSize = 4 << 20

// Serve reads newline-delimited JSON requests from r and writes one
// response line per request to w. A malformed line produces an error
// response and the loop continues; the loop ends on EOF, context
// cancellation or a write failure.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			d.log.Warn("malformed request frame", "error", err)
			if err := enc.Encode(errorResponse("", "invalid request: "+err.Error())); err != nil {
				return err
			}
			continue
		}

		if err := enc.Encode(d.Dispatch(ctx, req)); err != nil {
			return err
		}
	}
	return scanner.Err()
}
