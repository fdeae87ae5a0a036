package worker

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/cwbudde/algo-kernel/internal/logger"
	"github.com/cwbudde/algo-kernel/kernel"
)

const defaultMaxLineBytes = 64 << 20

// ErrNotInitialized is reported for compute commands received before init.
var ErrNotInitialized = errors.New("kernel not initialized")

// Worker answers protocol requests. A Worker is not safe for concurrent
// use; Serve handles one request at a time.
type Worker struct {
	log          logger.Logger
	newID        func() string
	maxLineBytes int
	ready        bool
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the logger. The default discards all records.
func WithLogger(l logger.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.log = l
		}
	}
}

// WithIDGenerator sets the function that names requests arriving without
// a requestId. The default generates random UUIDs.
func WithIDGenerator(fn func() string) Option {
	return func(w *Worker) {
		if fn != nil {
			w.newID = fn
		}
	}
}

// WithMaxLineBytes limits the size of one request line.
func WithMaxLineBytes(n int) Option {
	return func(w *Worker) {
		if n > 0 {
			w.maxLineBytes = n
		}
	}
}

// New returns a Worker that has not yet received init.
func New(opts ...Option) *Worker {
	w := &Worker{
		log:          logger.Discard(),
		newID:        uuid.NewString,
		maxLineBytes: defaultMaxLineBytes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Ready reports whether init has been received.
func (w *Worker) Ready() bool { return w.ready }

// Handle answers one request. The boolean is false when the request has
// no cmd and must not be answered.
func (w *Worker) Handle(req Request) (Response, bool) {
	if req.Cmd == "" {
		return Response{}, false
	}

	id := req.RequestID
	if len(id) == 0 || string(id) == "null" {
		id = json.RawMessage(strconv.Quote(w.newID()))
	}

	log := w.log.With("cmd", req.Cmd, "requestId", string(id))
	log.Debug("request received")

	switch req.Cmd {
	case CmdInit:
		w.ready = true
		impl := kernel.Implementation()
		log.Info("kernel ready", "kernel", impl)
		return Response{Cmd: CmdReady, RequestID: id, Kernel: impl}, true

	case CmdCompute, CmdComputeVWAP, CmdComputeVWAPChecked:
		if !w.ready {
			log.Warn("compute before init")
			return errorResponse(id, ErrNotInitialized.Error()), true
		}
		return w.compute(log, id, req), true

	default:
		log.Warn("unknown command")
		return errorResponse(id, fmt.Sprintf("unknown command %q", req.Cmd)), true
	}
}

// compute runs on the decoded request; decoding already produced
// worker-owned copies of the host arrays.
func (w *Worker) compute(log logger.Logger, id json.RawMessage, req Request) Response {
	switch req.Cmd {
	case CmdCompute:
		data := []float64(req.Data)
		if data == nil {
			data = []float64{}
		}
		kernel.Transform(data, data)
		return resultResponse(id, data)

	case CmdComputeVWAP:
		return resultResponse(id, kernel.ComputeVWAP(req.Prices, req.Vols))

	default:
		res, err := kernel.WeightedAverage(req.Prices, req.Vols)
		if err != nil {
			log.Debug("weighted average rejected", "error", err)
			ok := false
			resp := errorResponse(id, err.Error())
			resp.OK = &ok
			return resp
		}
		ok := true
		resp := resultResponse(id, []float64{res.Value})
		resp.OK = &ok
		total := Float(res.TotalWeight)
		resp.TotalWeight = &total
		resp.Pairs = &res.Pairs
		resp.Skipped = &res.Skipped
		return resp
	}
}

// Serve reads one request per line from r and writes one reply per line
// to out until r is exhausted or ctx is done. Blank lines are skipped and
// undecodable lines produce an error reply. Serve returns nil on EOF.
func (w *Worker) Serve(ctx context.Context, r io.Reader, out io.Writer) error {
	initial := min(64*1024, w.maxLineBytes)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initial), w.maxLineBytes)
	bw := bufio.NewWriter(out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			w.log.Warn("malformed request", "error", err)
			if err := writeResponse(bw, errorResponse(nil, "malformed request: "+err.Error())); err != nil {
				return err
			}
			continue
		}

		resp, ok := w.Handle(req)
		if !ok {
			w.log.Debug("request without cmd dropped")
			continue
		}
		if err := writeResponse(bw, resp); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("worker: read request: %w", err)
	}
	return nil
}

func writeResponse(bw *bufio.Writer, resp Response) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("worker: encode reply: %w", err)
	}
	b = append(b, '\n')
	if _, err := bw.Write(b); err != nil {
		return fmt.Errorf("worker: write reply: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("worker: write reply: %w", err)
	}
	return nil
}
