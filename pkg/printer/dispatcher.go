package printer

import (
	"context"
	"sync"
	"time"
)

// Result reports the outcome of one dispatch call. Printed may be
// lower than Requested when a copy fails part-way through a multi-copy
// job; the remaining copies are never attempted.
type Result struct {
	Device    string `json:"device"`
	Requested int    `json:"requested"`
	Printed   int    `json:"printed"`
	Err       error  `json:"-"`
}

// OK reports whether every requested copy was printed.
func (r Result) OK() bool {
	return r.Err == nil && r.Printed == r.Requested
}

// Partial reports whether some copies printed before a failure.
func (r Result) Partial() bool {
	return r.Err != nil && r.Printed > 0
}

// Dispatcher delivers encoded documents to printer devices. Access to
// each device is serialized: two concurrent dispatches to the same
// device never interleave their byte streams, while dispatches to
// distinct devices proceed in parallel.
type Dispatcher struct {
	open        OpenFunc
	openTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewDispatcher creates a dispatcher with the given per-open timeout.
// A nil open function uses the default device opener.
func NewDispatcher(open OpenFunc, openTimeout time.Duration) *Dispatcher {
	if open == nil {
		open = Open
	}
	if openTimeout <= 0 {
		openTimeout = 5 * time.Second
	}
	return &Dispatcher{
		open:        open,
		openTimeout: openTimeout,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Dispatch writes data to the device once per copy, opening and
// closing the device around each copy so cut-separated jobs are never
// buffered together. It fails fast on the first copy that cannot be
// produced and reports how many copies made it out. No automatic
// retries: re-running against a jammed printer risks duplicate
// physical output, so retrying is the caller's decision.
func (d *Dispatcher) Dispatch(ctx context.Context, device string, data []byte, copies int) Result {
	if copies < 1 {
		copies = 1
	}
	res := Result{Device: device, Requested: copies}

	lock := d.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()

	for i := 0; i < copies; i++ {
		if err := d.writeCopy(ctx, device, data); err != nil {
			res.Err = err
			return res
		}
		res.Printed++
	}
	return res
}

func (d *Dispatcher) writeCopy(ctx context.Context, device string, data []byte) error {
	openCtx, cancel := context.WithTimeout(ctx, d.openTimeout)
	defer cancel()

	w, err := d.open(openCtx, device)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = w.Write(data)
	return err
}

// deviceLock returns the mutex serializing access to one device.
func (d *Dispatcher) deviceLock(device string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.locks[device]; ok {
		return l
	}
	l := &sync.Mutex{}
	d.locks[device] = l
	return l
}
