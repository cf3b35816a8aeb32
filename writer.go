package mustache

import (
	"io"

	"github.com/pkg/errors"
)

// FutureWriter is the streaming sink every code node writes through. It
// accepts literal text and "deferred" subcomputations that each produce
// another FutureWriter, and flushes both to an underlying io.Writer in
// the exact order they were enqueued. A deferred item's
// function runs in its own goroutine as soon as it is enqueued, so
// independent section iterations make progress concurrently, but Flush
// still drains the queue strictly in order: document order is never a
// function of completion order.
type FutureWriter struct {
	items []futureItem
}

type futureItem struct {
	text     []byte
	deferred <-chan deferredResult
}

type deferredResult struct {
	fw  *FutureWriter
	err error
}

// DeferredFunc produces the FutureWriter a deferred item will flush.
type DeferredFunc func() (*FutureWriter, error)

// NewFutureWriter returns an empty writer with nothing enqueued.
func NewFutureWriter() *FutureWriter {
	return &FutureWriter{}
}

// WriteString appends a literal text fragment, honoring io.Writer's
// semantics in spirit even though FutureWriter buffers rather than
// writing immediately.
func (f *FutureWriter) WriteString(s string) error {
	f.items = append(f.items, futureItem{text: []byte(s)})
	return nil
}

// Enqueue schedules a deferred subcomputation. fn begins running
// immediately, in its own goroutine; its result is spliced into the
// stream at this position when Flush reaches it, regardless of how long
// fn takes relative to neighboring items.
func (f *FutureWriter) Enqueue(fn DeferredFunc) {
	ch := make(chan deferredResult, 1)
	go func() {
		fw, err := fn()
		ch <- deferredResult{fw: fw, err: err}
	}()
	f.items = append(f.items, futureItem{deferred: ch})
}

// Flush drains the queue in enqueue order, writing literal items
// directly and recursively flushing each deferred item's writer once it
// resolves. The first error — literal write failure or a deferred
// subcomputation's error — stops the flush and is returned wrapped with
// enough context to find the offending enqueue site.
func (f *FutureWriter) Flush(w io.Writer) error {
	for _, item := range f.items {
		if item.deferred == nil {
			if _, err := w.Write(item.text); err != nil {
				return errors.Wrap(err, "mustache: write failed")
			}
			continue
		}
		res := <-item.deferred
		if res.err != nil {
			return res.err
		}
		if res.fw == nil {
			continue
		}
		if err := res.fw.Flush(w); err != nil {
			return err
		}
	}
	return nil
}

// bytes materializes the writer's output without an intervening
// io.Writer, used by Function sections that must see their body as a
// string before handing it to a callable.
func (f *FutureWriter) bytes() ([]byte, error) {
	var buf writerBuf
	if err := f.Flush(&buf); err != nil {
		return nil, err
	}
	return buf.b, nil
}

// writerBuf is a minimal io.Writer sink; avoids pulling in bytes.Buffer
// just for its Write method in the hot Function-body path.
type writerBuf struct{ b []byte }

func (w *writerBuf) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}
