package hooks

import (
	"errors"
	"io"
	"reflect"
	"sync"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// StreamTracker keeps track of io.ReadCloser answers such as log streams
// until they are closed, so the ones a caller leaked can be closed together
// on shutdown.
//
// The answer hook replaces every io.ReadCloser answer with a tracking
// wrapper. Use it only with clients whose streaming operations declare
// io.ReadCloser as their result type.
type StreamTracker struct {
	mu   sync.Mutex
	open map[*trackedStream]struct{}
}

// NewStreamTracker returns an empty tracker.
func NewStreamTracker() *StreamTracker {
	return &StreamTracker{open: make(map[*trackedStream]struct{})}
}

// Option returns the answer hook wrapping streams.
func (s *StreamTracker) Option() delegating.Option {
	return delegating.WithAnswerHook(s.track)
}

func (s *StreamTracker) track(answer any) any {
	rc, ok := answer.(io.ReadCloser)
	if !ok || isNilStream(rc) {
		return answer
	}
	if _, tracked := rc.(*trackedStream); tracked {
		return answer
	}

	ts := &trackedStream{ReadCloser: rc, tracker: s}
	s.mu.Lock()
	s.open[ts] = struct{}{}
	s.mu.Unlock()
	return io.ReadCloser(ts)
}

// isNilStream also catches a nil pointer stored in the interface.
func isNilStream(rc io.ReadCloser) bool {
	if rc == nil {
		return true
	}
	v := reflect.ValueOf(rc)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Open returns the number of streams not closed yet.
func (s *StreamTracker) Open() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}

// CloseAll closes every open stream and returns the joined close errors.
func (s *StreamTracker) CloseAll() error {
	s.mu.Lock()
	streams := make([]*trackedStream, 0, len(s.open))
	for ts := range s.open {
		streams = append(streams, ts)
	}
	s.mu.Unlock()

	var errs []error
	for _, ts := range streams {
		if err := ts.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *StreamTracker) forget(ts *trackedStream) {
	s.mu.Lock()
	delete(s.open, ts)
	s.mu.Unlock()
}

type trackedStream struct {
	io.ReadCloser
	tracker *StreamTracker
	once    sync.Once
	err     error
}

// Close closes the underlying stream once; later calls return the first
// result.
func (t *trackedStream) Close() error {
	t.once.Do(func() {
		t.err = t.ReadCloser.Close()
		t.tracker.forget(t)
	})
	return t.err
}
