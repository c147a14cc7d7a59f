package delegating

import (
	"fmt"
	"reflect"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
)

//go:generate go run ../../../../cmd/delegategen generate --config ../../../../delegategen.yaml --target delegating

// AnswerHook is called with the result of every non-void operation that
// completed without error. Whatever it returns is handed to the caller in
// place of the original answer, so it must return a value assignable to the
// operation's result type (or nil for the zero value).
type AnswerHook func(answer any) any

// VoidHook is called after every void operation that completed without error.
type VoidHook func()

// DelegateFunc picks the delegate for a single call. It receives the
// delegate the Client was constructed with.
type DelegateFunc func(base docker.Client) docker.Client

// Option configures a Client.
type Option func(*Client)

// WithAnswerHook adds an answer hook. Hooks added by repeated calls run in
// registration order, each receiving the previous hook's output.
func WithAnswerHook(hook AnswerHook) Option {
	return func(c *Client) {
		if hook == nil {
			return
		}
		prev := c.onAnswer
		if prev == nil {
			c.onAnswer = hook
			return
		}
		c.onAnswer = func(answer any) any {
			return hook(prev(answer))
		}
	}
}

// WithVoidHook adds a void hook. Hooks added by repeated calls run in
// registration order.
func WithVoidHook(hook VoidHook) Option {
	return func(c *Client) {
		if hook == nil {
			return
		}
		prev := c.onVoid
		if prev == nil {
			c.onVoid = hook
			return
		}
		c.onVoid = func() {
			prev()
			hook()
		}
	}
}

// WithDelegateFunc overrides how the delegate is obtained on every call,
// e.g. to connect lazily or to route calls between several engines.
// The function may be called concurrently if the Client is.
func WithDelegateFunc(fn DelegateFunc) Option {
	return func(c *Client) {
		c.delegateFunc = fn
	}
}

// Client implements docker.Client by forwarding every call to a delegate.
//
// Every method:
//   - calls Delegate,
//   - calls the method of the same name on the delegate with the same arguments,
//   - returns the delegate's results untouched if it returned an error,
//   - for methods without an answer, calls InterceptVoid and returns,
//   - otherwise passes the answer through InterceptAnswer and returns that.
//
// Types that need to act on a few specific calls should embed *Client and
// define only those methods; everything else keeps forwarding. Such methods
// decide for themselves whether to call InterceptAnswer or InterceptVoid.
// Code that must act on every call, including calls added to docker.Client
// after it was written, should use WithAnswerHook and WithVoidHook instead.
//
// Client adds no synchronization of its own: it is as safe for concurrent
// use as its delegate and hooks are.
type Client struct {
	delegate     docker.Client
	delegateFunc DelegateFunc
	onAnswer     AnswerHook
	onVoid       VoidHook
}

var _ docker.Client = (*Client)(nil)

// New returns a Client forwarding to delegate. It panics if delegate is nil.
func New(delegate docker.Client, opts ...Option) *Client {
	if delegate == nil {
		panic("delegating: nil delegate")
	}
	c := &Client{delegate: delegate}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Delegate returns the docker.Client the current call is forwarded to.
func (c *Client) Delegate() docker.Client {
	if c.delegateFunc != nil {
		return c.delegateFunc(c.delegate)
	}
	return c.delegate
}

// InterceptAnswer runs the configured answer hooks on answer. Without
// hooks it returns answer unchanged.
func (c *Client) InterceptAnswer(answer any) any {
	if c.onAnswer == nil {
		return answer
	}
	return c.onAnswer(answer)
}

// InterceptVoid runs the configured void hooks, if any.
func (c *Client) InterceptVoid() {
	if c.onVoid != nil {
		c.onVoid()
	}
}

// answer routes a typed answer through InterceptAnswer and back to its
// static type.
func answer[T any](c *Client, v T) T {
	out := c.InterceptAnswer(v)
	if out == nil {
		var zero T
		return zero
	}
	typed, ok := out.(T)
	if !ok {
		want := reflect.TypeOf((*T)(nil)).Elem()
		panic(fmt.Sprintf("delegating: answer hook returned %T, want %s", out, want))
	}
	return typed
}
