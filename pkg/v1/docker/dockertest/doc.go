// Package dockertest provides test doubles and a conformance suite for
// docker.Client wrappers.
//
// MockClient is a testify mock of docker.Client. Suite drives every
// docker.Client operation through a wrapper built on delegating.New and
// checks it reaches the delegate once and reports its result to the right
// hook. Operations are discovered by reflection, so methods added to
// docker.Client are covered without touching the suite:
//
//	func TestConformance(t *testing.T) {
//		suite := &dockertest.Suite{
//			New: func(d docker.Client, opts ...delegating.Option) docker.Client {
//				return mywrapper.New(d, opts...)
//			},
//		}
//		suite.Run(t)
//	}
//
// Arguments and sentinel results come from a FakeFactory. Types it cannot
// build, such as func types or unregistered interfaces, fail the case with a
// "setup:" prefixed SynthesisError rather than skipping it; register a fake
// with RegisterFake to cover them.
package dockertest

//go:generate go run ../../../../cmd/delegategen generate --config ../../../../delegategen.yaml --target dockertest
