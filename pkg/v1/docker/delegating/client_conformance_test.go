package delegating_test

import (
	"testing"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/dockertest"
)

func TestClient_Conformance(t *testing.T) {
	suite := &dockertest.Suite{}
	suite.Run(t)
}
