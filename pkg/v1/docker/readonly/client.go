// Package readonly provides a docker.Client that refuses every operation
// changing engine state and forwards the rest.
package readonly

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker"
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// ErrReadOnly is returned, wrapped with the operation name, by every
// refused operation.
var ErrReadOnly = errors.New("operation not permitted on a read-only client")

// Client refuses mutating operations without contacting the delegate and
// without running hooks. Inspection, listing and streaming operations are
// forwarded by the embedded delegating.Client, hooks included.
type Client struct {
	*delegating.Client
}

var _ docker.Client = (*Client)(nil)

// New returns a read-only view of delegate. It panics if delegate is nil.
func New(delegate docker.Client, opts ...delegating.Option) *Client {
	return &Client{Client: delegating.New(delegate, opts...)}
}

// MutatingOperations lists the docker.Client methods Client refuses.
func MutatingOperations() []string {
	return []string{
		"Prune",
		"ContainerCommit",
		"ContainerCreate",
		"ContainerKill",
		"ContainerPause",
		"ContainerRemove",
		"ContainerRename",
		"ContainerRestart",
		"ContainerStart",
		"ContainerStop",
		"ContainerUnpause",
		"ContainerUpdate",
		"CopyToContainer",
		"ExecCreate",
		"ExecStart",
		"ImageBuild",
		"ImageCreate",
		"ImageLoad",
		"ImagePull",
		"ImagePush",
		"ImageRemove",
		"ImageTag",
		"NetworkConnect",
		"NetworkCreate",
		"NetworkDisconnect",
		"NetworkRemove",
		"VolumeCreate",
		"VolumeRemove",
	}
}

func refuse(operation string) error {
	return fmt.Errorf("%s: %w", operation, ErrReadOnly)
}

// ============================================================================
// System
// ============================================================================

func (c *Client) Prune(context.Context, docker.PruneType) (*docker.PruneReport, error) {
	return nil, refuse("Prune")
}

// ============================================================================
// Containers
// ============================================================================

func (c *Client) ContainerCommit(context.Context, string, docker.CommitOptions) (docker.IDResponse, error) {
	return docker.IDResponse{}, refuse("ContainerCommit")
}

func (c *Client) ContainerCreate(context.Context, *docker.ContainerConfig, string) (docker.CreateResponse, error) {
	return docker.CreateResponse{}, refuse("ContainerCreate")
}

func (c *Client) ContainerKill(context.Context, string, docker.Signal) error {
	return refuse("ContainerKill")
}

func (c *Client) ContainerPause(context.Context, string) error {
	return refuse("ContainerPause")
}

func (c *Client) ContainerRemove(context.Context, string, docker.RemoveContainerOptions) error {
	return refuse("ContainerRemove")
}

func (c *Client) ContainerRename(context.Context, string, string) error {
	return refuse("ContainerRename")
}

func (c *Client) ContainerRestart(context.Context, string, *time.Duration) error {
	return refuse("ContainerRestart")
}

func (c *Client) ContainerStart(context.Context, string) error {
	return refuse("ContainerStart")
}

func (c *Client) ContainerStop(context.Context, string, *time.Duration) error {
	return refuse("ContainerStop")
}

func (c *Client) ContainerUnpause(context.Context, string) error {
	return refuse("ContainerUnpause")
}

func (c *Client) ContainerUpdate(context.Context, string, docker.UpdateConfig) (docker.UpdateResponse, error) {
	return docker.UpdateResponse{}, refuse("ContainerUpdate")
}

func (c *Client) CopyToContainer(context.Context, string, string, io.Reader, docker.CopyToContainerOptions) error {
	return refuse("CopyToContainer")
}

// ============================================================================
// Exec
// ============================================================================

func (c *Client) ExecCreate(context.Context, string, docker.ExecConfig) (docker.IDResponse, error) {
	return docker.IDResponse{}, refuse("ExecCreate")
}

func (c *Client) ExecStart(context.Context, string, docker.ExecStartOptions) (io.ReadCloser, error) {
	return nil, refuse("ExecStart")
}

// ============================================================================
// Images
// ============================================================================

func (c *Client) ImageBuild(context.Context, io.Reader, docker.BuildOptions) (io.ReadCloser, error) {
	return nil, refuse("ImageBuild")
}

func (c *Client) ImageCreate(context.Context, string, io.Reader) (docker.IDResponse, error) {
	return docker.IDResponse{}, refuse("ImageCreate")
}

func (c *Client) ImageLoad(context.Context, io.Reader) (io.ReadCloser, error) {
	return nil, refuse("ImageLoad")
}

func (c *Client) ImagePull(context.Context, string, docker.PullOptions) (io.ReadCloser, error) {
	return nil, refuse("ImagePull")
}

func (c *Client) ImagePush(context.Context, docker.Identifier, docker.PushOptions) (io.ReadCloser, error) {
	return nil, refuse("ImagePush")
}

func (c *Client) ImageRemove(context.Context, string, docker.RemoveImageOptions) ([]docker.DeleteResponse, error) {
	return nil, refuse("ImageRemove")
}

func (c *Client) ImageTag(context.Context, string, string, string) error {
	return refuse("ImageTag")
}

// ============================================================================
// Networks
// ============================================================================

func (c *Client) NetworkConnect(context.Context, string, string) error {
	return refuse("NetworkConnect")
}

func (c *Client) NetworkCreate(context.Context, string, docker.NetworkCreateOptions) (docker.NetworkCreateResponse, error) {
	return docker.NetworkCreateResponse{}, refuse("NetworkCreate")
}

func (c *Client) NetworkDisconnect(context.Context, string, string, bool) error {
	return refuse("NetworkDisconnect")
}

func (c *Client) NetworkRemove(context.Context, string) error {
	return refuse("NetworkRemove")
}

// ============================================================================
// Volumes
// ============================================================================

func (c *Client) VolumeCreate(context.Context, docker.VolumeCreateOptions) (*docker.Volume, error) {
	return nil, refuse("VolumeCreate")
}

func (c *Client) VolumeRemove(context.Context, string, bool) error {
	return refuse("VolumeRemove")
}
