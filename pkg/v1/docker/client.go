package docker

import (
	"context"
	"io"
	"time"
)

// Client is the composite container-engine client interface.
// It is versioned with this package and grows as the engine API grows;
// implementations outside this package should embed or wrap an existing
// Client (see the delegating package) rather than implement it from scratch.
type Client interface {
	SystemAPI
	ContainerAPI
	ExecAPI
	ImageAPI
	NetworkAPI
	VolumeAPI
}

// SystemAPI covers daemon-level calls and client lifecycle.
type SystemAPI interface {
	// Ping checks the daemon is reachable and reports its API version.
	Ping(ctx context.Context) (Ping, error)

	// Info returns system-wide information about the daemon.
	Info(ctx context.Context) (Info, error)

	// ServerVersion returns version information of the daemon.
	ServerVersion(ctx context.Context) (Version, error)

	// Auth validates credentials against a registry.
	Auth(ctx context.Context, auth AuthConfig) (AuthResponse, error)

	// AuthConfig returns the credentials the client was configured with, or nil.
	AuthConfig() *AuthConfig

	// Events streams daemon events until ctx is cancelled.
	Events(ctx context.Context, options EventsOptions) (*EventStream, error)

	// Prune removes unused objects of the given type.
	Prune(ctx context.Context, pruneType PruneType) (*PruneReport, error)

	// DaemonHost returns the host address used by the client.
	DaemonHost() string

	// NegotiateAPIVersion queries the daemon and downgrades the client API
	// version if needed. Failures leave the configured version in place.
	NegotiateAPIVersion(ctx context.Context)

	// Close releases the transport held by the client.
	Close() error
}

// ContainerAPI covers container lifecycle and inspection.
type ContainerAPI interface {
	ContainerAttach(ctx context.Context, containerID string, options AttachOptions) (io.ReadCloser, error)
	ContainerCommit(ctx context.Context, containerID string, options CommitOptions) (IDResponse, error)
	ContainerCreate(ctx context.Context, config *ContainerConfig, name string) (CreateResponse, error)
	ContainerDiff(ctx context.Context, containerID string) ([]FilesystemChange, error)
	ContainerInspect(ctx context.Context, containerID string) (*ContainerJSON, error)
	ContainerKill(ctx context.Context, containerID string, signal Signal) error
	ContainerList(ctx context.Context, options ListContainersOptions) ([]ContainerSummary, error)
	ContainerLogs(ctx context.Context, containerID string, options LogsOptions) (io.ReadCloser, error)
	ContainerPause(ctx context.Context, containerID string) error
	ContainerRemove(ctx context.Context, containerID string, options RemoveContainerOptions) error
	ContainerRename(ctx context.Context, containerID string, newName string) error
	ContainerRestart(ctx context.Context, containerID string, timeout *time.Duration) error
	ContainerStart(ctx context.Context, containerID string) error
	ContainerStats(ctx context.Context, containerID string, stream bool) (io.ReadCloser, error)
	ContainerStop(ctx context.Context, containerID string, timeout *time.Duration) error
	ContainerTop(ctx context.Context, containerID string, psArgs []string) (TopResponse, error)
	ContainerUnpause(ctx context.Context, containerID string) error
	ContainerUpdate(ctx context.Context, containerID string, update UpdateConfig) (UpdateResponse, error)
	ContainerWait(ctx context.Context, containerID string, condition WaitCondition) (int64, error)

	// CopyFromContainer returns a tar archive of srcPath inside the container.
	CopyFromContainer(ctx context.Context, containerID string, srcPath string) (io.ReadCloser, error)

	// CopyToContainer extracts the tar archive in content at dstPath.
	CopyToContainer(ctx context.Context, containerID string, dstPath string, content io.Reader, options CopyToContainerOptions) error
}

// ExecAPI covers processes started inside running containers.
type ExecAPI interface {
	ExecCreate(ctx context.Context, containerID string, config ExecConfig) (IDResponse, error)
	ExecInspect(ctx context.Context, execID string) (ExecInspect, error)
	ExecStart(ctx context.Context, execID string, options ExecStartOptions) (io.ReadCloser, error)
}

// ImageAPI covers image build, distribution and housekeeping.
type ImageAPI interface {
	ImageBuild(ctx context.Context, buildContext io.Reader, options BuildOptions) (io.ReadCloser, error)
	ImageCreate(ctx context.Context, repository string, source io.Reader) (IDResponse, error)
	ImageInspect(ctx context.Context, imageID string) (*ImageInspect, error)
	ImageList(ctx context.Context, options ListImagesOptions) ([]ImageSummary, error)
	ImageLoad(ctx context.Context, input io.Reader) (io.ReadCloser, error)
	ImagePull(ctx context.Context, ref string, options PullOptions) (io.ReadCloser, error)
	ImagePush(ctx context.Context, ref Identifier, options PushOptions) (io.ReadCloser, error)
	ImageRemove(ctx context.Context, imageID string, options RemoveImageOptions) ([]DeleteResponse, error)

	// ImageSave exports one or more images as a single tar stream.
	ImageSave(ctx context.Context, imageIDs ...string) (io.ReadCloser, error)

	ImageSearch(ctx context.Context, term string, limit int) ([]SearchResult, error)
	ImageTag(ctx context.Context, source string, repository string, tag string) error
}

// NetworkAPI covers user-defined networks.
type NetworkAPI interface {
	NetworkConnect(ctx context.Context, networkID string, containerID string) error
	NetworkCreate(ctx context.Context, name string, options NetworkCreateOptions) (NetworkCreateResponse, error)
	NetworkDisconnect(ctx context.Context, networkID string, containerID string, force bool) error
	NetworkInspect(ctx context.Context, networkID string) (*NetworkResource, error)
	NetworkList(ctx context.Context, options ListNetworksOptions) ([]NetworkResource, error)
	NetworkRemove(ctx context.Context, networkID string) error
}

// VolumeAPI covers named volumes.
type VolumeAPI interface {
	VolumeCreate(ctx context.Context, options VolumeCreateOptions) (*Volume, error)
	VolumeInspect(ctx context.Context, name string) (*Volume, error)
	VolumeList(ctx context.Context, options ListVolumesOptions) ([]*Volume, error)
	VolumeRemove(ctx context.Context, name string, force bool) error
}
