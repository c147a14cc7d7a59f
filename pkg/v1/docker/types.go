package docker

import (
	"time"
)

// Filters maps a filter name to the accepted values, as sent to the engine
// in the "filters" query parameter.
type Filters map[string][]string

// ============================================================================
// System
// ============================================================================

// Ping is the result of a daemon ping.
type Ping struct {
	APIVersion     string
	OSType         string
	Experimental   bool
	BuilderVersion string
}

// Info holds system-wide information about the daemon.
type Info struct {
	ID                string
	Name              string
	ServerVersion     string
	OperatingSystem   string
	Architecture      string
	Containers        int
	ContainersRunning int
	Images            int
	NCPU              int
	MemTotal          int64
	DockerRootDir     string
	Labels            []string
}

// Version describes the daemon build.
type Version struct {
	Version       string
	APIVersion    string
	MinAPIVersion string
	GitCommit     string
	GoVersion     string
	Os            string
	Arch          string
	Build         string
}

// AuthConfig carries registry credentials.
type AuthConfig struct {
	Username      string
	Password      string
	Auth          string
	ServerAddress string
	IdentityToken string
	RegistryToken string
}

// AuthResponse is returned by a successful registry login.
type AuthResponse struct {
	Status        string
	IdentityToken string
}

// EventsOptions filters the daemon event stream.
type EventsOptions struct {
	Since   string
	Until   string
	Filters Filters
}

// EventMessage is one daemon event.
type EventMessage struct {
	Type   string
	Action string
	Actor  string
	Scope  string
	Time   int64
}

// EventStream delivers daemon events. Messages is closed when the stream
// ends; the terminal error, if any, is sent on Errs first.
type EventStream struct {
	Messages <-chan EventMessage
	Errs     <-chan error
}

// PruneReport summarizes a prune call.
type PruneReport struct {
	Type           PruneType
	ItemsDeleted   []string
	SpaceReclaimed uint64
}

// ============================================================================
// Containers
// ============================================================================

// AttachOptions selects the streams to attach to.
type AttachOptions struct {
	Stream     bool
	Stdin      bool
	Stdout     bool
	Stderr     bool
	DetachKeys string
	Logs       bool
}

// CommitOptions configures a container commit.
type CommitOptions struct {
	Reference string
	Comment   string
	Author    string
	Changes   []string
	Pause     bool
}

// IDResponse is the generic response carrying a new object ID.
type IDResponse struct {
	ID string
}

// ContainerConfig is the portable container configuration.
type ContainerConfig struct {
	Hostname     string
	User         string
	Image        string
	Cmd          []string
	Entrypoint   []string
	Env          []string
	WorkingDir   string
	Labels       map[string]string
	ExposedPorts []string
	Tty          bool
	OpenStdin    bool
	StopSignal   Signal
}

// CreateResponse is returned by ContainerCreate.
type CreateResponse struct {
	ID       string
	Warnings []string
}

// FilesystemChange is one entry of a container diff.
type FilesystemChange struct {
	Path string
	// Kind is 0 for modified, 1 for added and 2 for deleted.
	Kind uint8
}

// ContainerState is the runtime state part of ContainerJSON.
type ContainerState struct {
	Status     string
	Running    bool
	Paused     bool
	Restarting bool
	OOMKilled  bool
	Pid        int
	ExitCode   int
	Error      string
	StartedAt  string
	FinishedAt string
}

// ContainerJSON is the full inspect view of a container.
type ContainerJSON struct {
	ID           string
	Created      string
	Path         string
	Args         []string
	State        *ContainerState
	Image        string
	Name         string
	RestartCount int
	Config       *ContainerConfig
}

// ListContainersOptions filters ContainerList.
type ListContainersOptions struct {
	Size    bool
	All     bool
	Latest  bool
	Since   string
	Before  string
	Limit   int
	Filters Filters
}

// ContainerSummary is one row of ContainerList.
type ContainerSummary struct {
	ID      string
	Names   []string
	Image   string
	ImageID string
	Command string
	Created int64
	State   string
	Status  string
	Labels  map[string]string
}

// LogsOptions configures ContainerLogs.
type LogsOptions struct {
	ShowStdout bool
	ShowStderr bool
	Since      string
	Until      string
	Timestamps bool
	Follow     bool
	Tail       string
	Details    bool
}

// RemoveContainerOptions configures ContainerRemove.
type RemoveContainerOptions struct {
	RemoveVolumes bool
	RemoveLinks   bool
	Force         bool
}

// TopResponse lists the processes running in a container.
type TopResponse struct {
	Titles    []string
	Processes [][]string
}

// UpdateConfig holds the resource limits that can be changed on a live container.
type UpdateConfig struct {
	CPUShares         int64
	Memory            int64
	MemoryReservation int64
	NanoCPUs          int64
	RestartPolicy     string
}

// UpdateResponse is returned by ContainerUpdate.
type UpdateResponse struct {
	Warnings []string
}

// CopyToContainerOptions configures CopyToContainer.
type CopyToContainerOptions struct {
	AllowOverwriteDirWithFile bool
	CopyUIDGID                bool
}

// ============================================================================
// Exec
// ============================================================================

// ExecConfig describes a process to start in a running container.
type ExecConfig struct {
	User         string
	Privileged   bool
	Tty          bool
	AttachStdin  bool
	AttachStderr bool
	AttachStdout bool
	Detach       bool
	DetachKeys   string
	Env          []string
	WorkingDir   string
	Cmd          []string
}

// ExecInspect is the state of an exec instance.
type ExecInspect struct {
	ExecID      string
	ContainerID string
	Running     bool
	ExitCode    int
	Pid         int
}

// ExecStartOptions configures ExecStart.
type ExecStartOptions struct {
	Detach bool
	Tty    bool
}

// ============================================================================
// Images
// ============================================================================

// BuildOptions configures ImageBuild.
type BuildOptions struct {
	Tags        []string
	Dockerfile  string
	NoCache     bool
	Remove      bool
	ForceRemove bool
	PullParent  bool
	BuildArgs   map[string]*string
	Labels      map[string]string
	Target      string
	Platform    string
}

// ImageInspect is the full inspect view of an image.
type ImageInspect struct {
	ID           string
	RepoTags     []string
	RepoDigests  []string
	Parent       string
	Comment      string
	Created      string
	Author       string
	Architecture string
	Os           string
	Size         int64
	Config       *ContainerConfig
	LastTagTime  time.Time
}

// ListImagesOptions filters ImageList.
type ListImagesOptions struct {
	All            bool
	Filters        Filters
	SharedSize     bool
	ContainerCount bool
}

// ImageSummary is one row of ImageList.
type ImageSummary struct {
	ID          string
	ParentID    string
	RepoTags    []string
	RepoDigests []string
	Created     int64
	Size        int64
	Labels      map[string]string
	Containers  int64
}

// PullOptions configures ImagePull.
type PullOptions struct {
	All          bool
	RegistryAuth string
	Platform     string
}

// Identifier names an image in a repository, optionally with a tag.
type Identifier struct {
	Repository string
	Tag        string
}

// String formats the identifier the way the engine expects it on the wire.
func (i Identifier) String() string {
	if i.Tag == "" {
		return i.Repository
	}
	return i.Repository + ":" + i.Tag
}

// PushOptions configures ImagePush.
type PushOptions struct {
	All          bool
	RegistryAuth string
	Platform     string
}

// RemoveImageOptions configures ImageRemove.
type RemoveImageOptions struct {
	Force         bool
	PruneChildren bool
}

// DeleteResponse reports one image layer untagged or deleted.
type DeleteResponse struct {
	Untagged string
	Deleted  string
}

// SearchResult is one hit of ImageSearch.
type SearchResult struct {
	Name        string
	Description string
	StarCount   int
	IsOfficial  bool
}

// ============================================================================
// Networks
// ============================================================================

// NetworkCreateOptions configures NetworkCreate.
type NetworkCreateOptions struct {
	Driver     string
	Scope      string
	Internal   bool
	Attachable bool
	EnableIPv6 bool
	Options    map[string]string
	Labels     map[string]string
}

// NetworkCreateResponse is returned by NetworkCreate.
type NetworkCreateResponse struct {
	ID      string
	Warning string
}

// NetworkResource is the inspect view of a network.
type NetworkResource struct {
	Name       string
	ID         string
	Created    time.Time
	Scope      string
	Driver     string
	Internal   bool
	Attachable bool
	Containers map[string]string
	Options    map[string]string
	Labels     map[string]string
}

// ListNetworksOptions filters NetworkList.
type ListNetworksOptions struct {
	Filters Filters
}

// ============================================================================
// Volumes
// ============================================================================

// VolumeCreateOptions configures VolumeCreate.
type VolumeCreateOptions struct {
	Name       string
	Driver     string
	DriverOpts map[string]string
	Labels     map[string]string
}

// Volume is the inspect view of a named volume.
type Volume struct {
	Name       string
	Driver     string
	Mountpoint string
	CreatedAt  string
	Scope      string
	Labels     map[string]string
	Options    map[string]string
}

// ListVolumesOptions filters VolumeList.
type ListVolumesOptions struct {
	Filters Filters
}
