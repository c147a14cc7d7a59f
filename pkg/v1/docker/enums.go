package docker

// PruneType selects which kind of unused object a Prune call removes.
// Using strings allows direct matching with engine query values and makes
// adding new prune targets non-breaking.
type PruneType string

const (
	PruneBuild      PruneType = "build"
	PruneContainers PruneType = "containers"
	PruneImages     PruneType = "images"
	PruneNetworks   PruneType = "networks"
	PruneVolumes    PruneType = "volumes"
)

// String implements the Stringer interface.
func (p PruneType) String() string {
	return string(p)
}

// AllPruneTypes returns all known prune types in declaration order.
func AllPruneTypes() []PruneType {
	return []PruneType{
		PruneBuild,
		PruneContainers,
		PruneImages,
		PruneNetworks,
		PruneVolumes,
	}
}

// ParsePruneType converts a string to a PruneType.
// Returns the PruneType and true if valid, or empty and false if unknown.
func ParsePruneType(s string) (PruneType, bool) {
	p := PruneType(s)
	switch p {
	case PruneBuild, PruneContainers, PruneImages, PruneNetworks, PruneVolumes:
		return p, true
	default:
		return "", false
	}
}

// Signal is a process signal delivered by ContainerKill.
type Signal string

const (
	SignalHUP  Signal = "SIGHUP"
	SignalINT  Signal = "SIGINT"
	SignalKILL Signal = "SIGKILL"
	SignalTERM Signal = "SIGTERM"
	SignalUSR1 Signal = "SIGUSR1"
)

func (s Signal) String() string {
	return string(s)
}

// AllSignals returns all signals the engine accepts by name.
func AllSignals() []Signal {
	return []Signal{SignalHUP, SignalINT, SignalKILL, SignalTERM, SignalUSR1}
}

// WaitCondition is the state ContainerWait blocks for.
type WaitCondition string

const (
	WaitConditionNotRunning WaitCondition = "not-running"
	WaitConditionNextExit   WaitCondition = "next-exit"
	WaitConditionRemoved    WaitCondition = "removed"
)

func (w WaitCondition) String() string {
	return string(w)
}

// AllWaitConditions returns all wait conditions in declaration order.
func AllWaitConditions() []WaitCondition {
	return []WaitCondition{
		WaitConditionNotRunning,
		WaitConditionNextExit,
		WaitConditionRemoved,
	}
}
