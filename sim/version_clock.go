package sim

// VersionClock hands out monotonically increasing version numbers per artifact.
// A clock is seeded from the store at simulator construction and never shared
// between simulations.
type VersionClock struct {
	versions map[ArtifactID]int64
}

// NewVersionClock creates a clock seeded with the current versions in store.
// A nil store yields an empty clock.
func NewVersionClock(store *GlobalMemory) *VersionClock {
	vc := &VersionClock{versions: make(map[ArtifactID]int64)}
	if store != nil {
		for id, a := range store.Store {
			vc.versions[id] = a.Version
		}
	}
	return vc
}

// Next allocates the next version for id: strictly greater than any version
// previously returned or seeded for it.
func (vc *VersionClock) Next(id ArtifactID) int64 {
	v := vc.versions[id] + 1
	vc.versions[id] = v
	return v
}

// Current returns the latest version allocated or seeded for id, 0 if none.
func (vc *VersionClock) Current(id ArtifactID) int64 {
	return vc.versions[id]
}
