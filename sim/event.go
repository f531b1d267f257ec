package sim

// EventKind names the protocol step an event drives.
type EventKind string

const (
	KindReadRequest  EventKind = "READ_REQUEST"
	KindReadResponse EventKind = "READ_RESPONSE"
	KindWriteRequest EventKind = "WRITE_REQUEST"
	KindWriteCommit  EventKind = "WRITE_COMMIT"
)

// Endpoint names for engine-generated events that do not originate at an agent.
const (
	EndpointCache  = "cache"  // source of read responses served from a local cache
	EndpointGlobal = "global" // the global store
)

// Payload is the kind-specific body of an Event. The set of implementations is
// closed: ReadRequest, ReadResponse, WriteRequest and WriteCommit.
type Payload interface {
	Kind() EventKind
	sealed()
}

// ReadRequest asks for an artifact on behalf of the destination agent.
type ReadRequest struct {
	Artifact    ArtifactID
	RequestedAt int64
}

// ReadResponse delivers a version to the destination agent.
// Version is captured when the request is handled, not when the response lands.
type ReadResponse struct {
	Artifact    ArtifactID
	Version     int64
	RequestedAt int64
	Hit         bool
}

// WriteRequest writes a new version of an artifact from the source agent.
type WriteRequest struct {
	Artifact    ArtifactID
	Size        int64
	RequestedAt int64
}

// WriteCommit applies a written version to the global store.
type WriteCommit struct {
	Artifact    ArtifactID
	Version     int64
	Size        int64
	Scope       Scope
	RequestedAt int64 // time the originating write request was handled
}

func (ReadRequest) Kind() EventKind  { return KindReadRequest }
func (ReadResponse) Kind() EventKind { return KindReadResponse }
func (WriteRequest) Kind() EventKind { return KindWriteRequest }
func (WriteCommit) Kind() EventKind  { return KindWriteCommit }

func (ReadRequest) sealed()  {}
func (ReadResponse) sealed() {}
func (WriteRequest) sealed() {}
func (WriteCommit) sealed()  {}

// Event is a scheduled step of the simulation.
type Event struct {
	Time        int64 // scheduled logical time (in ticks)
	Seq         int64 // push order; breaks ties between equal times
	Source      string
	Destination string
	Payload     Payload
}

// Kind returns the kind of the event's payload.
func (e *Event) Kind() EventKind {
	return e.Payload.Kind()
}
