package tasks

// ProgressUpdate is sent through a channel during a performance.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Verse   uint   // Verse number for SingVerse updates
}

// Operation phase enumeration
type Phase int

const (
	SingVerse Phase = iota
	Record
)

func (p Phase) String() string {
	switch p {
	case SingVerse:
		return "sing"
	case Record:
		return "record"
	default:
		return "unknown"
	}
}
