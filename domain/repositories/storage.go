package repositories

// AudioStore stages transient audio artifacts between pipeline steps.
//
// Recordings are written once and read once by transcription; reply
// audio is written once and then served to the telephony provider over
// HTTP, so it must remain available after the staging call returns.
type AudioStore interface {
	// StageRecording writes a fetched recording under a caller-chosen
	// unique name and returns the local path.
	StageRecording(name string, data []byte) (string, error)
	// StageReply writes synthesized audio under a caller-chosen unique
	// name and returns the publicly reachable URL for it.
	StageReply(name string, data []byte) (string, error)
	// Remove deletes a staged file. Removing a missing file is not an error.
	Remove(path string) error
}
