package domain

import "time"

type EngineKind string

const (
	EngineCloud EngineKind = "cloud"
	EngineLocal EngineKind = "local"
)

// SpeechArtifact is a generated audio file on disk plus its content.
type SpeechArtifact struct {
	Name      string
	Path      string
	Engine    EngineKind
	Audio     []byte
	CreatedAt time.Time
}
