package application

import "llm-translator/internal/domain"

type Stage string

const (
	StageIdle        Stage = "idle"
	StageTextReady   Stage = "text_ready"
	StageTranslated  Stage = "translated"
	StageSpeechReady Stage = "speech_ready"
)

// Session is the state carried between independent user actions. Pipeline
// methods take a Session and return the next one; a failed action returns the
// previous state unchanged apart from Notices.
type Session struct {
	Language   string
	Mode       domain.InputMode
	SourceText string
	SourceFile string
	Translated string
	Artifact   *domain.SpeechArtifact
	Stage      Stage

	// Notices holds the messages of the most recent action only.
	Notices []domain.Notice
}

func NewSession() Session {
	return Session{
		Language: domain.DefaultLanguage,
		Mode:     domain.ModeDirectText,
		Stage:    StageIdle,
	}
}

func (s Session) HasErrors() bool {
	for _, n := range s.Notices {
		if n.Level == domain.NoticeError {
			return true
		}
	}
	return false
}
