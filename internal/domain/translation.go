package domain

import "fmt"

type TranslationRequest struct {
	Text           string
	TargetLanguage string
}

// Prompt is the instruction sent to the language model.
func (r TranslationRequest) Prompt() string {
	return fmt.Sprintf("Translate the following text to %s:\n%s", r.TargetLanguage, r.Text)
}
