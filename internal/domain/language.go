package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Languages is the list of target languages offered to the user.
var Languages = []string{
	"English",
	"French",
	"Spanish",
	"German",
	"Chinese",
	"Japanese",
	"Russian",
	"Mongolian",
}

// DefaultLanguage is preselected in a fresh session.
const DefaultLanguage = "English"

// LocalOnlyLanguage has no voice on the cloud engine and is synthesized locally.
const LocalOnlyLanguage = "Mongolian"

type InputMode string

const (
	ModeDirectText InputMode = "Direct Text"
	ModeUploadFile InputMode = "Upload File"
)

func IsSupportedLanguage(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// SelectEngine picks the engine for a target language. Only LocalOnlyLanguage
// (any letter case) goes to the local engine.
func SelectEngine(targetLanguage string) EngineKind {
	if strings.EqualFold(targetLanguage, LocalOnlyLanguage) {
		return EngineLocal
	}
	return EngineCloud
}

// LanguageCode is the lower-cased first two characters of the target language.
func LanguageCode(targetLanguage string) string {
	return strings.ToLower(firstRunes(targetLanguage, 2))
}

// SpeechFileName builds {source}To{Code}{YYYYMMDD_HHMM}.mp3. Two calls within
// the same minute for the same pair produce the same name.
func SpeechFileName(sourceLabel, targetLanguage string, at time.Time) string {
	return fmt.Sprintf("%sTo%s%s.mp3", sourceLabel, capitalizedCode(targetLanguage), at.Format("20060102_1504"))
}

func capitalizedCode(targetLanguage string) string {
	r := []rune(strings.ToLower(firstRunes(targetLanguage, 2)))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
