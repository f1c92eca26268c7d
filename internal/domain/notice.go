package domain

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-visible message produced by a pipeline stage.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}
