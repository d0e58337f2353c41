package domain

import "github.com/aussiebroadwan/teamdesk/pkg/idx"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot message shown on the next render. Key is a message
// catalog key; Args fill its placeholders.
type Notice struct {
	ID   idx.ID
	Kind NoticeKind
	Key  string
	Args []any
}
