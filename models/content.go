package models

// ContentStatus is the publication state shared by posts, events and job
// offers. There is no automatic transition out of draft; promotion to
// published is always an explicit admin action.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}
