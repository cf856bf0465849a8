package models

// HistoryAuthor identifies who changed a field, as reported upstream.
type HistoryAuthor struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// HistoryEntry is one server-derived change record. Read-only: the client
// only renders it.
type HistoryEntry struct {
	ID        string         `json:"id"`
	FieldName string         `json:"fieldName"`
	OldValue  string         `json:"oldValue"`
	NewValue  string         `json:"newValue"`
	CreatedAt string         `json:"createdAt"`
	ChangedBy *HistoryAuthor `json:"changedBy,omitempty"`
}

// AuthorName returns the display name of the change author, "Sistema" when
// the server recorded no author.
func (h *HistoryEntry) AuthorName() string {
	if h.ChangedBy == nil || h.ChangedBy.Name == "" {
		return "Sistema"
	}
	return h.ChangedBy.Name
}
