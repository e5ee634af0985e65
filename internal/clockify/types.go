package clockify

// Responses are handed back as raw JSON. The types below are the request
// shapes shared by several operations and the few response fields the
// client reads itself.

// RateInput is an hourly or cost rate; currency defaults server-side.
type RateInput struct {
	Amount   float64 `json:"amount"             jsonschema:"rate amount"`
	Currency string  `json:"currency,omitempty" jsonschema:"ISO currency code"`
}

// CustomFieldValue is a custom field attached to a user or time entry.
type CustomFieldValue struct {
	CustomFieldID string `json:"customFieldId"`
	TimeEntryID   string `json:"timeEntryId,omitempty"`
	Value         any    `json:"value"`
	Name          string `json:"name,omitempty"`
	Type          string `json:"type,omitempty"`
}

// UserRef is the part of a user record used to resolve workspaces.
type UserRef struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ActiveWorkspace  string `json:"activeWorkspace"`
	DefaultWorkspace string `json:"defaultWorkspace"`
}

// WorkspaceRef identifies a workspace.
type WorkspaceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Estimate is a project time or budget estimate.
type Estimate struct {
	Estimate string `json:"estimate"`
	Type     string `json:"type"`
}
