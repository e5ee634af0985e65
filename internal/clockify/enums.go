package clockify

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskActive TaskStatus = "ACTIVE"
	TaskDone   TaskStatus = "DONE"
)

// MembershipType is the role a user holds on a project.
type MembershipType string

const (
	MembershipProject MembershipType = "PROJECT"
	MembershipManager MembershipType = "MANAGER"
)

// MembershipStatus is whether a project membership is in effect.
type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "ACTIVE"
	MembershipInactive MembershipStatus = "INACTIVE"
)

// UserStatus filters workspace users by invitation state.
type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserPending  UserStatus = "PENDING"
	UserDeclined UserStatus = "DECLINED"
	UserInactive UserStatus = "INACTIVE"
	UserAll      UserStatus = "ALL"
)

// FilterContains selects inclusion or exclusion in a report entity filter.
type FilterContains string

const (
	Contains       FilterContains = "CONTAINS"
	DoesNotContain FilterContains = "DOES_NOT_CONTAIN"
)

// FilterStatus restricts a report entity filter by archive state.
type FilterStatus string

const (
	FilterAll      FilterStatus = "ALL"
	FilterActive   FilterStatus = "ACTIVE"
	FilterArchived FilterStatus = "ARCHIVED"
)

// BillableFilter is the billable tri-state used by reports.
type BillableFilter string

const (
	BillableBoth        BillableFilter = "BOTH"
	BillableOnly        BillableFilter = "BILLABLE"
	BillableNotBillable BillableFilter = "NOT_BILLABLE"
)

// SortOrder orders report rows.
type SortOrder string

const (
	SortAscending  SortOrder = "ASCENDING"
	SortDescending SortOrder = "DESCENDING"
)

// AmountShown selects which monetary amount a report shows.
type AmountShown string

const (
	AmountHidden AmountShown = "HIDE_AMOUNT"
	AmountEarned AmountShown = "EARNED"
	AmountCost   AmountShown = "COST"
	AmountProfit AmountShown = "PROFIT"
)

// ApprovalState filters report entries by approval.
type ApprovalState string

const (
	ApprovalBoth       ApprovalState = "BOTH"
	ApprovalApproved   ApprovalState = "APPROVED"
	ApprovalUnapproved ApprovalState = "UNAPPROVED"
)

// InvoicingState filters report entries by invoicing.
type InvoicingState string

const (
	InvoicingBoth       InvoicingState = "BOTH"
	InvoicingInvoiced   InvoicingState = "INVOICED"
	InvoicingUninvoiced InvoicingState = "UNINVOICED"
)
