package services

import (
	"fmt"
	"strings"
)

// EntityKind names a reviewable entity with its own status set.
type EntityKind string

const (
	EntityKalam           EntityKind = "kalam"
	EntityBlog            EntityKind = "blog"
	EntityBloggerProfile  EntityKind = "blogger"
	EntityVocalistProfile EntityKind = "vocalist"
	EntityStudioRequest   EntityKind = "studio_request"
	EntityRemoteRequest   EntityKind = "remote_request"
)

// Kalam submission statuses.
const (
	KalamSubmitted        = "submitted"
	KalamChangesRequested = "changes_requested"
	KalamAdminApproved    = "admin_approved"
	KalamAdminRejected    = "admin_rejected"
	KalamFinalApproved    = "final_approved"
	KalamCompleteApproved = "complete_approved"
	KalamPosted           = "posted"
)

// Blog submission statuses.
const (
	BlogPending  = "pending"
	BlogReview   = "review"
	BlogApproved = "approved"
	BlogRevision = "revision"
	BlogRejected = "rejected"
	BlogPosted   = "posted"
)

// Profile review statuses, shared by blogger and vocalist profiles.
const (
	ProfilePending       = "pending"
	ProfileUnderReview   = "under_review"
	ProfileApproved      = "approved"
	ProfileNeedsRevision = "needs_revision"
	ProfileRejected      = "rejected"
)

// Recording request statuses.
const (
	RequestPendingReview = "pending_review"
	RequestUnderReview   = "under_review"
	RequestApproved      = "approved"
	RequestRejected      = "rejected"
	RequestCompleted     = "completed"
)

// ValidationError blocks an operation before any database access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransitionError reports an illegal status transition.
type TransitionError struct {
	Kind EntityKind
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition %s from '%s' to '%s'", e.Kind, e.From, e.To)
}

// transitions is the adjacency table per entity kind. A status missing from
// its kind's map is terminal.
var transitions = map[EntityKind]map[string][]string{
	EntityKalam: {
		KalamSubmitted:        {KalamChangesRequested, KalamAdminApproved, KalamAdminRejected},
		KalamChangesRequested: {KalamSubmitted, KalamAdminApproved, KalamAdminRejected},
		KalamAdminApproved:    {KalamFinalApproved, KalamChangesRequested, KalamAdminRejected},
		KalamAdminRejected:    {},
		KalamFinalApproved:    {KalamCompleteApproved},
		KalamCompleteApproved: {KalamPosted},
		KalamPosted:           {},
	},
	EntityBlog: {
		BlogPending:  {BlogReview, BlogRejected},
		BlogReview:   {BlogApproved, BlogRevision, BlogRejected},
		BlogRevision: {BlogReview},
		BlogApproved: {BlogPosted},
		BlogRejected: {},
		BlogPosted:   {},
	},
	EntityBloggerProfile: {
		ProfilePending:       {ProfileUnderReview, ProfileApproved, ProfileRejected},
		ProfileUnderReview:   {ProfileApproved, ProfileNeedsRevision, ProfileRejected},
		ProfileNeedsRevision: {ProfileUnderReview},
		ProfileApproved:      {},
		ProfileRejected:      {},
	},
	EntityStudioRequest: {
		RequestPendingReview: {RequestApproved, RequestRejected},
		RequestApproved:      {RequestCompleted},
		RequestRejected:      {},
		RequestCompleted:     {},
	},
	EntityRemoteRequest: {
		RequestUnderReview: {RequestApproved, RequestRejected},
		RequestApproved:    {RequestCompleted},
		RequestRejected:    {},
		RequestCompleted:   {},
	},
}

func init() {
	// Vocalist profiles share the blogger profile status machine.
	transitions[EntityVocalistProfile] = transitions[EntityBloggerProfile]
}

// initialStatuses is the status a freshly created entity starts in.
var initialStatuses = map[EntityKind]string{
	EntityKalam:           KalamSubmitted,
	EntityBlog:            BlogPending,
	EntityBloggerProfile:  ProfilePending,
	EntityVocalistProfile: ProfilePending,
	EntityStudioRequest:   RequestPendingReview,
	EntityRemoteRequest:   RequestUnderReview,
}

// NormalizeStatus canonicalizes user input before validation.
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// InitialStatus returns the starting status for the given entity kind.
func InitialStatus(kind EntityKind) string {
	return initialStatuses[kind]
}

// Statuses returns the closed status set for the given entity kind.
func Statuses(kind EntityKind) []string {
	table, ok := transitions[kind]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(table))
	for status := range table {
		out = append(out, status)
	}
	return out
}

// KnownStatus reports whether status belongs to the kind's enumerated set.
func KnownStatus(kind EntityKind, status string) bool {
	table, ok := transitions[kind]
	if !ok {
		return false
	}
	_, ok = table[status]
	return ok
}

// CanTransition is the single adjacency predicate for all entity kinds.
func CanTransition(kind EntityKind, from, to string) bool {
	table, ok := transitions[kind]
	if !ok {
		return false
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateStatusValue rejects empty or unknown statuses. It performs no
// database access, so callers can run it before touching storage.
func ValidateStatusValue(kind EntityKind, status string) error {
	if status == "" {
		return &ValidationError{Field: "status", Message: "no status selected"}
	}
	if !KnownStatus(kind, status) {
		return &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown %s status '%s'", kind, status),
		}
	}
	return nil
}

// ValidateTransition checks both membership and adjacency.
func ValidateTransition(kind EntityKind, from, to string) error {
	if err := ValidateStatusValue(kind, to); err != nil {
		return err
	}
	if !CanTransition(kind, from, to) {
		return &TransitionError{Kind: kind, From: from, To: to}
	}
	return nil
}
