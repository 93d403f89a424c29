package services

import (
	"errors"
	"testing"
)

func TestValidateStatusValueEmpty(t *testing.T) {
	err := ValidateStatusValue(EntityKalam, "")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateStatusValueUnknown(t *testing.T) {
	for _, kind := range []EntityKind{EntityKalam, EntityBlog, EntityBloggerProfile, EntityVocalistProfile, EntityStudioRequest, EntityRemoteRequest} {
		if err := ValidateStatusValue(kind, "definitely_not_a_status"); err == nil {
			t.Errorf("%s: unknown status accepted", kind)
		}
	}
}

func TestAllDeclaredStatusesAreKnown(t *testing.T) {
	cases := map[EntityKind][]string{
		EntityKalam:           {KalamSubmitted, KalamChangesRequested, KalamAdminApproved, KalamAdminRejected, KalamFinalApproved, KalamCompleteApproved, KalamPosted},
		EntityBlog:            {BlogPending, BlogReview, BlogApproved, BlogRevision, BlogRejected, BlogPosted},
		EntityBloggerProfile:  {ProfilePending, ProfileUnderReview, ProfileApproved, ProfileNeedsRevision, ProfileRejected},
		EntityVocalistProfile: {ProfilePending, ProfileUnderReview, ProfileApproved, ProfileNeedsRevision, ProfileRejected},
		EntityStudioRequest:   {RequestPendingReview, RequestApproved, RequestRejected, RequestCompleted},
		EntityRemoteRequest:   {RequestUnderReview, RequestApproved, RequestRejected, RequestCompleted},
	}
	for kind, statuses := range cases {
		for _, status := range statuses {
			if !KnownStatus(kind, status) {
				t.Errorf("%s: %s not known", kind, status)
			}
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	if got := NormalizeStatus("  Admin_Approved "); got != KalamAdminApproved {
		t.Fatalf("got %q", got)
	}
}

func TestCanTransitionKalam(t *testing.T) {
	allowed := [][2]string{
		{KalamSubmitted, KalamChangesRequested},
		{KalamSubmitted, KalamAdminApproved},
		{KalamSubmitted, KalamAdminRejected},
		{KalamChangesRequested, KalamSubmitted},
		{KalamAdminApproved, KalamFinalApproved},
		{KalamFinalApproved, KalamCompleteApproved},
		{KalamCompleteApproved, KalamPosted},
	}
	for _, pair := range allowed {
		if !CanTransition(EntityKalam, pair[0], pair[1]) {
			t.Errorf("%s -> %s should be allowed", pair[0], pair[1])
		}
	}

	denied := [][2]string{
		{KalamSubmitted, KalamPosted},
		{KalamSubmitted, KalamFinalApproved},
		{KalamPosted, KalamSubmitted},
		{KalamAdminRejected, KalamSubmitted},
		{KalamFinalApproved, KalamPosted},
	}
	for _, pair := range denied {
		if CanTransition(EntityKalam, pair[0], pair[1]) {
			t.Errorf("%s -> %s should be denied", pair[0], pair[1])
		}
	}
}

func TestCanTransitionSelfLoopDenied(t *testing.T) {
	for _, kind := range []EntityKind{EntityKalam, EntityBlog, EntityBloggerProfile} {
		initial := InitialStatus(kind)
		if CanTransition(kind, initial, initial) {
			t.Errorf("%s: self transition on %s should be denied", kind, initial)
		}
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	terminals := map[EntityKind][]string{
		EntityKalam:          {KalamAdminRejected, KalamPosted},
		EntityBlog:           {BlogRejected, BlogPosted},
		EntityBloggerProfile: {ProfileApproved, ProfileRejected},
		EntityStudioRequest:  {RequestRejected, RequestCompleted},
		EntityRemoteRequest:  {RequestRejected, RequestCompleted},
	}
	for kind, statuses := range terminals {
		for _, from := range statuses {
			for _, to := range Statuses(kind) {
				if CanTransition(kind, from, to) {
					t.Errorf("%s: terminal %s allows exit to %s", kind, from, to)
				}
			}
		}
	}
}

func TestVocalistProfileSharesBloggerTransitions(t *testing.T) {
	if !CanTransition(EntityVocalistProfile, ProfilePending, ProfileUnderReview) {
		t.Fatal("pending -> under_review should be allowed for vocalist profiles")
	}
	if CanTransition(EntityVocalistProfile, ProfileApproved, ProfilePending) {
		t.Fatal("approved should be terminal for vocalist profiles")
	}
}

func TestValidateTransitionReturnsTransitionError(t *testing.T) {
	err := ValidateTransition(EntityBlog, BlogPosted, BlogPending)
	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if transitionErr.Kind != EntityBlog {
		t.Fatalf("wrong kind: %s", transitionErr.Kind)
	}
}

func TestInitialStatuses(t *testing.T) {
	cases := map[EntityKind]string{
		EntityKalam:           KalamSubmitted,
		EntityBlog:            BlogPending,
		EntityBloggerProfile:  ProfilePending,
		EntityVocalistProfile: ProfilePending,
		EntityStudioRequest:   RequestPendingReview,
		EntityRemoteRequest:   RequestUnderReview,
	}
	for kind, want := range cases {
		if got := InitialStatus(kind); got != want {
			t.Errorf("%s: got %q want %q", kind, got, want)
		}
	}
}
