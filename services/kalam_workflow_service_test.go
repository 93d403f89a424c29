package services

import (
	"errors"
	"regexp"
	"testing"
)

func TestKalamApplyStatusEmptyStatusSkipsDatabase(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.ApplyStatus(1, 10, "", "whatever", 5)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestKalamApplyStatusUnknownStatusSkipsDatabase(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.ApplyStatus(1, 10, "sideways", "", 5)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestKalamApplyStatusAdminApprove(t *testing.T) {
	submissionCols := []string{"id", "kalam_id", "status", "admin_comments"}

	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE id = \\? AND kalam_id = \\?"),
			columns: submissionCols,
			rows:    driverRows(row(int64(10), int64(1), KalamSubmitted, nil)),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `kalam_submissions` SET"),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `status_history`"),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalams` WHERE id = \\?"),
			columns: []string{"id", "title", "writer_id"},
			rows:    driverRows(row(int64(1), "Ishq Sufiyana", int64(7))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE kalam_id = \\?"),
			columns: submissionCols,
			rows:    driverRows(row(int64(10), int64(1), KalamAdminApproved, "looks good")),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	details, err := svc.ApplyStatus(1, 10, KalamAdminApproved, "looks good", 99)
	if err != nil {
		t.Fatalf("ApplyStatus failed: %v", err)
	}

	if details.Submission.Status != KalamAdminApproved {
		t.Fatalf("snapshot status: got %q want %q", details.Submission.Status, KalamAdminApproved)
	}
	if details.Submission.AdminComments == nil || *details.Submission.AdminComments != "looks good" {
		t.Fatalf("snapshot admin comments: got %v", details.Submission.AdminComments)
	}
	if details.Kalam.ID != 1 {
		t.Fatalf("snapshot kalam id: got %d", details.Kalam.ID)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestKalamApplyStatusIllegalTransitionLeavesRecord(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE id = \\? AND kalam_id = \\?"),
			columns: []string{"id", "kalam_id", "status"},
			rows:    driverRows(row(int64(10), int64(1), KalamPosted)),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.ApplyStatus(1, 10, KalamSubmitted, "", 99)

	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if transitionErr.From != KalamPosted || transitionErr.To != KalamSubmitted {
		t.Fatalf("wrong transition in error: %v", transitionErr)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("update was issued despite illegal transition: %v", err)
	}
}

func TestAssignVocalistRejectsOutsideFinalApproved(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalams` WHERE id = \\?"),
			columns: []string{"id", "writer_id", "vocalist_id"},
			rows:    driverRows(row(int64(1), int64(7), nil)),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE kalam_id = \\?"),
			columns: []string{"id", "kalam_id", "status"},
			rows:    driverRows(row(int64(10), int64(1), KalamSubmitted)),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.AssignVocalist(1, 42, 99)
	if !errors.Is(err, ErrNotAwaitingVocalist) {
		t.Fatalf("expected ErrNotAwaitingVocalist, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestAssignVocalistRejectsSecondAssignment(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalams` WHERE id = \\?"),
			columns: []string{"id", "writer_id", "vocalist_id"},
			rows:    driverRows(row(int64(1), int64(7), int64(42))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE kalam_id = \\?"),
			columns: []string{"id", "kalam_id", "status"},
			rows:    driverRows(row(int64(10), int64(1), KalamFinalApproved)),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.AssignVocalist(1, 43, 99)
	if !errors.Is(err, ErrVocalistAlreadyAssigned) {
		t.Fatalf("expected ErrVocalistAlreadyAssigned, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestPostYouTubeLinkRequiresCompleteApproved(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalams` WHERE id = \\?"),
			columns: []string{"id", "writer_id"},
			rows:    driverRows(row(int64(1), int64(7))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `kalam_submissions` WHERE kalam_id = \\?"),
			columns: []string{"id", "kalam_id", "status"},
			rows:    driverRows(row(int64(10), int64(1), KalamFinalApproved)),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.PostYouTubeLink(1, "https://youtube.com/watch?v=abc", 99)
	if !errors.Is(err, ErrNotReadyToPost) {
		t.Fatalf("expected ErrNotReadyToPost, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestPostYouTubeLinkRejectsNonYouTubeURL(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	for _, link := range []string{
		"ftp://not-youtube.example/x",
		"https://vimeo.com/12345",
		"youtube.com/watch?v=abc",
	} {
		_, err := svc.PostYouTubeLink(1, link, 99)
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("link %q: expected ValidationError, got %v", link, err)
		}
		if validationErr.Field != "youtube_link" {
			t.Fatalf("link %q: expected youtube_link field, got %q", link, validationErr.Field)
		}
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestPostYouTubeLinkEmptyLinkSkipsDatabase(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewKalamWorkflowService(gormDB)
	_, err := svc.PostYouTubeLink(1, "   ", 99)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}
