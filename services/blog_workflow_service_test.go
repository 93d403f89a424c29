package services

import (
	"errors"
	"regexp"
	"testing"
)

func TestBlogApplyStatusEmptyStatusSkipsDatabase(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewBlogWorkflowService(gormDB)
	_, err := svc.ApplyStatus(5, "", "", 1)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestBlogApplyStatusApproveRefetches(t *testing.T) {
	blogCols := []string{"id", "user_id", "title", "status", "admin_comments"}
	blogSelect := regexp.MustCompile("SELECT .* FROM `blog_submissions` WHERE id = \\?")

	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: blogSelect,
			columns: blogCols,
			rows:    driverRows(row(int64(5), int64(9), "On Sama", BlogReview, nil)),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `blog_submissions` SET"),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `status_history`"),
		},
		{
			kind:    kindQuery,
			pattern: blogSelect,
			columns: blogCols,
			rows:    driverRows(row(int64(5), int64(9), "On Sama", BlogApproved, "well argued")),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewBlogWorkflowService(gormDB)
	blog, err := svc.ApplyStatus(5, BlogApproved, "well argued", 2)
	if err != nil {
		t.Fatalf("ApplyStatus failed: %v", err)
	}

	if blog.Status != BlogApproved {
		t.Fatalf("snapshot status: got %q want %q", blog.Status, BlogApproved)
	}
	if blog.AdminComments == nil || *blog.AdminComments != "well argued" {
		t.Fatalf("snapshot admin comments: got %v", blog.AdminComments)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestBlogApplyStatusTerminalRejected(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_submissions` WHERE id = \\?"),
			columns: []string{"id", "user_id", "status"},
			rows:    driverRows(row(int64(5), int64(9), BlogRejected)),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewBlogWorkflowService(gormDB)
	_, err := svc.ApplyStatus(5, BlogReview, "", 2)

	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("update was issued despite terminal status: %v", err)
	}
}

func TestBlogStatusMessageFallback(t *testing.T) {
	if got := BlogStatusMessage(BlogApproved); got != "Congratulations! Your blog has been approved" {
		t.Fatalf("got %q", got)
	}
	if got := BlogStatusMessage("something_else"); got != "Blog status updated" {
		t.Fatalf("got %q", got)
	}
}
