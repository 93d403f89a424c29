package services

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestToggleLikeInvolution(t *testing.T) {
	likeSelect := regexp.MustCompile("SELECT .* FROM `blog_likes` WHERE blog_id = \\? AND user_id = \\?")
	likeCount := regexp.MustCompile("SELECT count\\(\\*\\) FROM `blog_likes` WHERE blog_id = \\?")

	script := []*queryStep{
		// First toggle: no existing like, insert, count 1.
		{
			kind:    kindQuery,
			pattern: likeSelect,
			columns: []string{"id", "blog_id", "user_id"},
			rows:    driverRows(),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `blog_likes`"),
		},
		{
			kind:    kindQuery,
			pattern: likeCount,
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(1))),
		},
		// Second toggle: existing like, delete, count 0.
		{
			kind:    kindQuery,
			pattern: likeSelect,
			columns: []string{"id", "blog_id", "user_id"},
			rows:    driverRows(row(int64(55), int64(3), int64(9))),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `blog_likes`"),
		},
		{
			kind:    kindQuery,
			pattern: likeCount,
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(0))),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewEngagementService(gormDB)

	liked, count, err := svc.ToggleLike(3, 9)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("first toggle: got liked=%v count=%d", liked, count)
	}

	liked, count, err = svc.ToggleLike(3, 9)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("second toggle: got liked=%v count=%d", liked, count)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestListCommentsPaginationAndHasMore(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	commentCols := []string{"id", "blog_id", "user_id", "parent_id", "comment_text", "commenter_name", "created_at"}

	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `blog_comments` WHERE blog_id = \\?"),
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(5))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `blog_comments` WHERE blog_id = \\? AND parent_id IS NULL"),
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(3))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_comments` WHERE blog_id = \\? AND parent_id IS NULL ORDER BY created_at DESC"),
			columns: commentCols,
			rows: driverRows(
				row(int64(30), int64(3), int64(9), nil, "newest", "Amina", base.Add(2*time.Hour)),
				row(int64(20), int64(3), int64(8), nil, "middle", "Bilal", base.Add(time.Hour)),
			),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_comments` WHERE parent_id IN \\("),
			columns: commentCols,
			rows: driverRows(
				row(int64(31), int64(3), int64(4), int64(30), "first reply", "Dara", base.Add(2*time.Hour+time.Minute)),
				row(int64(32), int64(3), int64(5), int64(30), "second reply", "Esin", base.Add(2*time.Hour+2*time.Minute)),
			),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewEngagementService(gormDB)
	page, err := svc.ListComments(3, 0, 2)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}

	if page.TotalComments != 5 {
		t.Fatalf("total_comments: got %d want 5", page.TotalComments)
	}
	if !page.HasMore {
		t.Fatal("has_more should be true with 3 top-level comments and limit 2")
	}
	if len(page.Comments) != 2 {
		t.Fatalf("page size: got %d want 2", len(page.Comments))
	}
	if page.Comments[0].ID != 30 || page.Comments[1].ID != 20 {
		t.Fatalf("page order: got %d, %d", page.Comments[0].ID, page.Comments[1].ID)
	}
	if len(page.Comments[0].Replies) != 2 {
		t.Fatalf("replies on comment 30: got %d want 2", len(page.Comments[0].Replies))
	}
	if page.Comments[0].Replies[0].ID != 31 {
		t.Fatalf("reply order: got %d want 31", page.Comments[0].Replies[0].ID)
	}
	if len(page.Comments[1].Replies) != 0 {
		t.Fatalf("replies on comment 20: got %d want 0", len(page.Comments[1].Replies))
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestListCommentsLastPageHasMoreFalse(t *testing.T) {
	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `blog_comments` WHERE blog_id = \\?"),
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(3))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `blog_comments` WHERE blog_id = \\? AND parent_id IS NULL"),
			columns: []string{"count(*)"},
			rows:    driverRows(row(int64(3))),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_comments` WHERE blog_id = \\? AND parent_id IS NULL ORDER BY created_at DESC"),
			columns: []string{"id", "blog_id", "user_id", "parent_id", "comment_text", "commenter_name"},
			rows:    driverRows(row(int64(10), int64(3), int64(9), nil, "oldest", "Amina")),
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_comments` WHERE parent_id IN \\("),
			columns: []string{"id", "blog_id", "user_id", "parent_id", "comment_text", "commenter_name"},
			rows:    driverRows(),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewEngagementService(gormDB)
	page, err := svc.ListComments(3, 2, 2)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if page.HasMore {
		t.Fatal("has_more should be false on the last page")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestAddCommentEmptyTextSkipsDatabase(t *testing.T) {
	gormDB, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewEngagementService(gormDB)
	_, err := svc.AddComment(3, 9, "Amina", "   ", nil)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("database was touched: %v", err)
	}
}

func TestAddCommentRejectsReplyToReply(t *testing.T) {
	parentID := 31

	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `blog_comments` WHERE id = \\? AND blog_id = \\?"),
			columns: []string{"id", "blog_id", "user_id", "parent_id"},
			rows:    driverRows(row(int64(31), int64(3), int64(4), int64(30))),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewEngagementService(gormDB)
	_, err := svc.AddComment(3, 9, "Amina", "nested", &parentID)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRecordViewDedupesPerUser(t *testing.T) {
	viewSelect := regexp.MustCompile("SELECT .* FROM `blog_views` WHERE blog_id = \\? AND user_id = \\?")

	script := []*queryStep{
		{
			kind:    kindQuery,
			pattern: viewSelect,
			columns: []string{"id", "blog_id", "user_id"},
			rows:    driverRows(),
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `blog_views`"),
		},
		{
			kind:    kindQuery,
			pattern: viewSelect,
			columns: []string{"id", "blog_id", "user_id"},
			rows:    driverRows(row(int64(70), int64(3), int64(9))),
		},
	}

	gormDB, state, cleanup := newScriptedGormDB(t, script)
	defer cleanup()

	svc := NewEngagementService(gormDB)

	counted, err := svc.RecordView(3, 9)
	if err != nil {
		t.Fatalf("first view failed: %v", err)
	}
	if !counted {
		t.Fatal("first view should be counted")
	}

	counted, err = svc.RecordView(3, 9)
	if err != nil {
		t.Fatalf("second view failed: %v", err)
	}
	if counted {
		t.Fatal("repeat view should not be counted")
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
