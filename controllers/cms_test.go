package controllers

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sufipulse-api/config"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cmsQueryStep answers one SELECT whose SQL contains pattern.
type cmsQueryStep struct {
	pattern string
	columns []string
	rows    [][]driver.Value
}

type cmsScript struct {
	t     *testing.T
	steps []cmsQueryStep
	pos   int
}

func (s *cmsScript) next(query string) cmsQueryStep {
	s.t.Helper()
	if s.pos >= len(s.steps) {
		s.t.Fatalf("unexpected query beyond script: %s", query)
	}
	step := s.steps[s.pos]
	s.pos++
	if !strings.Contains(query, step.pattern) {
		s.t.Fatalf("query %q does not contain %q", query, step.pattern)
	}
	return step
}

type cmsDriver struct{ script *cmsScript }

func (d *cmsDriver) Open(string) (driver.Conn, error) { return &cmsConn{script: d.script}, nil }

type cmsConn struct{ script *cmsScript }

func (c *cmsConn) Prepare(string) (driver.Stmt, error) {
	return nil, fmt.Errorf("prepared statements not scripted")
}
func (c *cmsConn) Close() error              { return nil }
func (c *cmsConn) Begin() (driver.Tx, error) { return nil, fmt.Errorf("transactions not scripted") }

func (c *cmsConn) Query(query string, _ []driver.Value) (driver.Rows, error) {
	step := c.script.next(query)
	return &cmsRows{columns: step.columns, rows: step.rows}, nil
}

type cmsRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *cmsRows) Columns() []string { return r.columns }
func (r *cmsRows) Close() error      { return nil }
func (r *cmsRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

var cmsDriverSeq int64

func newCMSTestDB(t *testing.T, steps []cmsQueryStep) *gorm.DB {
	t.Helper()
	script := &cmsScript{t: t, steps: steps}
	name := fmt.Sprintf("cms_scripted_%d", atomic.AddInt64(&cmsDriverSeq, 1))
	sql.Register(name, &cmsDriver{script: script})
	sqlDB, err := sql.Open(name, "scripted")
	if err != nil {
		t.Fatalf("open scripted db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	return gormDB
}

func TestGetCMSPageBySlugIncludesHubs(t *testing.T) {
	now := time.Now()
	steps := []cmsQueryStep{
		{
			pattern: "cms_pages",
			columns: []string{"id", "page_name", "page_title", "page_slug", "is_active", "created_at", "updated_at"},
			rows:    [][]driver.Value{{int64(7), "Contact", "Contact Us", "contact", true, now, now}},
		},
		{pattern: "cms_stats", columns: []string{"id"}},
		{pattern: "cms_values", columns: []string{"id"}},
		{pattern: "cms_team_members", columns: []string{"id"}},
		{pattern: "cms_timeline_items", columns: []string{"id"}},
		{pattern: "cms_testimonials", columns: []string{"id"}},
		{
			pattern: "cms_page_hubs",
			columns: []string{"id", "page_id", "hub_title", "hub_order", "is_active"},
			rows: [][]driver.Value{
				{int64(1), int64(7), "Srinagar Studio", int64(0), true},
				{int64(2), int64(7), "Global Community Hub", int64(1), true},
			},
		},
	}

	prevDB := config.DB
	config.DB = newCMSTestDB(t, steps)
	defer func() { config.DB = prevDB }()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cms/page/:slug", GetCMSPageBySlug)

	req := httptest.NewRequest(http.MethodGet, "/cms/page/contact", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Page struct {
			PageSlug string `json:"page_slug"`
		} `json:"page"`
		Hubs []struct {
			HubTitle string `json:"hub_title"`
			HubOrder int    `json:"hub_order"`
		} `json:"hubs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Page.PageSlug != "contact" {
		t.Fatalf("expected contact page, got %q", body.Page.PageSlug)
	}
	if len(body.Hubs) != 2 {
		t.Fatalf("expected 2 hubs in page composite, got %d", len(body.Hubs))
	}
	if body.Hubs[0].HubTitle != "Srinagar Studio" || body.Hubs[1].HubTitle != "Global Community Hub" {
		t.Fatalf("hubs out of order: %+v", body.Hubs)
	}
}
