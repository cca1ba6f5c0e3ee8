package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/plasmadinah/cms-backend/internal/models"
	"github.com/plasmadinah/cms-backend/internal/testutil"
)

func seedArticles(t *testing.T, repo *testutil.MockArticleRepo, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		a := &models.Article{Title: "Article", Content: "body"}
		if err := repo.Create(a); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, a.ID)
	}
	return ids
}

func TestListArticlesPagination(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)
	seedArticles(t, repo, 7)

	page, err := svc.ListArticles(1)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(page.Articles) != ArticlesPerPage {
		t.Errorf("expected %d articles, got %d", ArticlesPerPage, len(page.Articles))
	}
	if page.TotalPages != 3 {
		t.Errorf("expected 3 total pages for 7 articles, got %d", page.TotalPages)
	}

	last, err := svc.ListArticles(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Articles) != 1 {
		t.Errorf("expected 1 article on last page, got %d", len(last.Articles))
	}

	// Page numbers below 1 clamp to the first page.
	clamped, err := svc.ListArticles(0)
	if err != nil {
		t.Fatal(err)
	}
	if clamped.CurrentPage != 1 {
		t.Errorf("expected page 1, got %d", clamped.CurrentPage)
	}
}

func TestGetArticleNotFound(t *testing.T) {
	svc := NewArticleService(testutil.NewMockArticleRepo())
	if _, err := svc.GetArticle(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordViewIncrementsByOne(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)
	ids := seedArticles(t, repo, 1)

	views, err := svc.RecordView(ids[0])
	if err != nil {
		t.Fatalf("RecordView failed: %v", err)
	}
	if views != 30001 {
		t.Errorf("expected 30001 after first view, got %d", views)
	}

	// Same viewer again still counts; it is a raw hit counter.
	views, err = svc.RecordView(ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if views != 30002 {
		t.Errorf("expected 30002 after second view, got %d", views)
	}
}

func TestRecordViewUnknownArticle(t *testing.T) {
	svc := NewArticleService(testutil.NewMockArticleRepo())
	if _, err := svc.RecordView(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordViewConcurrentLosesNoUpdates(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)
	ids := seedArticles(t, repo, 1)

	const viewers = 100
	var wg sync.WaitGroup
	for i := 0; i < viewers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RecordView(ids[0]); err != nil {
				t.Errorf("RecordView failed: %v", err)
			}
		}()
	}
	wg.Wait()

	article, err := svc.GetArticle(ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if article.Views != 30000+viewers {
		t.Errorf("expected %d views, got %d", 30000+viewers, article.Views)
	}
}

func TestCreateArticleValidation(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)

	tests := []struct {
		name  string
		input ArticleInput
	}{
		{"empty title", ArticleInput{Title: "  ", Content: "body"}},
		{"empty content", ArticleInput{Title: "Title", Content: "\n\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateArticle(tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCreateArticleDefaults(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)

	article, err := svc.CreateArticle(ArticleInput{Title: "  Oils 101  ", Content: "body"})
	if err != nil {
		t.Fatalf("CreateArticle failed: %v", err)
	}
	if article.Title != "Oils 101" {
		t.Errorf("expected trimmed title, got %q", article.Title)
	}
	if article.Image != "default.jpg" {
		t.Errorf("expected default image, got %q", article.Image)
	}
	if article.Views != 30000 {
		t.Errorf("expected seeded view counter 30000, got %d", article.Views)
	}
}

func TestUpdateArticleNotFound(t *testing.T) {
	svc := NewArticleService(testutil.NewMockArticleRepo())
	_, err := svc.UpdateArticle(5, ArticleInput{Title: "T", Content: "C"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateArticleKeepsImageWhenOmitted(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)
	created, err := svc.CreateArticle(ArticleInput{Title: "T", Content: "C", Image: "cover.jpg"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.UpdateArticle(created.ID, ArticleInput{Title: "T2", Content: "C2"})
	if err != nil {
		t.Fatalf("UpdateArticle failed: %v", err)
	}
	if updated.Image != "cover.jpg" {
		t.Errorf("expected image preserved, got %q", updated.Image)
	}
	if updated.Title != "T2" || updated.Content != "C2" {
		t.Errorf("unexpected update result: %+v", updated)
	}
}

func TestDeleteArticleNotFound(t *testing.T) {
	svc := NewArticleService(testutil.NewMockArticleRepo())
	if err := svc.DeleteArticle(8); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRelatedExcludesSelf(t *testing.T) {
	repo := testutil.NewMockArticleRepo()
	svc := NewArticleService(repo)
	ids := seedArticles(t, repo, 5)

	related, err := svc.GetRelated(ids[0])
	if err != nil {
		t.Fatalf("GetRelated failed: %v", err)
	}
	if len(related) != RelatedLimit {
		t.Errorf("expected %d related articles, got %d", RelatedLimit, len(related))
	}
	for _, a := range related {
		if a.ID == ids[0] {
			t.Error("related articles must not include the article itself")
		}
	}
}
