package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestArticleToResponse(t *testing.T) {
	now := time.Now()
	article := Article{
		ID:        3,
		Title:     "Distilling Patchouli",
		Content:   "body",
		Image:     "articles/abc.jpg",
		Author:    "Admin",
		Views:     30123,
		CreatedAt: now,
		Comments:  []Comment{{ID: 1}},
	}

	resp := article.ToResponse()
	if resp.ID != 3 || resp.Title != article.Title || resp.Views != 30123 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !resp.CreatedAt.Equal(now) {
		t.Error("created_at not carried over")
	}
}

func TestCommentToResponse(t *testing.T) {
	now := time.Now()
	comment := Comment{ID: 9, ArticleID: 3, Name: "Sari", Text: "hi", CreatedAt: now}

	resp := comment.ToResponse()
	if resp.ID != 9 || resp.ArticleID != 3 || resp.Name != "Sari" || resp.Text != "hi" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !resp.CreatedAt.Equal(now) {
		t.Error("created_at not carried over")
	}
}

func TestUserJSONNeverLeaksPasswordHash(t *testing.T) {
	user := User{ID: 1, Username: "admin", PasswordHash: "$2a$10$secret", Role: "admin"}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Errorf("password hash leaked into JSON: %s", raw)
	}

	resp := user.ToResponse()
	raw, err = json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "secret") {
		t.Errorf("password hash leaked into response JSON: %s", raw)
	}
}
