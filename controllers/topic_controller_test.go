package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cosmay/forumhub/models"
)

func TestTopicCreate(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "frank", "frank@example.com")
	cat := seedCategory(t, db, "General", 1)

	w := doJSON(t, r, http.MethodPost, "/topics", map[string]interface{}{
		"user_id":     user.ID,
		"category_id": cat.ID,
		"title":       "Hi",
		"content":     "Hello",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}
	var topic models.Topic
	decodeBody(t, w, &topic)
	if topic.ID == 0 {
		t.Error("expected an id on the created topic")
	}
	if topic.RepliesCount != 0 || topic.ViewsCount != 0 {
		t.Errorf("fresh topic counters must be zero, got replies=%d views=%d",
			topic.RepliesCount, topic.ViewsCount)
	}

	// creating a topic counts toward the author's posts_count
	var author models.User
	if err := db.First(&author, user.ID).Error; err != nil {
		t.Fatalf("reload author: %v", err)
	}
	if author.PostsCount != 1 {
		t.Errorf("expected author posts_count 1, got %d", author.PostsCount)
	}
}

func TestTopicCreateMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPost, "/topics", map[string]interface{}{
		"user_id": 1,
		"title":   "Hi",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != "Missing required fields" {
		t.Errorf("unexpected error %q", resp["error"])
	}
}

func TestTopicDetailIncrementsViews(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "gina", "gina@example.com")
	cat := seedCategory(t, db, "General", 1)
	topic := seedTopic(t, db, cat.ID, user.ID, "views")

	for i := 1; i <= 3; i++ {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/topics?id=%d", topic.ID), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("get %d: expected 200, got %d body=%s", i, w.Code, w.Body.String())
		}
		var view models.TopicView
		decodeBody(t, w, &view)
		if view.ViewsCount != i {
			t.Errorf("get %d: expected views_count %d, got %d", i, i, view.ViewsCount)
		}
		if view.Posts == nil || len(view.Posts) != 0 {
			t.Errorf("get %d: expected empty posts array, got %v", i, view.Posts)
		}
		if view.AuthorName != "gina" {
			t.Errorf("get %d: expected author gina, got %q", i, view.AuthorName)
		}
	}
}

func TestTopicDetailWithPosts(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	author := seedUser(t, db, "henry", "henry@example.com")
	replier := seedUser(t, db, "iris", "iris@example.com")
	cat := seedCategory(t, db, "General", 1)
	topic := seedTopic(t, db, cat.ID, author.ID, "thread")

	first := seedPost(t, db, topic.ID, author.ID, "first reply")
	// ensure distinct created_at so ordering is observable
	if err := db.Model(&models.Post{}).Where("id = ?", first.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("fixture: %v", err)
	}
	seedPost(t, db, topic.ID, replier.ID, "second reply")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/topics?id=%d", topic.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var view models.TopicView
	decodeBody(t, w, &view)
	if len(view.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(view.Posts))
	}
	if view.Posts[0].Content != "first reply" || view.Posts[1].Content != "second reply" {
		t.Errorf("posts must be ordered oldest first, got %q then %q",
			view.Posts[0].Content, view.Posts[1].Content)
	}
	if view.Posts[1].AuthorName != "iris" {
		t.Errorf("expected reply author iris, got %q", view.Posts[1].AuthorName)
	}
}

func TestTopicDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodGet, "/topics?id=9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != "Topic not found" {
		t.Errorf("unexpected error %q", resp["error"])
	}
}

func TestTopicListOrdering(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "jack", "jack@example.com")
	cat := seedCategory(t, db, "General", 1)

	older := seedTopic(t, db, cat.ID, user.ID, "older")
	newer := seedTopic(t, db, cat.ID, user.ID, "newer")
	pinned := seedTopic(t, db, cat.ID, user.ID, "pinned")

	base := time.Now()
	for topicID, ts := range map[uint]time.Time{
		older.ID:  base.Add(-2 * time.Hour),
		newer.ID:  base.Add(-1 * time.Hour),
		pinned.ID: base.Add(-3 * time.Hour),
	} {
		if err := db.Model(&models.Topic{}).Where("id = ?", topicID).
			UpdateColumn("updated_at", ts).Error; err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}
	if err := db.Model(&models.Topic{}).Where("id = ?", pinned.ID).
		UpdateColumn("is_pinned", true).Error; err != nil {
		t.Fatalf("fixture: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/topics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var topics []models.TopicSummary
	decodeBody(t, w, &topics)
	if len(topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(topics))
	}
	got := []string{topics[0].Title, topics[1].Title, topics[2].Title}
	want := []string{"pinned", "newer", "older"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestTopicListCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "kate", "kate@example.com")
	catA := seedCategory(t, db, "A", 1)
	catB := seedCategory(t, db, "B", 2)
	seedTopic(t, db, catA.ID, user.ID, "in A")
	seedTopic(t, db, catB.ID, user.ID, "in B")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/topics?category_id=%d", catA.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var topics []models.TopicSummary
	decodeBody(t, w, &topics)
	if len(topics) != 1 || topics[0].Title != "in A" {
		t.Fatalf("expected only the category A topic, got %v", topics)
	}
}
