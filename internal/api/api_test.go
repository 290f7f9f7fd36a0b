package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calder/jot/internal/notestore"
	"github.com/calder/jot/internal/testutil"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(testutil.TestService(t))
}

func postNote(t *testing.T, router http.Handler, title, content string) notestore.Note {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"title": title, "content": content})
	req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var note notestore.Note
	if err := json.Unmarshal(w.Body.Bytes(), &note); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return note
}

func TestCreateAndGetNote(t *testing.T) {
	router := testRouter(t)

	created := postNote(t, router, "Hello", "World")
	if created.ID != 1 {
		t.Errorf("id = %d, want 1", created.ID)
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Errorf("created_at %q != updated_at %q", created.CreatedAt, created.UpdatedAt)
	}

	req := httptest.NewRequest(http.MethodGet, "/notes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var note notestore.Note
	_ = json.Unmarshal(w.Body.Bytes(), &note)
	if note.Title != "Hello" || note.Content != "World" {
		t.Errorf("note = %+v", note)
	}
}

func TestCreateRejectsAbsentFields(t *testing.T) {
	router := testRouter(t)

	for _, body := range []string{`{}`, `{"title":"only"}`, `{"title":null,"content":"x"}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/notes", bytes.NewReader([]byte(body)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("create with body %q = %d, want 400", body, w.Code)
		}
	}
}

func TestCreateAcceptsEmptyStrings(t *testing.T) {
	router := testRouter(t)

	note := postNote(t, router, "", "")
	if note.Title != "" || note.Content != "" {
		t.Errorf("note = %+v, want empty title and content", note)
	}
}

func TestGetAbsentNote(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/notes/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("get absent = %d, want 404", w.Code)
	}
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	router := testRouter(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body *bytes.Reader
		if method == http.MethodPut {
			b, _ := json.Marshal(map[string]string{"title": "t", "content": "c"})
			body = bytes.NewReader(b)
		} else {
			body = bytes.NewReader(nil)
		}
		req := httptest.NewRequest(method, "/notes/abc", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s /notes/abc = %d, want 400", method, w.Code)
		}
	}
}

func TestUpdateNote(t *testing.T) {
	router := testRouter(t)

	created := postNote(t, router, "v1", "c1")

	body, _ := json.Marshal(map[string]string{"title": "v2", "content": "c2"})
	req := httptest.NewRequest(http.MethodPut, "/notes/1", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update = %d, body = %s", w.Code, w.Body.String())
	}
	var updated notestore.Note
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Title != "v2" || updated.Content != "c2" {
		t.Errorf("updated = %+v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Errorf("created_at changed: %q -> %q", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateAbsentNote(t *testing.T) {
	router := testRouter(t)

	body, _ := json.Marshal(map[string]string{"title": "t", "content": "c"})
	req := httptest.NewRequest(http.MethodPut, "/notes/42", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("update absent = %d, want 404", w.Code)
	}
}

func TestDeleteNote(t *testing.T) {
	router := testRouter(t)

	postNote(t, router, "bye", "now")

	req := httptest.NewRequest(http.MethodDelete, "/notes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d", w.Code)
	}
	var resp SuccessResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success {
		t.Errorf("delete body = %s, want success true", w.Body.String())
	}

	// Second delete should 404.
	req = httptest.NewRequest(http.MethodDelete, "/notes/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}
}

func TestListNotes(t *testing.T) {
	router := testRouter(t)

	postNote(t, router, "apple", "crisp")
	postNote(t, router, "fruit bowl", "banana apple")
	postNote(t, router, "cherry", "tart")

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var notes []notestore.Note
	_ = json.Unmarshal(w.Body.Bytes(), &notes)
	if len(notes) != 3 {
		t.Fatalf("len(notes) = %d, want 3", len(notes))
	}
	// Most recently created first; equal timestamps fall back to id.
	if notes[0].ID != 3 || notes[2].ID != 1 {
		t.Errorf("order = %d,%d,%d, want 3,2,1", notes[0].ID, notes[1].ID, notes[2].ID)
	}
}

func TestListNotesKeywordFilter(t *testing.T) {
	router := testRouter(t)

	postNote(t, router, "apple", "crisp")
	postNote(t, router, "fruit bowl", "banana apple")
	postNote(t, router, "cherry", "tart")

	req := httptest.NewRequest(http.MethodGet, "/notes?keyword=apple", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var notes []notestore.Note
	_ = json.Unmarshal(w.Body.Bytes(), &notes)
	if len(notes) != 2 {
		t.Fatalf("len(notes) = %d, want 2", len(notes))
	}
	for _, n := range notes {
		if n.Title == "cherry" {
			t.Errorf("cherry should not match keyword apple")
		}
	}
}

func TestListEmptyStoreIsEmptyArray(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}
