package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/backoffice/internal/core/domain"
	"github.com/taskhive/backoffice/internal/core/ports"
)

type stubTaskService struct {
	createFn  func(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error)
	listFn    func(ctx context.Context, f ports.ListTasksFilter) ([]domain.Task, error)
	updateFn  func(ctx context.Context, id int64, in ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn  func(ctx context.Context, id int64) error
	reorderFn func(ctx context.Context, in ports.ReorderTaskInput) (*domain.Task, error)
}

func (s *stubTaskService) Create(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, in)
}

func (s *stubTaskService) List(ctx context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
	return s.listFn(ctx, f)
}

func (s *stubTaskService) Update(ctx context.Context, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubTaskService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskService) Reorder(ctx context.Context, in ports.ReorderTaskInput) (*domain.Task, error) {
	return s.reorderFn(ctx, in)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestTaskHandler_List_RequiresProjectID(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})
	c, _ := newTestContext(t, http.MethodGet, "/v1/tasks", "")

	err := handler.List(c)
	if err == nil {
		t.Fatalf("expected error for missing project_id")
	}
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestTaskHandler_List_Filter(t *testing.T) {
	var captured ports.ListTasksFilter
	stub := &stubTaskService{
		listFn: func(_ context.Context, f ports.ListTasksFilter) ([]domain.Task, error) {
			captured = f
			return []domain.Task{{ID: 2, ProjectID: 7, Title: "b"}, {ID: 1, ProjectID: 7, Title: "a"}}, nil
		},
	}
	handler := NewTaskHandler(stub)
	c, rec := newTestContext(t, http.MethodGet, "/v1/tasks?project_id=7&q=fix&status=done&include_archived=true", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.ProjectID != 7 || captured.Search != "fix" || captured.Status != domain.TaskDone || !captured.IncludeArchived {
		t.Fatalf("unexpected filter: %+v", captured)
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["items"]; !ok {
		t.Fatalf("expected items key, got %s", rec.Body.String())
	}
}

func TestTaskHandler_List_BadStatus(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})
	c, _ := newTestContext(t, http.MethodGet, "/v1/tasks?project_id=7&status=bogus", "")

	err := handler.List(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(_ context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
			if in.ProjectID != 7 || in.Title != "ship it" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Status != domain.TaskTodo || in.Priority != domain.PriorityMedium {
				t.Fatalf("defaults not applied: %+v", in)
			}
			return &domain.Task{ID: 1, ProjectID: in.ProjectID, Title: in.Title, Status: in.Status, Priority: in.Priority}, nil
		},
	}
	handler := NewTaskHandler(stub)
	c, rec := newTestContext(t, http.MethodPost, "/v1/tasks", `{"project_id":7,"title":"  ship it  "}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["task"]["title"] != "ship it" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestTaskHandler_Create_ValidationJoined(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})
	c, _ := newTestContext(t, http.MethodPost, "/v1/tasks", `{"status":"nope"}`)

	err := handler.Create(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	var he *echo.HTTPError
	errors.As(err, &he)
	msg, _ := he.Message.(string)
	// All violated fields are reported in one message.
	if !strings.Contains(msg, "project_id") || !strings.Contains(msg, "title") || !strings.Contains(msg, "status") {
		t.Fatalf("expected joined field messages, got %q", msg)
	}
}

func TestTaskHandler_Update_NullClearsMilestone(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(_ context.Context, id int64, in ports.UpdateTaskInput) (*domain.Task, error) {
			if id != 5 {
				t.Fatalf("unexpected id %d", id)
			}
			if !in.MilestoneID.Set || in.MilestoneID.Value != nil {
				t.Fatalf("expected explicit null milestone, got %+v", in.MilestoneID)
			}
			if in.Title != nil {
				t.Fatalf("absent title must stay nil")
			}
			return &domain.Task{ID: id, ProjectID: 7}, nil
		},
	}
	handler := NewTaskHandler(stub)
	c, rec := newTestContext(t, http.MethodPatch, "/v1/tasks/5", `{"milestone_id":null}`)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_BadID(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})
	c, _ := newTestContext(t, http.MethodPatch, "/v1/tasks/zero", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("zero")

	err := handler.Update(c)
	if code := httpStatus(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestTaskHandler_Delete_NotFoundPassedThrough(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)
	c, _ := newTestContext(t, http.MethodDelete, "/v1/tasks/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	// Domain errors bubble to the central error handler untouched.
	if err := handler.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskHandler_Reorder(t *testing.T) {
	stub := &stubTaskService{
		reorderFn: func(_ context.Context, in ports.ReorderTaskInput) (*domain.Task, error) {
			if in.ID != 3 || in.OrderIndex != 12 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Status == nil || *in.Status != domain.TaskInProgress {
				t.Fatalf("status not forwarded: %v", in.Status)
			}
			return &domain.Task{ID: in.ID, OrderIndex: in.OrderIndex, Status: *in.Status}, nil
		},
	}
	handler := NewTaskHandler(stub)
	c, rec := newTestContext(t, http.MethodPatch, "/v1/tasks/reorder", `{"id":3,"order_index":12,"status":"in_progress"}`)

	if err := handler.Reorder(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
