package task

import (
	"context"
	"testing"

	"github.com/emptrack/tracker-backend-go/internal/domain/activity"
	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/domain/task"
	"github.com/emptrack/tracker-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

var adminActor = employee.Actor{UserID: "0188d0f2-7b8c-7b4a-8a2b-000000000001", Role: user.RoleAdmin}

type stubTaskRepo struct {
	stored task.Task
}

func (r *stubTaskRepo) List(ctx context.Context, assignedTo *string) ([]task.Task, error) {
	return []task.Task{r.stored}, nil
}

func (r *stubTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	if r.stored.ID != id {
		return task.Task{}, task.ErrTaskNotFound
	}
	return r.stored, nil
}

func (r *stubTaskRepo) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	r.stored = newTask
	return newTask, nil
}

func (r *stubTaskRepo) Update(ctx context.Context, updated task.Task) (task.Task, error) {
	r.stored = updated
	return updated, nil
}

type stubEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (r *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) { return nil, nil }

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	e, ok := r.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (r *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (r *stubEmployeeRepo) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	return updated, nil
}

func (r *stubEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, employeeID string, activityType activity.Type, message string) {
}

// A malformed assignee filter never reaches the database; the service
// answers with an empty list instead.
func TestTaskList_MalformedFilterYieldsEmpty(t *testing.T) {
	svc := NewTaskService(nil, nil, nil)

	results, err := svc.List(context.Background(), strPtr("not-a-uuid"))
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestTaskGetByID_MalformedID(t *testing.T) {
	svc := NewTaskService(nil, nil, nil)

	_, err := svc.GetByID(context.Background(), "12345")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskCreate_ValidationFailures(t *testing.T) {
	svc := NewTaskService(nil, nil, nil)

	cases := []struct {
		name string
		req  task.CreateTaskRequest
	}{
		{"missing title", task.CreateTaskRequest{AssignedTo: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"}},
		{"missing assignee", task.CreateTaskRequest{Title: "Ship it"}},
		{"malformed assignee", task.CreateTaskRequest{Title: "Ship it", AssignedTo: "nope"}},
		{"bad due date", task.CreateTaskRequest{
			Title:      "Ship it",
			AssignedTo: "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
			DueDate:    strPtr("31/12/2026"),
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), c.req, "admin-user-id")
			assert.Error(t, err)
		})
	}
}

func TestTaskUpdate_MalformedID(t *testing.T) {
	svc := NewTaskService(nil, nil, nil)

	_, err := svc.Update(context.Background(), "nope", task.UpdateTaskRequest{}, adminActor)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestTaskUpdate_InvalidStatus(t *testing.T) {
	svc := NewTaskService(nil, nil, nil)

	_, err := svc.Update(context.Background(), "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		task.UpdateTaskRequest{Status: strPtr("done")}, adminActor)
	assert.Error(t, err)
}

func TestTaskUpdate_NonAssigneeForbidden(t *testing.T) {
	taskID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	taskRepo := &stubTaskRepo{stored: task.Task{
		ID:         taskID,
		Title:      "Ship it",
		AssignedTo: "0188d0f2-7b8c-7b4a-8a2b-00000000aaaa",
		Status:     task.StatusPending,
	}}
	employeeRepo := &stubEmployeeRepo{byUserID: map[string]employee.Employee{
		"other-user": {ID: "0188d0f2-7b8c-7b4a-8a2b-00000000bbbb"},
	}}
	svc := NewTaskService(taskRepo, employeeRepo, noopRecorder{})

	actor := employee.Actor{UserID: "other-user", Role: user.RoleEmployee}
	_, err := svc.Update(context.Background(), taskID,
		task.UpdateTaskRequest{Status: strPtr("completed")}, actor)
	assert.ErrorIs(t, err, task.ErrNotTaskAssignee)
	assert.Equal(t, task.StatusPending, taskRepo.stored.Status)
}

func TestTaskUpdate_UnlinkedUserForbidden(t *testing.T) {
	taskID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	taskRepo := &stubTaskRepo{stored: task.Task{
		ID:         taskID,
		Title:      "Ship it",
		AssignedTo: "0188d0f2-7b8c-7b4a-8a2b-00000000aaaa",
		Status:     task.StatusPending,
	}}
	svc := NewTaskService(taskRepo, &stubEmployeeRepo{}, noopRecorder{})

	actor := employee.Actor{UserID: "no-employee-user", Role: user.RoleEmployee}
	_, err := svc.Update(context.Background(), taskID,
		task.UpdateTaskRequest{Status: strPtr("completed")}, actor)
	assert.ErrorIs(t, err, task.ErrNotTaskAssignee)
}

func TestTaskUpdate_AssigneeAllowed(t *testing.T) {
	taskID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	assigneeID := "0188d0f2-7b8c-7b4a-8a2b-00000000aaaa"
	taskRepo := &stubTaskRepo{stored: task.Task{
		ID:         taskID,
		Title:      "Ship it",
		AssignedTo: assigneeID,
		Status:     task.StatusPending,
	}}
	employeeRepo := &stubEmployeeRepo{byUserID: map[string]employee.Employee{
		"assignee-user": {ID: assigneeID},
	}}
	svc := NewTaskService(taskRepo, employeeRepo, noopRecorder{})

	actor := employee.Actor{UserID: "assignee-user", Role: user.RoleEmployee}
	updated, err := svc.Update(context.Background(), taskID,
		task.UpdateTaskRequest{Status: strPtr("completed")}, actor)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, updated.Status)
}

func TestTaskUpdate_AdminAllowed(t *testing.T) {
	taskID := "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"
	taskRepo := &stubTaskRepo{stored: task.Task{
		ID:         taskID,
		Title:      "Ship it",
		AssignedTo: "0188d0f2-7b8c-7b4a-8a2b-00000000aaaa",
		Status:     task.StatusPending,
	}}
	// No employee record for the admin: the role alone grants the update.
	svc := NewTaskService(taskRepo, &stubEmployeeRepo{}, noopRecorder{})

	updated, err := svc.Update(context.Background(), taskID,
		task.UpdateTaskRequest{Status: strPtr("in-progress")}, adminActor)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)
}
