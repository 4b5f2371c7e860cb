package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"task-tracker-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// DefaultSeed returns the development fixture: three users, two teams, five
// tasks across the three statuses, a few comments and audit entries. Every
// seeded user logs in with the password "password".
func DefaultSeed() Seed {
	base := time.Now()
	pw := mustHash("password")
	users := []models.User{
		{ID: 1, Username: "admin", Email: "admin@example.com", Name: "Administrator", Role: models.RoleAdmin, PasswordHash: pw, CreatedAt: base},
		{ID: 2, Username: "johndoe", Email: "john@example.com", Name: "John Doe", Role: models.RoleUser, PasswordHash: pw, CreatedAt: base},
		{ID: 3, Username: "janedoe", Email: "jane@example.com", Name: "Jane Doe", Role: models.RoleUser, PasswordHash: pw, CreatedAt: base},
	}

	return Seed{
		Users: users,
		Teams: []models.Team{
			{ID: 1, Name: "Engineering", Description: "Frontend and backend developers", CreatedAt: base, Members: []models.User{users[0], users[1]}},
			{ID: 2, Name: "Design", Description: "UI/UX designers", CreatedAt: base, Members: []models.User{users[2]}},
		},
		Tasks: []models.Task{
			{ID: 1, Title: "Implement user authentication", Description: "Build the JWT authentication flow for the API", Status: models.StatusDone, Priority: models.PriorityHigh, AssigneeID: ptr(int64(1)), CreatedAt: base.AddDate(0, 0, -10), UpdatedAt: base.AddDate(0, 0, -5), DueDate: base.AddDate(0, 0, -2)},
			{ID: 2, Title: "Design dashboard UI", Description: "Produce wireframes for the dashboard", Status: models.StatusInProgress, Priority: models.PriorityMedium, AssigneeID: ptr(int64(3)), CreatedAt: base.AddDate(0, 0, -7), UpdatedAt: base.AddDate(0, 0, -1), DueDate: base.AddDate(0, 0, 2)},
			{ID: 3, Title: "Implement task board", Description: "Task board component with drag and drop", Status: models.StatusTodo, Priority: models.PriorityMedium, AssigneeID: ptr(int64(2)), CreatedAt: base.AddDate(0, 0, -3), UpdatedAt: base.AddDate(0, 0, -3), DueDate: base.AddDate(0, 0, 5)},
			{ID: 4, Title: "API documentation", Description: "Write documentation for every API endpoint", Status: models.StatusTodo, Priority: models.PriorityLow, AssigneeID: ptr(int64(1)), CreatedAt: base.AddDate(0, 0, -2), UpdatedAt: base.AddDate(0, 0, -2), DueDate: base.AddDate(0, 0, 10)},
			{ID: 5, Title: "Fix login bug", Description: "Resolve the login issue on mobile devices", Status: models.StatusInProgress, Priority: models.PriorityHigh, AssigneeID: ptr(int64(2)), CreatedAt: base.AddDate(0, 0, -1), UpdatedAt: base, DueDate: base.AddDate(0, 0, 1)},
		},
		Comments: []models.Comment{
			{ID: 1, TaskID: 1, UserID: 1, Content: "Finished the authentication service implementation", CreatedAt: base.AddDate(0, 0, -5), UpdatedAt: base.AddDate(0, 0, -5)},
			{ID: 2, TaskID: 1, UserID: 2, Content: "Great work, auth is running flawlessly", CreatedAt: base.AddDate(0, 0, -4), UpdatedAt: base.AddDate(0, 0, -4)},
			{ID: 3, TaskID: 2, UserID: 3, Content: "Working on the wireframes, will share soon", CreatedAt: base.AddDate(0, 0, -2), UpdatedAt: base.AddDate(0, 0, -2)},
		},
		Activities: []models.Activity{
			{ID: 1, UserID: 1, Action: models.ActionCreatedTask, TargetType: "task", TargetID: 1, Description: `Created task "Implement user authentication"`, CreatedAt: base.AddDate(0, 0, -10)},
			{ID: 2, UserID: 1, Action: models.ActionUpdatedStatus, TargetType: "task", TargetID: 1, Description: `Moved "Implement user authentication" to DONE`, CreatedAt: base.AddDate(0, 0, -5)},
			{ID: 3, UserID: 3, Action: models.ActionCreatedTask, TargetType: "task", TargetID: 2, Description: `Created task "Design dashboard UI"`, CreatedAt: base.AddDate(0, 0, -7)},
			{ID: 4, UserID: 2, Action: models.ActionAddedComment, TargetType: "comment", TargetID: 2, Description: `Commented on "Implement user authentication"`, CreatedAt: base.AddDate(0, 0, -4)},
		},
		ActivityLogs: []models.ActivityLog{
			{ID: 1, Type: models.ActivityTaskCreated, UserID: 1, TaskID: ptr(int64(1)), Message: `Task "Implement user authentication" created`, CreatedAt: base.AddDate(0, 0, -10)},
			{ID: 2, Type: models.ActivityStatusChanged, UserID: 1, TaskID: ptr(int64(1)), Message: `Task "Implement user authentication" moved to DONE`, CreatedAt: base.AddDate(0, 0, -5)},
			{ID: 3, Type: models.ActivityCommentAdded, UserID: 2, TaskID: ptr(int64(1)), Message: `Comment added on task #1`, CreatedAt: base.AddDate(0, 0, -4)},
		},
	}
}
