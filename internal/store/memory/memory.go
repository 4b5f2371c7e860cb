// Package memory implements store.Store against slices held in memory. It is
// the dev/test stand-in for the persistent backend: each Store is constructed
// with its own seed data, so tests instantiate isolated stores per case.
package memory

import (
	"context"
	"sync"
	"time"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store"
)

// Store holds every collection behind one RWMutex. Ids come from monotonic
// counters owned by the store, never from collection length, so a deleted id
// is never reused.
type Store struct {
	mu sync.RWMutex

	tasks        []models.Task
	comments     []models.Comment
	teams        []models.Team
	users        []models.User
	activities   []models.Activity
	activityLogs []models.ActivityLog

	nextTaskID     int64
	nextCommentID  int64
	nextTeamID     int64
	nextUserID     int64
	nextActivityID int64
	nextLogID      int64
}

// Seed is the initial content of a Store.
type Seed struct {
	Tasks        []models.Task
	Comments     []models.Comment
	Teams        []models.Team
	Users        []models.User
	Activities   []models.Activity
	ActivityLogs []models.ActivityLog
}

// New constructs a Store from seed data. Counters start past the highest
// seeded id of each collection.
func New(seed Seed) *Store {
	s := &Store{
		tasks:        append([]models.Task(nil), seed.Tasks...),
		comments:     append([]models.Comment(nil), seed.Comments...),
		teams:        append([]models.Team(nil), seed.Teams...),
		users:        append([]models.User(nil), seed.Users...),
		activities:   append([]models.Activity(nil), seed.Activities...),
		activityLogs: append([]models.ActivityLog(nil), seed.ActivityLogs...),
	}
	for _, t := range s.tasks {
		s.nextTaskID = max64(s.nextTaskID, t.ID)
	}
	for _, c := range s.comments {
		s.nextCommentID = max64(s.nextCommentID, c.ID)
	}
	for _, t := range s.teams {
		s.nextTeamID = max64(s.nextTeamID, t.ID)
	}
	for _, u := range s.users {
		s.nextUserID = max64(s.nextUserID, u.ID)
	}
	for _, a := range s.activities {
		s.nextActivityID = max64(s.nextActivityID, a.ID)
	}
	for _, l := range s.activityLogs {
		s.nextLogID = max64(s.nextLogID, l.ID)
	}
	return s
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// now is a small indirection to allow test stubbing if needed.
var now = time.Now

// --- tasks ---

func (s *Store) ListTasks(_ context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...), nil
}

func (s *Store) GetTask(_ context.Context, id int64) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, store.ErrTaskNotFound
}

func (s *Store) CreateTask(_ context.Context, task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTaskID++
	task.ID = s.nextTaskID
	ts := now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = ts
	}
	task.UpdatedAt = ts
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *Store) UpdateTask(_ context.Context, task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == task.ID {
			task.CreatedAt = t.CreatedAt
			task.UpdatedAt = now()
			s.tasks[i] = task
			return task, nil
		}
	}
	return models.Task{}, store.ErrTaskNotFound
}

func (s *Store) DeleteTask(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, t := range s.tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return store.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)

	// Cascade: drop every comment owned by the deleted task.
	kept := s.comments[:0]
	for _, c := range s.comments {
		if c.TaskID != id {
			kept = append(kept, c)
		}
	}
	s.comments = kept
	return nil
}

// --- comments ---

func (s *Store) ListComments(_ context.Context, taskID int64) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Comment, 0)
	for _, c := range s.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) GetComment(_ context.Context, id int64) (models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Comment{}, store.ErrCommentNotFound
}

func (s *Store) CreateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCommentID++
	comment.ID = s.nextCommentID
	ts := now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = ts
	}
	comment.UpdatedAt = ts
	s.comments = append(s.comments, comment)
	return comment, nil
}

func (s *Store) UpdateComment(_ context.Context, comment models.Comment) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID == comment.ID {
			comment.TaskID = c.TaskID
			comment.UserID = c.UserID
			comment.CreatedAt = c.CreatedAt
			comment.UpdatedAt = now()
			s.comments[i] = comment
			return comment, nil
		}
	}
	return models.Comment{}, store.ErrCommentNotFound
}

func (s *Store) DeleteComment(_ context.Context, taskID, commentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.comments {
		if c.ID == commentID && c.TaskID == taskID {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return nil
		}
	}
	return store.ErrCommentNotFound
}

// --- teams ---

func (s *Store) ListTeams(_ context.Context) ([]models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Team, len(s.teams))
	for i, t := range s.teams {
		out[i] = cloneTeam(t)
	}
	return out, nil
}

func (s *Store) GetTeam(_ context.Context, id int64) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return cloneTeam(t), nil
		}
	}
	return models.Team{}, store.ErrTeamNotFound
}

func (s *Store) CreateTeam(_ context.Context, team models.Team) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTeamID++
	team.ID = s.nextTeamID
	ts := now()
	if team.CreatedAt.IsZero() {
		team.CreatedAt = ts
	}
	team.UpdatedAt = ts
	if team.Members == nil {
		team.Members = []models.User{}
	}
	s.teams = append(s.teams, team)
	return cloneTeam(team), nil
}

func (s *Store) UpdateTeam(_ context.Context, team models.Team) (models.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teams {
		if t.ID == team.ID {
			team.CreatedAt = t.CreatedAt
			team.Members = t.Members
			team.UpdatedAt = now()
			s.teams[i] = team
			return cloneTeam(team), nil
		}
	}
	return models.Team{}, store.ErrTeamNotFound
}

func (s *Store) DeleteTeam(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teams {
		if t.ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return nil
		}
	}
	return store.ErrTeamNotFound
}

func (s *Store) AddMember(_ context.Context, teamID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ti := s.teamIndex(teamID)
	if ti == -1 {
		return store.ErrTeamNotFound
	}
	var user *models.User
	for i := range s.users {
		if s.users[i].ID == userID {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return store.ErrUserNotFound
	}
	for _, m := range s.teams[ti].Members {
		if m.ID == userID {
			return nil // already a member
		}
	}
	s.teams[ti].Members = append(s.teams[ti].Members, *user)
	return nil
}

func (s *Store) RemoveMember(_ context.Context, teamID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ti := s.teamIndex(teamID)
	if ti == -1 {
		return store.ErrTeamNotFound
	}
	members := s.teams[ti].Members
	for i, m := range members {
		if m.ID == userID {
			s.teams[ti].Members = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	// Removing an absent member is a no-op.
	return nil
}

func (s *Store) teamIndex(id int64) int {
	for i, t := range s.teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTeam(t models.Team) models.Team {
	t.Members = append([]models.User(nil), t.Members...)
	return t
}

// --- users ---

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...), nil
}

func (s *Store) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return models.User{}, store.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailTaken
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	ts := now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = ts
	}
	user.UpdatedAt = ts
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			user.Username = u.Username // identity is immutable
			user.CreatedAt = u.CreatedAt
			user.UpdatedAt = now()
			s.users[i] = user
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return store.ErrUserNotFound
}

// --- activities ---

func (s *Store) ListActivities(_ context.Context) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Activity(nil), s.activities...), nil
}

func (s *Store) AppendActivity(_ context.Context, activity models.Activity) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextActivityID++
	activity.ID = s.nextActivityID
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = now()
	}
	s.activities = append(s.activities, activity)
	return activity, nil
}

// --- activity logs ---

func (s *Store) ListActivityLogs(_ context.Context) ([]models.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ActivityLog(nil), s.activityLogs...), nil
}

func (s *Store) AppendActivityLog(_ context.Context, log models.ActivityLog) (models.ActivityLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLogID++
	log.ID = s.nextLogID
	if log.CreatedAt.IsZero() {
		log.CreatedAt = now()
	}
	s.activityLogs = append(s.activityLogs, log)
	return log, nil
}

// Ensure Store implements store.Store at compile time.
var _ store.Store = (*Store)(nil)
