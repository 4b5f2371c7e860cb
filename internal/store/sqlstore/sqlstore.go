// Package sqlstore implements store.Store on GORM over SQLite. It uses the
// pure-Go glebarez driver, so no CGO is required.
package sqlstore

import (
	"context"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store"
)

// Store wraps the gorm handle. Ids are autoincrement primary keys.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at dsn and runs
// migrations.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wraps an existing gorm handle (tests use an in-memory database)
// and runs migrations.
func NewWithDB(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Task{},
		&models.Comment{},
		&models.Activity{},
		&models.ActivityLog{},
	); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying handle for seeding in tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// --- tasks ---

func (s *Store) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.WithContext(ctx).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		return models.Task{}, notFound(err, store.ErrTaskNotFound)
	}
	return task, nil
}

func (s *Store) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = 0
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *Store) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var existing models.Task
	if err := s.db.WithContext(ctx).First(&existing, task.ID).Error; err != nil {
		return models.Task{}, notFound(err, store.ErrTaskNotFound)
	}
	task.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return store.ErrTaskNotFound
		}
		return tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error
	})
}

// --- comments ---

func (s *Store) ListComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).Where("task_id = ?", taskID).Order("id asc").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) GetComment(ctx context.Context, id int64) (models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return models.Comment{}, notFound(err, store.ErrCommentNotFound)
	}
	return comment, nil
}

func (s *Store) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	comment.ID = 0
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var existing models.Comment
	if err := s.db.WithContext(ctx).First(&existing, comment.ID).Error; err != nil {
		return models.Comment{}, notFound(err, store.ErrCommentNotFound)
	}
	existing.Content = comment.Content
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return models.Comment{}, err
	}
	return existing, nil
}

func (s *Store) DeleteComment(ctx context.Context, taskID, commentID int64) error {
	res := s.db.WithContext(ctx).Where("id = ? AND task_id = ?", commentID, taskID).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrCommentNotFound
	}
	return nil
}

// --- teams ---

func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.WithContext(ctx).Preload("Members").Order("id asc").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].Members == nil {
			teams[i].Members = []models.User{}
		}
	}
	return teams, nil
}

func (s *Store) GetTeam(ctx context.Context, id int64) (models.Team, error) {
	var team models.Team
	err := s.db.WithContext(ctx).Preload("Members").First(&team, id).Error
	if err != nil {
		return models.Team{}, notFound(err, store.ErrTeamNotFound)
	}
	if team.Members == nil {
		team.Members = []models.User{}
	}
	return team, nil
}

func (s *Store) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	team.ID = 0
	if err := s.db.WithContext(ctx).Create(&team).Error; err != nil {
		return models.Team{}, err
	}
	if team.Members == nil {
		team.Members = []models.User{}
	}
	return team, nil
}

func (s *Store) UpdateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	existing, err := s.GetTeam(ctx, team.ID)
	if err != nil {
		return models.Team{}, err
	}
	existing.Name = team.Name
	existing.Description = team.Description
	if err := s.db.WithContext(ctx).Omit("Members").Save(&existing).Error; err != nil {
		return models.Team{}, err
	}
	return existing, nil
}

func (s *Store) DeleteTeam(ctx context.Context, id int64) error {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, id).Error; err != nil {
		return notFound(err, store.ErrTeamNotFound)
	}
	if err := s.db.WithContext(ctx).Model(&team).Association("Members").Clear(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&team).Error
}

func (s *Store) AddMember(ctx context.Context, teamID, userID int64) error {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, teamID).Error; err != nil {
		return notFound(err, store.ErrTeamNotFound)
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return notFound(err, store.ErrUserNotFound)
	}
	// The join table keys on (team_id, user_id), so appending an existing
	// member cannot duplicate the row.
	return s.db.WithContext(ctx).Model(&team).Association("Members").Append(&user)
}

func (s *Store) RemoveMember(ctx context.Context, teamID, userID int64) error {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, teamID).Error; err != nil {
		return notFound(err, store.ErrTeamNotFound)
	}
	// Deleting an absent association is a no-op.
	return s.db.WithContext(ctx).Model(&team).Association("Members").Delete(&models.User{ID: userID})
}

// --- users ---

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return models.User{}, notFound(err, store.ErrUserNotFound)
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return models.User{}, notFound(err, store.ErrUserNotFound)
	}
	return user, nil
}

func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, store.ErrUsernameTaken
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, store.ErrEmailTaken
	}
	user.ID = 0
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).First(&existing, user.ID).Error; err != nil {
		return models.User{}, notFound(err, store.ErrUserNotFound)
	}
	existing.Email = user.Email
	existing.Name = user.Name
	existing.Role = user.Role
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return models.User{}, err
	}
	return existing, nil
}

func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// --- activities ---

func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := s.db.WithContext(ctx).Order("id asc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (s *Store) AppendActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	activity.ID = 0
	if err := s.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

// --- activity logs ---

func (s *Store) ListActivityLogs(ctx context.Context) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := s.db.WithContext(ctx).Order("id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *Store) AppendActivityLog(ctx context.Context, log models.ActivityLog) (models.ActivityLog, error) {
	log.ID = 0
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return models.ActivityLog{}, err
	}
	return log, nil
}

// Ensure Store implements store.Store at compile time.
var _ store.Store = (*Store)(nil)
