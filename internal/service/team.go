package service

import (
	"context"
	"errors"

	"task-tracker-api/internal/models"
	"task-tracker-api/internal/store"
)

type teamService struct {
	store store.Store
}

func (s *teamService) List(ctx context.Context) (models.Response, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, teams), nil
}

func (s *teamService) Get(ctx context.Context, id int64) (models.Response, error) {
	team, err := s.store.GetTeam(ctx, id)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Fail(msgTeamNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, team), nil
}

func (s *teamService) Members(ctx context.Context, teamID int64) (models.Response, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Fail(msgTeamNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	members := team.Members
	if members == nil {
		members = []models.User{}
	}
	return models.OK(msgSuccess, members), nil
}

func (s *teamService) Create(ctx context.Context, req models.CreateTeamRequest) (models.Response, error) {
	team, err := s.store.CreateTeam(ctx, models.Team{
		Name:        req.Name,
		Description: req.Description,
		Members:     []models.User{},
	})
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, team), nil
}

func (s *teamService) Update(ctx context.Context, id int64, req models.UpdateTeamRequest) (models.Response, error) {
	existing, err := s.store.GetTeam(ctx, id)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Fail(msgTeamNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}

	updated, err := s.store.UpdateTeam(ctx, existing)
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, updated), nil
}

func (s *teamService) Delete(ctx context.Context, id int64) (models.Response, error) {
	err := s.store.DeleteTeam(ctx, id)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Fail(msgTeamNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	return models.OK(msgSuccess, nil), nil
}

func (s *teamService) AddMember(ctx context.Context, teamID, userID int64) (models.Response, error) {
	err := s.store.AddMember(ctx, teamID, userID)
	switch {
	case errors.Is(err, store.ErrTeamNotFound):
		return models.Fail(msgTeamNotFound), nil
	case errors.Is(err, store.ErrUserNotFound):
		return models.Fail(msgUserNotFound), nil
	case err != nil:
		return models.Response{}, err
	}
	return s.Members(ctx, teamID)
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, userID int64) (models.Response, error) {
	err := s.store.RemoveMember(ctx, teamID, userID)
	if errors.Is(err, store.ErrTeamNotFound) {
		return models.Fail(msgTeamNotFound), nil
	}
	if err != nil {
		return models.Response{}, err
	}
	return s.Members(ctx, teamID)
}
