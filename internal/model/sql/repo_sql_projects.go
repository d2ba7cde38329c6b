package sql

import (
	"cloudvault/internal/entity"
	"context"
	"fmt"
)

// CreateProject persists a project.
func (r *GormRepository) CreateProject(ctx context.Context, project *entity.DbProject) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if project == nil {
		return fmt.Errorf("project is nil")
	}
	return r.db.WithContext(ctx).Create(project).Error
}

// ListProjects returns all projects ordered by name.
func (r *GormRepository) ListProjects(ctx context.Context) ([]entity.DbProject, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var projects []entity.DbProject
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CountProjects returns the total project count.
func (r *GormRepository) CountProjects(ctx context.Context) (int64, error) {
	if !r.ready() {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbProject{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateTeamMember persists a team member.
func (r *GormRepository) CreateTeamMember(ctx context.Context, member *entity.DbTeamMember) error {
	if !r.ready() {
		return fmt.Errorf("repository not initialised")
	}
	if member == nil {
		return fmt.Errorf("team member is nil")
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// ListTeamMembers returns all team members ordered by name.
func (r *GormRepository) ListTeamMembers(ctx context.Context) ([]entity.DbTeamMember, error) {
	if !r.ready() {
		return nil, fmt.Errorf("repository not initialised")
	}
	var members []entity.DbTeamMember
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
