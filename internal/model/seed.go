package model

import (
	"cloudvault/internal/entity"
	"context"
	_ "embed"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

type dashboardSeed struct {
	Projects []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Members     int      `yaml:"members"`
		Progress    int      `yaml:"progress"`
		Tags        []string `yaml:"tags"`
	} `yaml:"projects"`
	Team []struct {
		Name   string `yaml:"name"`
		Email  string `yaml:"email"`
		Role   string `yaml:"role"`
		Avatar string `yaml:"avatar"`
	} `yaml:"team"`
	Files []struct {
		Name string `yaml:"name"`
		Size int64  `yaml:"size"`
	} `yaml:"files"`
	Notifications []struct {
		Kind       string `yaml:"kind"`
		Message    string `yaml:"message"`
		MinutesAgo int    `yaml:"minutes_ago"`
		Read       bool   `yaml:"read"`
	} `yaml:"notifications"`
}

func loadDashboardSeed(raw []byte) (*dashboardSeed, error) {
	var seed dashboardSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &seed, nil
}

// SeedDashboard fills an empty database with the sample dashboard content.
// It does nothing once any project exists. classify maps a file extension to
// its dashboard file type.
func SeedDashboard(ctx context.Context, repo Repository, classify func(ext string) string, now time.Time) error {
	if repo == nil {
		return nil
	}

	count, err := repo.CountProjects(ctx)
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed, err := loadDashboardSeed(seedYAML)
	if err != nil {
		return err
	}

	for _, p := range seed.Projects {
		project := &entity.DbProject{
			Name:        p.Name,
			Description: p.Description,
			MemberCount: p.Members,
			Progress:    p.Progress,
			Tags:        entity.StringArray(p.Tags),
		}
		if err := repo.CreateProject(ctx, project); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Name, err)
		}
	}

	for _, m := range seed.Team {
		member := &entity.DbTeamMember{
			Name:      m.Name,
			Email:     m.Email,
			Role:      m.Role,
			AvatarURL: m.Avatar,
		}
		if err := repo.CreateTeamMember(ctx, member); err != nil {
			return fmt.Errorf("seed team member %q: %w", m.Email, err)
		}
	}

	for _, f := range seed.Files {
		ext := strings.TrimPrefix(strings.ToLower(path.Ext(f.Name)), ".")
		file := &entity.DbFile{
			Name:      f.Name,
			Extension: ext,
			FileType:  classify(ext),
			SizeBytes: f.Size,
		}
		if err := repo.CreateFile(ctx, file); err != nil {
			return fmt.Errorf("seed file %q: %w", f.Name, err)
		}
	}

	for _, n := range seed.Notifications {
		notification := &entity.DbNotification{
			CreatedAt: now.Add(-time.Duration(n.MinutesAgo) * time.Minute),
			Kind:      n.Kind,
			Message:   n.Message,
			Read:      n.Read,
		}
		if err := repo.CreateNotification(ctx, notification); err != nil {
			return fmt.Errorf("seed notification: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"projects":      len(seed.Projects),
		"team":          len(seed.Team),
		"files":         len(seed.Files),
		"notifications": len(seed.Notifications),
	}).Info("seeded dashboard data")
	return nil
}
