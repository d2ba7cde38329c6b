package service

import (
	"cloudvault/internal/dashboard"
	"cloudvault/internal/entity"
	"cloudvault/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// SummaryCache stores serialized dashboard summaries.
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Invalidate(ctx context.Context) error
}

type DashboardOptions struct {
	QuotaBytes        int64
	PublicBaseURL     string
	ImageHosts        []string
	NotificationLimit int
	BackupLimit       int
	FileLimit         int
}

// DashboardService assembles the dashboard widgets. Without a repository every
// read answers with the built-in sample figures.
type DashboardService struct {
	repo  model.Repository
	cache SummaryCache
	opts  DashboardOptions
	now   func() time.Time
}

func NewDashboardService(repo model.Repository, cache SummaryCache, opts DashboardOptions) *DashboardService {
	if opts.QuotaBytes <= 0 {
		opts.QuotaBytes = dashboard.SampleTotalBytes
	}
	if opts.FileLimit <= 0 {
		opts.FileLimit = 50
	}
	return &DashboardService{
		repo:  repo,
		cache: cache,
		opts:  opts,
		now:   time.Now,
	}
}

// HasRepository reports whether summaries come from the database.
func (s *DashboardService) HasRepository() bool {
	return s.repo != nil
}

// Summary returns every widget for the given view and file filter.
func (s *DashboardService) Summary(ctx context.Context, view, filter string) (*entity.DashboardSummary, error) {
	view = dashboard.ParseViewMode(view)
	filter = dashboard.ParseFileFilter(filter)

	if s.repo == nil {
		return dashboard.SampleSummary(view, filter, s.now()), nil
	}

	key := fmt.Sprintf("summary:%s:%s", view, filter)
	if cached := s.cachedSummary(ctx, key); cached != nil {
		refreshAges(cached.Notifications, s.now())
		return cached, nil
	}

	summary, err := s.buildSummary(ctx, view, filter)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, key, data); err != nil {
				logrus.WithError(err).Warn("failed to cache dashboard summary")
			}
		}
	}
	return summary, nil
}

func (s *DashboardService) cachedSummary(ctx context.Context, key string) *entity.DashboardSummary {
	if s.cache == nil {
		return nil
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Warn("failed to read dashboard cache")
		return nil
	}
	if !ok {
		return nil
	}
	var summary entity.DashboardSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		logrus.WithError(err).Warn("discarding malformed dashboard cache entry")
		return nil
	}
	return &summary
}

// refreshAges recomputes the relative ages of cached notifications; only the
// creation times are trusted from the cache.
func refreshAges(items []entity.NotificationItem, now time.Time) {
	for i := range items {
		items[i].Age = dashboard.HumanizeAge(items[i].CreatedAt, now)
	}
}

func (s *DashboardService) buildSummary(ctx context.Context, view, filter string) (*entity.DashboardSummary, error) {
	now := s.now()

	usage, err := s.repo.FileUsageByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("file usage: %w", err)
	}
	var used int64
	for _, u := range usage {
		used += u.SizeBytes
	}

	files, err := s.Files(ctx, &entity.FileQuery{
		BaseParams: entity.BaseParams{Page: 1, PageSize: int64(s.opts.FileLimit)},
		FileType:   filter,
	})
	if err != nil {
		return nil, err
	}

	backups, err := s.Backups(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projectItems := make([]entity.ProjectItem, 0, len(projects))
	for _, p := range projects {
		projectItems = append(projectItems, dashboard.ProjectItem(p))
	}

	members, err := s.repo.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	team := make([]entity.TeamMemberItem, 0, len(members))
	for _, m := range members {
		team = append(team, dashboard.TeamMemberItem(m, s.opts.ImageHosts))
	}

	notifications, err := s.notificationsAt(ctx, now)
	if err != nil {
		return nil, err
	}

	return &entity.DashboardSummary{
		Overview:            dashboard.Overview(used, s.opts.QuotaBytes),
		Distribution:        dashboard.Distribution(usage),
		View:                view,
		Filter:              filter,
		Files:               files.Files,
		Backups:             backups.Backups,
		Projects:            projectItems,
		Team:                team,
		Notifications:       notifications.Notifications,
		UnreadNotifications: notifications.Unread,
	}, nil
}

// Files lists stored files filtered by type.
func (s *DashboardService) Files(ctx context.Context, query *entity.FileQuery) (*entity.FileListResponse, error) {
	if s.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	if query == nil {
		query = &entity.FileQuery{}
	}
	query.FileType = dashboard.ParseFileFilter(query.FileType)

	files, meta, err := s.repo.ListFiles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	items := make([]entity.FileItem, 0, len(files))
	for _, f := range files {
		items = append(items, dashboard.FileItem(f, s.opts.PublicBaseURL))
	}
	return &entity.FileListResponse{Files: items, Meta: meta}, nil
}

// Backups lists the most recent backups.
func (s *DashboardService) Backups(ctx context.Context) (*entity.BackupListResponse, error) {
	if s.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	backups, err := s.repo.ListBackups(ctx, s.opts.BackupLimit)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	items := make([]entity.BackupItem, 0, len(backups))
	for _, b := range backups {
		items = append(items, dashboard.BackupItem(b, s.opts.PublicBaseURL))
	}
	return &entity.BackupListResponse{Backups: items}, nil
}

// Notifications lists the newest notifications with the unread count.
func (s *DashboardService) Notifications(ctx context.Context) (*entity.NotificationListResponse, error) {
	if s.repo == nil {
		return nil, ErrRepositoryUnavailable
	}
	return s.notificationsAt(ctx, s.now())
}

func (s *DashboardService) notificationsAt(ctx context.Context, now time.Time) (*entity.NotificationListResponse, error) {
	notifications, err := s.repo.ListNotifications(ctx, s.opts.NotificationLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.repo.CountUnreadNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}
	items := make([]entity.NotificationItem, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dashboard.NotificationItem(n, now))
	}
	return &entity.NotificationListResponse{Notifications: items, Unread: unread}, nil
}

// MarkNotificationRead flags one notification as read.
func (s *DashboardService) MarkNotificationRead(ctx context.Context, id uint) error {
	if s.repo == nil {
		return ErrRepositoryUnavailable
	}
	if err := s.repo.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.Invalidate(ctx)
	return nil
}

// Invalidate drops cached summaries. Failures are logged only.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s == nil || s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logrus.WithError(err).Warn("failed to invalidate dashboard cache")
	}
}
