package services

import (
	"errors"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
)

type CatalogService interface {
	ListOpen(query string) (*dto.ActivityListResponse, error)
	GetActivity(activityID, userID uint) (*dto.ActivityDetailResponse, error)

	// Admin side.
	CreateActivity(input dto.CreateActivityRequest) (*dto.ActivityResponse, error)
	UpdateActivity(activityID uint, input dto.CreateActivityRequest) error
	AddSession(activityID uint, input dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListTags() ([]dto.TagResponse, error)
	CreateTag(input dto.CreateTagRequest) error
	CreateAnnouncement(input dto.CreateAnnouncementRequest) error
}

type catalogService struct {
	activityRepo     repository.ActivityRepository
	registrationRepo repository.RegistrationRepository
	profileRepo      repository.ProfileRepository
	gradeRepo        repository.GradeRepository
	tagRepo          repository.TagRepository
	announcementRepo repository.AnnouncementRepository
}

func NewCatalogService(
	activityRepo repository.ActivityRepository,
	registrationRepo repository.RegistrationRepository,
	profileRepo repository.ProfileRepository,
	gradeRepo repository.GradeRepository,
	tagRepo repository.TagRepository,
	announcementRepo repository.AnnouncementRepository,
) CatalogService {
	return &catalogService{
		activityRepo:     activityRepo,
		registrationRepo: registrationRepo,
		profileRepo:      profileRepo,
		gradeRepo:        gradeRepo,
		tagRepo:          tagRepo,
		announcementRepo: announcementRepo,
	}
}

func (s *catalogService) ListOpen(query string) (*dto.ActivityListResponse, error) {
	activities, err := s.activityRepo.ListOpen(strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}

	resp := &dto.ActivityListResponse{
		Activities:    make([]dto.ActivityResponse, 0, len(activities)),
		Announcements: []dto.AnnouncementResponse{},
	}
	for i := range activities {
		resp.Activities = append(resp.Activities, toActivityResponse(&activities[i]))
	}

	// The activity list page decorates itself with the three latest
	// announcements; a failure here must not break the catalog.
	if items, err := s.announcementRepo.LatestAnnouncements(3); err == nil {
		for _, a := range items {
			resp.Announcements = append(resp.Announcements, dto.AnnouncementResponse{
				Title:     a.Title,
				Content:   a.Content,
				CreatedAt: a.CreatedAt,
			})
		}
	}
	return resp, nil
}

func (s *catalogService) GetActivity(activityID, userID uint) (*dto.ActivityDetailResponse, error) {
	activity, err := s.activityRepo.FindActivityByID(activityID)
	if err != nil || activity == nil {
		return nil, errors.New("activity not found")
	}

	resp := &dto.ActivityDetailResponse{
		ActivityResponse: toActivityResponse(activity),
		Sessions:         make([]dto.SessionResponse, 0, len(activity.Sessions)),
	}

	approved, err := s.registrationRepo.CountApprovedByActivity(activity.ID)
	if err != nil {
		return nil, err
	}
	resp.ApprovedCount = int(approved)
	resp.IsFull = activity.Capacity > 0 && resp.ApprovedCount >= activity.Capacity

	for i := range activity.Sessions {
		session := &activity.Sessions[i]
		occupancy, err := s.registrationRepo.CountActiveBySession(session.ID)
		if err != nil {
			return nil, err
		}
		resp.Sessions = append(resp.Sessions, dto.SessionResponse{
			ID:        session.ID,
			Date:      session.Date,
			StartTime: session.StartTime,
			EndTime:   session.EndTime,
			Location:  session.Location,
			Capacity:  session.Capacity,
			Occupancy: int(occupancy),
			IsFull:    session.IsFull(int(occupancy)),
		})
	}

	if userID != 0 {
		if profile, err := s.profileRepo.FindByUserID(userID); err == nil && profile != nil {
			registered, err := s.registrationRepo.ExistsForProfileActivity(profile.ID, activity.ID)
			if err == nil {
				resp.Registered = registered
			}
			resp.Eligible = activity.Eligible(profile)
		}
	}
	return resp, nil
}

func (s *catalogService) CreateActivity(input dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if input.MaxXP > 0 && input.MinXP > input.MaxXP {
		return nil, errors.New("min_xp cannot exceed max_xp")
	}

	activity := &domain.Activity{
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Status:            input.Status,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		HoursReward:       input.HoursReward,
		MinXP:             input.MinXP,
		MaxXP:             input.MaxXP,
		GenderRestriction: input.GenderRestriction,
		Capacity:          input.Capacity,
	}
	if activity.Status == "" {
		activity.Status = domain.ActivityStatusOpen
	}
	if activity.GenderRestriction == "" {
		activity.GenderRestriction = domain.GenderNone
	}
	if activity.MaxXP == 0 {
		activity.MaxXP = 10000
	}

	if err := s.activityRepo.CreateActivity(activity); err != nil {
		return nil, err
	}

	if len(input.GradeNames) > 0 {
		grades := make([]domain.Grade, 0, len(input.GradeNames))
		for _, name := range input.GradeNames {
			grade, err := s.gradeRepo.FindOrCreate(strings.TrimSpace(name))
			if err != nil {
				return nil, err
			}
			grades = append(grades, *grade)
		}
		if err := s.activityRepo.ReplaceGrades(activity, grades); err != nil {
			return nil, err
		}
		activity.Grades = grades
	}

	resp := toActivityResponse(activity)
	return &resp, nil
}

func (s *catalogService) UpdateActivity(activityID uint, input dto.CreateActivityRequest) error {
	activity, err := s.activityRepo.FindActivityByID(activityID)
	if err != nil || activity == nil {
		return errors.New("activity not found")
	}
	if input.MaxXP > 0 && input.MinXP > input.MaxXP {
		return errors.New("min_xp cannot exceed max_xp")
	}

	activity.Title = strings.TrimSpace(input.Title)
	activity.Description = input.Description
	if input.Status != "" {
		activity.Status = input.Status
	}
	activity.StartDate = input.StartDate
	activity.EndDate = input.EndDate
	activity.HoursReward = input.HoursReward
	activity.MinXP = input.MinXP
	if input.MaxXP > 0 {
		activity.MaxXP = input.MaxXP
	}
	if input.GenderRestriction != "" {
		activity.GenderRestriction = input.GenderRestriction
	}
	activity.Capacity = input.Capacity

	if err := s.activityRepo.SaveActivity(activity); err != nil {
		return err
	}

	grades := make([]domain.Grade, 0, len(input.GradeNames))
	for _, name := range input.GradeNames {
		grade, err := s.gradeRepo.FindOrCreate(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		grades = append(grades, *grade)
	}
	return s.activityRepo.ReplaceGrades(activity, grades)
}

func (s *catalogService) AddSession(activityID uint, input dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	activity, err := s.activityRepo.FindActivityByID(activityID)
	if err != nil || activity == nil {
		return nil, errors.New("activity not found")
	}

	session := &domain.Session{
		ActivityID: activity.ID,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		Location:   input.Location,
		Capacity:   input.Capacity,
	}
	if err := s.activityRepo.CreateSession(session); err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		ID:        session.ID,
		Date:      session.Date,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Location:  session.Location,
		Capacity:  session.Capacity,
	}, nil
}

func (s *catalogService) ListTags() ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.ListTags()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, dto.TagResponse{Name: t.Name, XPBonus: t.XPBonus})
	}
	return out, nil
}

func (s *catalogService) CreateTag(input dto.CreateTagRequest) error {
	return s.tagRepo.CreateTag(&domain.Tag{
		Name:    strings.TrimSpace(input.Name),
		XPBonus: input.XPBonus,
	})
}

func (s *catalogService) CreateAnnouncement(input dto.CreateAnnouncementRequest) error {
	return s.announcementRepo.CreateAnnouncement(&domain.Announcement{
		Title:   strings.TrimSpace(input.Title),
		Content: input.Content,
	})
}

func toActivityResponse(a *domain.Activity) dto.ActivityResponse {
	grades := make([]string, 0, len(a.Grades))
	for _, g := range a.Grades {
		grades = append(grades, g.Name)
	}
	return dto.ActivityResponse{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		Status:            a.Status,
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
		HoursReward:       a.HoursReward,
		MinXP:             a.MinXP,
		MaxXP:             a.MaxXP,
		GenderRestriction: a.GenderRestriction,
		Grades:            grades,
		Capacity:          a.Capacity,
	}
}
