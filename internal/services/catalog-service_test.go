package services

import (
	"testing"
	"time"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	svc          CatalogService
	activityRepo *fakeActivityRepo
	regRepo      *fakeRegistrationRepo
	profileRepo  *fakeProfileRepo
	gradeRepo    *fakeGradeRepo
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		activityRepo: newFakeActivityRepo(),
		regRepo:      &fakeRegistrationRepo{},
		profileRepo:  newFakeProfileRepo(),
		gradeRepo:    newFakeGradeRepo(),
	}
	f.svc = NewCatalogService(
		f.activityRepo,
		f.regRepo,
		f.profileRepo,
		f.gradeRepo,
		&fakeTagRepo{},
		&fakeAnnouncementRepo{},
	)
	return f
}

type fakeAnnouncementRepo struct {
	items []domain.Announcement
}

func (f *fakeAnnouncementRepo) CreateAnnouncement(a *domain.Announcement) error {
	f.items = append(f.items, *a)
	return nil
}

func (f *fakeAnnouncementRepo) LatestAnnouncements(n int) ([]domain.Announcement, error) {
	if len(f.items) > n {
		return f.items[len(f.items)-n:], nil
	}
	return f.items, nil
}

func TestListOpenFiltersByQuery(t *testing.T) {
	f := newCatalogFixture()
	_ = f.activityRepo.CreateActivity(&domain.Activity{Title: "River Cleanup", Status: domain.ActivityStatusOpen, MaxXP: 10000})
	_ = f.activityRepo.CreateActivity(&domain.Activity{Title: "Library Shift", Status: domain.ActivityStatusOpen, MaxXP: 10000})
	_ = f.activityRepo.CreateActivity(&domain.Activity{Title: "Closed Fair", Status: domain.ActivityStatusClosed, MaxXP: 10000})

	resp, err := f.svc.ListOpen("")
	require.NoError(t, err)
	assert.Len(t, resp.Activities, 2)

	resp, err = f.svc.ListOpen("river")
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "River Cleanup", resp.Activities[0].Title)
}

func TestGetActivityOccupancyAndFlags(t *testing.T) {
	f := newCatalogFixture()
	activity := &domain.Activity{
		Title:             "river cleanup",
		Status:            domain.ActivityStatusOpen,
		MaxXP:             10000,
		GenderRestriction: domain.GenderNone,
		Capacity:          1,
	}
	_ = f.activityRepo.CreateActivity(activity)
	session := &domain.Session{ActivityID: activity.ID, Date: time.Now(), StartTime: "09:00", EndTime: "11:00", Capacity: 2}
	_ = f.activityRepo.CreateSession(session)
	activity.Sessions = []domain.Session{*session}

	profile := &domain.VolunteerProfile{UserID: 1, StudentID: "20230001", Gender: domain.GenderMale}
	_ = f.profileRepo.CreateProfile(profile)

	// One approved registration in the session fills the activity
	// (capacity 1) but not the session (capacity 2).
	reg := &domain.Registration{
		ProfileID:  profile.ID,
		ActivityID: activity.ID,
		SessionID:  uintPtr(session.ID),
		Status:     domain.RegistrationApproved,
	}
	require.NoError(t, f.regRepo.CreateChecked(reg, 0))

	resp, err := f.svc.GetActivity(activity.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ApprovedCount)
	assert.True(t, resp.IsFull)
	assert.True(t, resp.Registered)
	assert.True(t, resp.Eligible)

	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, 1, resp.Sessions[0].Occupancy)
	assert.False(t, resp.Sessions[0].IsFull)
}

func TestCreateActivityDefaults(t *testing.T) {
	f := newCatalogFixture()

	resp, err := f.svc.CreateActivity(dto.CreateActivityRequest{Title: "  Beach Patrol  "})
	require.NoError(t, err)
	assert.Equal(t, "Beach Patrol", resp.Title)
	assert.Equal(t, domain.ActivityStatusOpen, resp.Status)
	assert.Equal(t, domain.GenderNone, resp.GenderRestriction)
	assert.Equal(t, 10000, resp.MaxXP)
}

func TestCreateActivityRejectsInvertedXPBounds(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.svc.CreateActivity(dto.CreateActivityRequest{
		Title: "x",
		MinXP: 500,
		MaxXP: 100,
	})
	assert.EqualError(t, err, "min_xp cannot exceed max_xp")
}

func TestUpdateActivityReplacesGrades(t *testing.T) {
	f := newCatalogFixture()
	created, err := f.svc.CreateActivity(dto.CreateActivityRequest{
		Title:      "Beach Patrol",
		GradeNames: []string{"2023"},
	})
	require.NoError(t, err)

	err = f.svc.UpdateActivity(created.ID, dto.CreateActivityRequest{
		Title:      "Beach Patrol",
		GradeNames: []string{"2024", "2025"},
	})
	require.NoError(t, err)

	activity, err := f.activityRepo.FindActivityByID(created.ID)
	require.NoError(t, err)
	require.Len(t, activity.Grades, 2)
	assert.Equal(t, "2024", activity.Grades[0].Name)
}
