package services

import (
	"errors"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
)

// In-memory repository fakes. They keep just enough behavior for the
// service rules to be observable without a database.

type fakeUserRepo struct {
	nextID uint
	users  map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	f.nextID++
	user.ID = f.nextID
	f.users[user.StudentID] = user
	return user, nil
}

func (f *fakeUserRepo) FindUserByStudentID(studentID string) (*domain.User, error) {
	u, ok := f.users[studentID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) SaveUser(user *domain.User) error {
	f.users[user.StudentID] = user
	return nil
}

type fakeProfileRepo struct {
	nextID   uint
	profiles map[uint]*domain.VolunteerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uint]*domain.VolunteerProfile{}}
}

func (f *fakeProfileRepo) CreateProfile(profile *domain.VolunteerProfile) error {
	f.nextID++
	profile.ID = f.nextID
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByUserID(userID uint) (*domain.VolunteerProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, errors.New("profile not found")
}

func (f *fakeProfileRepo) FindByStudentID(studentID string) (*domain.VolunteerProfile, error) {
	for _, p := range f.profiles {
		if p.StudentID == studentID {
			return p, nil
		}
	}
	return nil, errors.New("profile not found")
}

func (f *fakeProfileRepo) FindByIDs(ids []uint) ([]domain.VolunteerProfile, error) {
	var out []domain.VolunteerProfile
	for _, id := range ids {
		if p, ok := f.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) SaveProfile(profile *domain.VolunteerProfile) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) ReplaceTags(profile *domain.VolunteerProfile, tags []domain.Tag) error {
	profile.Tags = tags
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) AddHours(profileID uint, delta int) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return errors.New("profile not found")
	}
	p.TotalHours += delta
	p.TotalXP += delta
	return nil
}

func (f *fakeProfileRepo) SetXP(profileID uint, xp int) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return errors.New("profile not found")
	}
	p.TotalXP = xp
	return nil
}

type fakeGradeRepo struct {
	nextID uint
	grades map[string]*domain.Grade
}

func newFakeGradeRepo() *fakeGradeRepo {
	return &fakeGradeRepo{grades: map[string]*domain.Grade{}}
}

func (f *fakeGradeRepo) FindOrCreate(name string) (*domain.Grade, error) {
	if g, ok := f.grades[name]; ok {
		return g, nil
	}
	f.nextID++
	g := &domain.Grade{ID: f.nextID, Name: name}
	f.grades[name] = g
	return g, nil
}

func (f *fakeGradeRepo) ListGrades() ([]domain.Grade, error) {
	var out []domain.Grade
	for _, g := range f.grades {
		out = append(out, *g)
	}
	return out, nil
}

type fakeTagRepo struct {
	tags []domain.Tag
}

func (f *fakeTagRepo) CreateTag(tag *domain.Tag) error {
	tag.ID = uint(len(f.tags) + 1)
	f.tags = append(f.tags, *tag)
	return nil
}

func (f *fakeTagRepo) ListTags() ([]domain.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) FindByNames(names []string) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, t := range f.tags {
		for _, n := range names {
			if strings.EqualFold(t.Name, n) {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

type fakeActivityRepo struct {
	nextID     uint
	activities map[uint]*domain.Activity
	sessions   map[uint]*domain.Session
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{
		activities: map[uint]*domain.Activity{},
		sessions:   map[uint]*domain.Session{},
	}
}

func (f *fakeActivityRepo) CreateActivity(activity *domain.Activity) error {
	f.nextID++
	activity.ID = f.nextID
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) SaveActivity(activity *domain.Activity) error {
	f.activities[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepo) FindActivityByID(id uint) (*domain.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, errors.New("activity not found")
	}
	return a, nil
}

func (f *fakeActivityRepo) ReplaceGrades(activity *domain.Activity, grades []domain.Grade) error {
	activity.Grades = grades
	return nil
}

func (f *fakeActivityRepo) ListOpen(query string) ([]domain.Activity, error) {
	var out []domain.Activity
	for _, a := range f.activities {
		if a.Status != domain.ActivityStatusOpen {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), strings.ToLower(query)) &&
			!strings.Contains(strings.ToLower(a.Description), strings.ToLower(query)) {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeActivityRepo) CreateSession(session *domain.Session) error {
	f.nextID++
	session.ID = f.nextID
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeActivityRepo) FindSessionByID(id uint) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	return s, nil
}

type fakeRegistrationRepo struct {
	nextID uint
	regs   []*domain.Registration
}

func (f *fakeRegistrationRepo) CreateChecked(reg *domain.Registration, activityCapacity int) error {
	for _, r := range f.regs {
		if r.ProfileID == reg.ProfileID && r.ActivityID == reg.ActivityID {
			return domain.ErrAlreadyRegistered
		}
	}
	if activityCapacity > 0 {
		n, _ := f.CountApprovedByActivity(reg.ActivityID)
		if n >= int64(activityCapacity) {
			return domain.ErrActivityFull
		}
	}
	f.nextID++
	reg.ID = f.nextID
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeRegistrationRepo) ExistsForProfileActivity(profileID, activityID uint) (bool, error) {
	for _, r := range f.regs {
		if r.ProfileID == profileID && r.ActivityID == activityID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegistrationRepo) CountApprovedByActivity(activityID uint) (int64, error) {
	var n int64
	for _, r := range f.regs {
		if r.ActivityID == activityID && r.Status == domain.RegistrationApproved {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrationRepo) CountActiveBySession(sessionID uint) (int64, error) {
	var n int64
	for _, r := range f.regs {
		if r.SessionID != nil && *r.SessionID == sessionID && r.Status != domain.RegistrationRejected {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrationRepo) ListByProfile(profileID uint) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, r := range f.regs {
		if r.ProfileID == profileID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListByActivity(activityID uint) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, r := range f.regs {
		if r.ActivityID == activityID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) FindByIDs(ids []uint) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, r := range f.regs {
		for _, id := range ids {
			if r.ID == id {
				out = append(out, *r)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(ids []uint, status string) (int64, error) {
	var n int64
	for _, r := range f.regs {
		for _, id := range ids {
			if r.ID == id {
				r.Status = status
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeRegistrationRepo) SetHoursAwarded(ids []uint, hours int) (int64, error) {
	var n int64
	for _, r := range f.regs {
		for _, id := range ids {
			if r.ID == id {
				r.HoursAwarded = hours
				n++
				break
			}
		}
	}
	return n, nil
}

func (f *fakeRegistrationRepo) AwardHours(profileID, activityID uint, delta int) error {
	for _, r := range f.regs {
		if r.ProfileID == profileID && r.ActivityID == activityID {
			r.HoursAwarded += delta
			r.Status = domain.RegistrationApproved
		}
	}
	return nil
}

type fakeMessageRepo struct {
	nextID uint
	msgs   []*domain.Message
}

func (f *fakeMessageRepo) CreateMessage(msg *domain.Message) error {
	f.nextID++
	msg.ID = f.nextID
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeMessageRepo) ListVisible(limit int) ([]domain.Message, error) {
	var out []domain.Message
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if !f.msgs[i].Visible {
			continue
		}
		out = append(out, *f.msgs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeProducer struct {
	published [][]byte
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	f.published = append(f.published, value)
	return nil
}
