package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/helper"
	"github.com/dedewo882/volunteer-platform-final/internal/helper/utils"
	"github.com/dedewo882/volunteer-platform-final/internal/interfaces"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
	"github.com/dedewo882/volunteer-platform-final/pkg/xlsx"
	"github.com/google/uuid"
)

// Spreadsheet column headers, as produced by the school's office templates.
const (
	colStudentID  = "学号"
	colName       = "姓名"
	colPassword   = "初始密码"
	colGender     = "性别"
	colClass      = "班级"
	colHours      = "志愿者时长"
	colTags       = "标签"
	colHoursDelta = "服务时长"
)

type ImporterService interface {
	// ImportRoster creates or updates one account+profile per row. Row
	// errors become warnings; they never abort the batch.
	ImportRoster(r io.Reader) (*dto.ImportReport, error)

	// AwardHours adds the per-row hours delta to each profile and approves
	// matching registrations on the target activity.
	AwardHours(activityID uint, r io.Reader) (*dto.HoursReport, error)

	// RecomputeXP overwrites total_xp with hours + tag bonuses for the
	// listed profiles, repairing any drift.
	RecomputeXP(profileIDs []uint) (int, error)
}

type importerService struct {
	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	gradeRepo        repository.GradeRepository
	tagRepo          repository.TagRepository
	registrationRepo repository.RegistrationRepository
	auth             helper.Auth
	producer         interfaces.ProducerHandler
}

func NewImporterService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	gradeRepo repository.GradeRepository,
	tagRepo repository.TagRepository,
	registrationRepo repository.RegistrationRepository,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
) ImporterService {
	return &importerService{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		gradeRepo:        gradeRepo,
		tagRepo:          tagRepo,
		registrationRepo: registrationRepo,
		auth:             auth,
		producer:         producer,
	}
}

func (s *importerService) ImportRoster(r io.Reader) (*dto.ImportReport, error) {
	headers, rows, err := xlsx.ReadSheet(r)
	if err != nil {
		return nil, err
	}
	if !hasColumns(headers, colStudentID, colName, colPassword) {
		return nil, fmt.Errorf("missing required columns: need %s, %s, %s", colStudentID, colName, colPassword)
	}

	report := &dto.ImportReport{BatchID: uuid.NewString(), Rows: len(rows)}
	seen := map[string]bool{}

	// A sheet without the tag column leaves tag assignments alone; only a
	// present-but-empty cell clears them.
	tagsInFile := hasColumns(headers, colTags)

	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header row

		studentID := strings.TrimSpace(row[colStudentID])
		name := strings.TrimSpace(row[colName])
		if studentID == "" || name == "" {
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: missing student id or name, skipped", rowNum))
			continue
		}
		if seen[studentID] {
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: duplicate student id %s in file, skipped", rowNum, studentID))
			continue
		}
		seen[studentID] = true

		created, err := s.upsertRosterRow(studentID, name, row, tagsInFile)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}
	return report, nil
}

func (s *importerService) upsertRosterRow(studentID, name string, row xlsx.Row, tagsInFile bool) (created bool, err error) {
	user, err := s.userRepo.FindUserByStudentID(studentID)
	if err != nil || user == nil {
		password := strings.TrimSpace(row[colPassword])
		if password == "" {
			return false, errors.New("missing initial password for new account")
		}
		hash, err := s.auth.HashPassword(password)
		if err != nil {
			return false, err
		}
		user, err = s.userRepo.CreateUser(&domain.User{
			StudentID:    studentID,
			Name:         name,
			PasswordHash: hash,
			Status:       domain.UserStatusActive,
		})
		if err != nil {
			return false, err
		}
		created = true
	} else if user.Name != name {
		user.Name = name
		if err := s.userRepo.SaveUser(user); err != nil {
			return false, err
		}
	}

	profile, err := s.profileRepo.FindByStudentID(studentID)
	if err != nil || profile == nil {
		profile = &domain.VolunteerProfile{
			UserID:    user.ID,
			StudentID: studentID,
			Gender:    domain.GenderMale,
		}
		created = true
	}

	if g := strings.TrimSpace(row[colGender]); g != "" {
		profile.Gender = parseGender(g)
	}

	if class := strings.TrimSpace(row[colClass]); class != "" {
		profile.ClassName = class
		if prefix := utils.GradePrefix(class); prefix != "" {
			grade, err := s.gradeRepo.FindOrCreate(prefix)
			if err != nil {
				return created, err
			}
			profile.GradeID = &grade.ID
		}
	}

	hours := 0
	if cell := strings.TrimSpace(row[colHours]); cell != "" {
		hours, err = parseHours(cell)
		if err != nil {
			return created, fmt.Errorf("bad hours value %q", cell)
		}
		profile.TotalHours = hours
	}

	// Unknown tag names are silently skipped. Without a tag column the
	// stored tags stand and keep contributing their bonuses.
	tags := profile.Tags
	if tagsInFile {
		tags = nil
		if names := utils.SplitTagNames(row[colTags]); len(names) > 0 {
			tags, err = s.tagRepo.FindByNames(names)
			if err != nil {
				return created, err
			}
		}
	}

	xp := profile.TotalHours
	for _, t := range tags {
		xp += t.XPBonus
	}
	profile.TotalXP = xp

	if profile.ID == 0 {
		if err := s.profileRepo.CreateProfile(profile); err != nil {
			return created, err
		}
	} else {
		if err := s.profileRepo.SaveProfile(profile); err != nil {
			return created, err
		}
	}
	if !tagsInFile {
		return created, nil
	}
	return created, s.profileRepo.ReplaceTags(profile, tags)
}

func (s *importerService) AwardHours(activityID uint, r io.Reader) (*dto.HoursReport, error) {
	headers, rows, err := xlsx.ReadSheet(r)
	if err != nil {
		return nil, err
	}
	if !hasColumns(headers, colStudentID, colHoursDelta) {
		return nil, fmt.Errorf("missing required columns: need %s, %s", colStudentID, colHoursDelta)
	}

	report := &dto.HoursReport{BatchID: uuid.NewString(), Rows: len(rows)}

	for i, row := range rows {
		rowNum := i + 2

		studentID := strings.TrimSpace(row[colStudentID])
		if studentID == "" {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: missing student id, skipped", rowNum))
			continue
		}

		delta, err := parseHours(strings.TrimSpace(row[colHoursDelta]))
		if err != nil {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: bad hours value %q, skipped", rowNum, row[colHoursDelta]))
			continue
		}

		profile, err := s.profileRepo.FindByStudentID(studentID)
		if err != nil || profile == nil {
			// The account may predate the profile (e.g. seeded admins or
			// partial imports); backfill a minimal profile in that case.
			user, uerr := s.userRepo.FindUserByStudentID(studentID)
			if uerr != nil || user == nil {
				report.Skipped++
				report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: unknown student id %s, skipped", rowNum, studentID))
				continue
			}
			profile = &domain.VolunteerProfile{
				UserID:    user.ID,
				StudentID: studentID,
				Gender:    domain.GenderMale,
			}
			if err := s.profileRepo.CreateProfile(profile); err != nil {
				report.Skipped++
				report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: %v", rowNum, err))
				continue
			}
		}

		if err := s.profileRepo.AddHours(profile.ID, delta); err != nil {
			report.Skipped++
			report.Warnings = append(report.Warnings, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if err := s.registrationRepo.AwardHours(profile.ID, activityID, delta); err != nil {
			log.Printf("award hours on registrations error: %v", err)
		}
		report.Updated++

		s.publishHoursEvent(studentID, activityID, delta)
	}
	return report, nil
}

func (s *importerService) RecomputeXP(profileIDs []uint) (int, error) {
	profiles, err := s.profileRepo.FindByIDs(profileIDs)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i := range profiles {
		p := &profiles[i]
		if err := s.profileRepo.SetXP(p.ID, p.RecomputedXP()); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func (s *importerService) publishHoursEvent(studentID string, activityID uint, hours int) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(dto.HoursAwardedEvent{
		StudentID:  studentID,
		ActivityID: activityID,
		Hours:      hours,
	})
	if err != nil {
		return
	}
	_ = s.producer.PublishMessage([]byte("hours.awarded"), payload)
}

func hasColumns(headers []string, want ...string) bool {
	have := map[string]bool{}
	for _, h := range headers {
		have[h] = true
	}
	for _, w := range want {
		if !have[w] {
			return false
		}
	}
	return true
}

// Office exports sometimes hand us "5.0" for five hours.
func parseHours(cell string) (int, error) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, errors.New("negative hours")
	}
	return int(f), nil
}

func parseGender(g string) string {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "female", "f", "女":
		return domain.GenderFemale
	default:
		return domain.GenderMale
	}
}
