package services

import (
	"errors"
	"strings"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/dedewo882/volunteer-platform-final/internal/repository"
)

const messageWallLimit = 100

type MessageService interface {
	ListWall() ([]dto.MessageResponse, error)
	Post(userID uint, input dto.PostMessageRequest) (*dto.MessageResponse, error)
}

type messageService struct {
	repo     repository.MessageRepository
	userRepo repository.UserRepository
}

func NewMessageService(repo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{repo: repo, userRepo: userRepo}
}

func (s *messageService) ListWall() ([]dto.MessageResponse, error) {
	msgs, err := s.repo.ListVisible(messageWallLimit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		item := dto.MessageResponse{
			ID:        m.ID,
			Body:      m.Body,
			Color:     m.Color,
			Anonymous: m.Anonymous,
			CreatedAt: m.CreatedAt,
		}
		if !m.Anonymous && m.User != nil {
			item.Author = m.User.Name
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *messageService) Post(userID uint, input dto.PostMessageRequest) (*dto.MessageResponse, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, errors.New("message body is required")
	}

	color := input.Color
	if color == "" {
		color = "blue"
	}
	if !domain.ValidMessageColor(color) {
		return nil, errors.New("invalid message color")
	}

	user, err := s.userRepo.FindUserByID(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	msg := &domain.Message{
		UserID:    user.ID,
		Body:      body,
		Color:     color,
		Visible:   true,
		Anonymous: input.Anonymous,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}

	resp := &dto.MessageResponse{
		ID:        msg.ID,
		Body:      msg.Body,
		Color:     msg.Color,
		Anonymous: msg.Anonymous,
		CreatedAt: msg.CreatedAt,
	}
	if !msg.Anonymous {
		resp.Author = user.Name
	}
	return resp, nil
}
