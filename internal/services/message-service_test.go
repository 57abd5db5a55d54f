package services

import (
	"testing"

	"github.com/dedewo882/volunteer-platform-final/internal/domain"
	"github.com/dedewo882/volunteer-platform-final/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageFixture() (MessageService, *fakeMessageRepo, *fakeUserRepo) {
	msgRepo := &fakeMessageRepo{}
	userRepo := newFakeUserRepo()
	return NewMessageService(msgRepo, userRepo), msgRepo, userRepo
}

func TestPostMessageDefaultsToBlue(t *testing.T) {
	svc, _, userRepo := newMessageFixture()
	user, _ := userRepo.CreateUser(&domain.User{StudentID: "20230001", Name: "张三"})

	msg, err := svc.Post(user.ID, dto.PostMessageRequest{Body: "  加油！  "})
	require.NoError(t, err)
	assert.Equal(t, "加油！", msg.Body)
	assert.Equal(t, "blue", msg.Color)
	assert.Equal(t, "张三", msg.Author)
}

func TestPostMessageRejectsOffPaletteColor(t *testing.T) {
	svc, _, userRepo := newMessageFixture()
	user, _ := userRepo.CreateUser(&domain.User{StudentID: "20230001", Name: "张三"})

	_, err := svc.Post(user.ID, dto.PostMessageRequest{Body: "hi", Color: "magenta"})
	assert.EqualError(t, err, "invalid message color")
}

func TestPostMessageEmptyBody(t *testing.T) {
	svc, _, userRepo := newMessageFixture()
	user, _ := userRepo.CreateUser(&domain.User{StudentID: "20230001", Name: "张三"})

	_, err := svc.Post(user.ID, dto.PostMessageRequest{Body: "   "})
	assert.EqualError(t, err, "message body is required")
}

func TestListWallHidesAnonymousAuthor(t *testing.T) {
	svc, msgRepo, userRepo := newMessageFixture()
	user, _ := userRepo.CreateUser(&domain.User{StudentID: "20230001", Name: "张三"})

	_ = msgRepo.CreateMessage(&domain.Message{
		UserID: user.ID, Body: "signed", Color: "green", Visible: true, User: user,
	})
	_ = msgRepo.CreateMessage(&domain.Message{
		UserID: user.ID, Body: "secret", Color: "pink", Visible: true, Anonymous: true, User: user,
	})
	_ = msgRepo.CreateMessage(&domain.Message{
		UserID: user.ID, Body: "hidden", Color: "red", Visible: false, User: user,
	})

	msgs, err := svc.ListWall()
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// Newest first; the invisible one never shows up.
	assert.Equal(t, "secret", msgs[0].Body)
	assert.Empty(t, msgs[0].Author)
	assert.True(t, msgs[0].Anonymous)
	assert.Equal(t, "signed", msgs[1].Body)
	assert.Equal(t, "张三", msgs[1].Author)
}
