package services

import (
	"testing"
	"time"

	"sentinel-vault-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostAndListMessages(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newTestConfig(), nil)

	first, err := svc.PostMessage("police", models.RolePolice, "Need 2 boats near Sector 21 bridge.")
	require.NoError(t, err)
	assert.NotEmpty(t, first.MessageID)
	assert.Equal(t, models.RolePolice, first.Sender)

	second, err := svc.PostMessage("police", models.RoleAdmin, "Dispatching from central depot.")
	require.NoError(t, err)
	assert.NotEqual(t, first.MessageID, second.MessageID)

	messages, err := svc.ListMessages("police")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// 消息按时间顺序返回，发送者角色来自会话
	assert.Equal(t, first.MessageID, messages[0].MessageID)
	assert.Equal(t, second.MessageID, messages[1].MessageID)
	assert.Equal(t, models.RoleAdmin, messages[1].Sender)
}

func TestListMessagesScopedToChannel(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newTestConfig(), nil)

	_, err := svc.PostMessage("police", models.RolePolice, "Sector 21 status?")
	require.NoError(t, err)
	_, err = svc.PostMessage("health", models.RoleHealth, "Oxygen shortage at camp 3.")
	require.NoError(t, err)

	messages, err := svc.ListMessages("police")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "police", messages[0].Channel)

	// 空频道没有消息也不算错误
	empty, err := svc.ListMessages("logistics")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPostMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newTestConfig(), nil)

	_, err := svc.PostMessage("", models.RolePolice, "hello")
	require.ErrorIs(t, err, ErrEmptyChannel)

	_, err = svc.PostMessage("   ", models.RolePolice, "hello")
	require.ErrorIs(t, err, ErrEmptyChannel)

	_, err = svc.PostMessage("police", models.RolePolice, "")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.PostMessage("police", models.RolePolice, "   ")
	require.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.ListMessages("")
	require.ErrorIs(t, err, ErrEmptyChannel)
}

func TestMessagesAreAppendOnlyOrdered(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db, newTestConfig(), nil)

	// 同一时间戳的消息按写入顺序稳定排序
	base := time.Now()
	for i, text := range []string{"one", "two", "three"} {
		msg := models.ChatMessage{
			MessageID: svcMessageID(i),
			Channel:   "police",
			Sender:    models.RolePolice,
			Text:      text,
			Timestamp: base,
		}
		require.NoError(t, db.Create(&msg).Error)
	}

	messages, err := svc.ListMessages("police")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Text)
	assert.Equal(t, "two", messages[1].Text)
	assert.Equal(t, "three", messages[2].Text)
}

func svcMessageID(i int) string {
	return "00000000-0000-0000-0000-00000000000" + string(rune('1'+i))
}
