package services

import (
	"testing"
	"time"

	"sentinel-vault-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListRequests(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)

	reports := []models.VictimRequest{
		{RequestID: "REQ-101", Status: models.StatusCritical, Needs: "Rescue, Medical", PeopleCount: "6-10", Location: "23.2156,72.6369"},
		{RequestID: "REQ-102", Status: models.StatusUrgent, Needs: "Food, Water", PeopleCount: "20+", Location: "23.0350,72.5660"},
		{RequestID: "REQ-103", Status: models.StatusSafe, Needs: "Evacuated", PeopleCount: "4", Location: "23.0589,72.5310"},
	}
	for i := range reports {
		require.NoError(t, svc.CreateRequest(&reports[i]))
	}

	list, err := svc.ListRequests()
	require.NoError(t, err)
	require.Len(t, list, 3)

	// 信息流按接收顺序返回
	assert.Equal(t, "REQ-101", list[0].RequestID)
	assert.Equal(t, "REQ-102", list[1].RequestID)
	assert.Equal(t, "REQ-103", list[2].RequestID)

	// 无变更时两次查询结果一致
	again, err := svc.ListRequests()
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestCreateRequestGeneratesID(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)

	req := models.VictimRequest{Status: models.StatusUrgent, Needs: "Water", Location: "23.00,72.50"}
	require.NoError(t, svc.CreateRequest(&req))
	assert.Regexp(t, `^REQ-\d{5}$`, req.RequestID)
	assert.False(t, req.Timestamp.IsZero())
}

func TestCreateRequestRejectsDuplicateID(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)
	seedRequest(t, db, "REQ-101")

	req := models.VictimRequest{RequestID: "REQ-101", Status: models.StatusUrgent, Needs: "Water", Location: "23.00,72.50"}
	require.ErrorIs(t, svc.CreateRequest(&req), ErrRequestIDTaken)
}

func TestCreateRequestRejectsInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)

	req := models.VictimRequest{Status: "PANIC", Needs: "Water", Location: "23.00,72.50"}
	require.ErrorIs(t, svc.CreateRequest(&req), ErrInvalidStatus)
}

func TestUpdateRequestStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)
	seedRequest(t, db, "REQ-101")

	updated, err := svc.UpdateRequestStatus("REQ-101", "SAFE")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSafe, updated.Status)

	// 对外编号不随状态变化
	stored, err := svc.GetRequestByRequestID("REQ-101")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSafe, stored.Status)
	assert.Equal(t, "REQ-101", stored.RequestID)

	_, err = svc.UpdateRequestStatus("REQ-101", "PANIC")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateRequestStatus("REQ-999", "SAFE")
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestGetRequestByRequestID(t *testing.T) {
	db := newTestDB(t)
	svc := NewRequestService(db, newTestConfig(), nil)

	req := models.VictimRequest{
		RequestID: "REQ-104",
		Status:    models.StatusCritical,
		Needs:     "Medical",
		Location:  "23.0732,72.5240",
		Timestamp: time.Now().Add(-time.Hour),
	}
	require.NoError(t, svc.CreateRequest(&req))

	found, err := svc.GetRequestByRequestID("REQ-104")
	require.NoError(t, err)
	assert.Equal(t, "Medical", found.Needs)

	_, err = svc.GetRequestByRequestID("REQ-999")
	require.ErrorIs(t, err, ErrRequestNotFound)
}
