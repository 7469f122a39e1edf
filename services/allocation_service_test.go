package services

import (
	"testing"

	"sentinel-vault-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAllocationFixture(t *testing.T) (InterfaceAllocationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()
	seedInventory(t, db)
	seedRequest(t, db, "REQ-101")
	return NewAllocationService(db, cfg), db
}

func TestAllocateCommit(t *testing.T) {
	svc, db := newAllocationFixture(t)

	batchID, err := svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Boats", Quantity: 2},
		{Name: "Food Kits", Quantity: 40},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)

	// 库存按行扣减
	assert.Equal(t, 3, itemQuantity(t, db, "Boats"))
	assert.Equal(t, 260, itemQuantity(t, db, "Food Kits"))

	// 每行落一条分配记录，共享同一批次号
	var records []models.AllocationRecord
	require.NoError(t, db.Where("batch_id = ?", batchID).Find(&records).Error)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "REQ-101", r.RequestID)
	}
}

func TestAllocateInsufficientStockRollsBack(t *testing.T) {
	svc, db := newAllocationFixture(t)

	// Food Kits 这一行可以扣减，Boats 超量，整组必须回滚
	_, err := svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Food Kits", Quantity: 40},
		{Name: "Boats", Quantity: 6},
	})
	require.ErrorIs(t, err, ErrStockConflict)

	assert.Equal(t, 5, itemQuantity(t, db, "Boats"))
	assert.Equal(t, 300, itemQuantity(t, db, "Food Kits"))

	var count int64
	require.NoError(t, db.Model(&models.AllocationRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAllocateUnknownItem(t *testing.T) {
	svc, db := newAllocationFixture(t)

	_, err := svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Helicopters", Quantity: 1},
	})
	require.ErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, 5, itemQuantity(t, db, "Boats"))
}

func TestAllocateUnknownRequest(t *testing.T) {
	svc, _ := newAllocationFixture(t)

	_, err := svc.Allocate("REQ-999", []AllocationLine{
		{Name: "Boats", Quantity: 1},
	})
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestAllocateNegativeQuantity(t *testing.T) {
	svc, db := newAllocationFixture(t)

	_, err := svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Boats", Quantity: -1},
	})
	require.ErrorIs(t, err, ErrQuantityInvalid)
	assert.Equal(t, 5, itemQuantity(t, db, "Boats"))
}

func TestAllocateEmptySetIsNoOp(t *testing.T) {
	svc, db := newAllocationFixture(t)

	// 空集与全零行都是合法的空操作提交
	for _, lines := range [][]AllocationLine{
		nil,
		{{Name: "Boats", Quantity: 0}, {Name: "Food Kits", Quantity: 0}},
	} {
		batchID, err := svc.Allocate("REQ-101", lines)
		require.NoError(t, err)
		assert.NotEmpty(t, batchID)
	}

	assert.Equal(t, 5, itemQuantity(t, db, "Boats"))
	var count int64
	require.NoError(t, db.Model(&models.AllocationRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAllocateMergesDuplicateLines(t *testing.T) {
	svc, db := newAllocationFixture(t)

	// 同名行在提交前合并，5件库存允许 3+2
	_, err := svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Boats", Quantity: 3},
		{Name: "Boats", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, itemQuantity(t, db, "Boats"))

	// 合并后超出库存则整组失败
	_, err = svc.Allocate("REQ-101", []AllocationLine{
		{Name: "Food Kits", Quantity: 200},
		{Name: "Food Kits", Quantity: 200},
	})
	require.ErrorIs(t, err, ErrStockConflict)
	assert.Equal(t, 300, itemQuantity(t, db, "Food Kits"))
}

func TestAllocateSequentialCommitsRespectStock(t *testing.T) {
	svc, db := newAllocationFixture(t)

	// 两次提交各要3艘船，第二次在第一次扣减后的台账上校验
	_, err := svc.Allocate("REQ-101", []AllocationLine{{Name: "Boats", Quantity: 3}})
	require.NoError(t, err)

	_, err = svc.Allocate("REQ-101", []AllocationLine{{Name: "Boats", Quantity: 3}})
	require.ErrorIs(t, err, ErrStockConflict)
	assert.Equal(t, 2, itemQuantity(t, db, "Boats"))
}

func TestAllocationDraftClamp(t *testing.T) {
	stock := []models.InventoryItem{
		{Name: "Boats", Quantity: 5},
		{Name: "Food Kits", Quantity: 300},
	}
	draft := NewAllocationDraft("REQ-101", stock)

	// 超出快照库存的输入被夹到上限
	assert.Equal(t, 5, draft.SetQuantity("Boats", 10))
	assert.Equal(t, 5, draft.Quantity("Boats"))

	// 负数归零
	assert.Equal(t, 0, draft.SetQuantity("Boats", -3))
	assert.Equal(t, 0, draft.Quantity("Boats"))

	// 未知物资不接受
	assert.Equal(t, 0, draft.SetQuantity("Helicopters", 2))

	// Lines 剔除零数量行
	draft.SetQuantity("Food Kits", 40)
	lines := draft.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, AllocationLine{Name: "Food Kits", Quantity: 40}, lines[0])
}

func TestListAllocationsPaged(t *testing.T) {
	svc, _ := newAllocationFixture(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Allocate("REQ-101", []AllocationLine{{Name: "Flashlights", Quantity: 1}})
		require.NoError(t, err)
	}

	records, total, err := svc.ListAllocations(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, records, 2)
	// 最新的在前
	assert.Greater(t, records[0].ID, records[1].ID)

	records, _, err = svc.ListAllocations(2, 2)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
