// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/mock"
	"github.com/Tristano1/friend-library-system/internal/store"
	"github.com/Tristano1/friend-library-system/internal/validators"
	"github.com/Tristano1/friend-library-system/models"
)

func newTestCatalogSvc(t *testing.T, ctrl *gomock.Controller) (CatalogService, *mock.MockItemRepository) {
	t.Helper()
	repo := mock.NewMockItemRepository(ctrl)
	return NewCatalogService(repo, validators.NewLibraryValidator(), logger.Nop()), repo
}

func intPtr(v int) *int { return &v }

var catalogOwner = models.User{UserID: 1, GUID: "owner-guid", DefaultLoanLengthDays: 21}

func TestCatalogService_AddItem_NoOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCatalogSvc(t, ctrl)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			assert.Equal(t, "Drill", item.Name)
			assert.Equal(t, int64(1), item.OwnerID)
			assert.Nil(t, item.LoanLengthDays)
			assert.NotEmpty(t, item.GUID)
			item.ItemID = 10
			item.EffectiveLoanLengthDays = 21
			return item, nil
		})

	item, err := svc.AddItem(context.Background(), &catalogOwner, models.NewItem{Name: "Drill"})
	require.NoError(t, err)
	assert.Equal(t, 21, item.EffectiveLoanLengthDays)
}

func TestCatalogService_AddItem_Override(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCatalogSvc(t, ctrl)

	repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.Item) (models.Item, error) {
			require.NotNil(t, item.LoanLengthDays)
			assert.Equal(t, 7, *item.LoanLengthDays)
			item.EffectiveLoanLengthDays = *item.LoanLengthDays
			return item, nil
		})

	override := intPtr(7)
	item, err := svc.AddItem(context.Background(), &catalogOwner, models.NewItem{Name: "Ladder", LoanLengthDays: override})
	require.NoError(t, err)
	assert.Equal(t, 7, item.EffectiveLoanLengthDays)

	// the caller's pointer is not shared with the stored item
	*override = 99
	assert.Equal(t, 7, *item.LoanLengthDays)
}

func TestCatalogService_AddItem_Errors(t *testing.T) {
	tests := []struct {
		name    string
		owner   *models.User
		item    models.NewItem
		setup   func(repo *mock.MockItemRepository)
		wantErr error
	}{
		{name: "nil owner", owner: nil, item: models.NewItem{Name: "Drill"}, wantErr: ErrUnauthenticated},
		{name: "owner without id", owner: &models.User{GUID: "g"}, item: models.NewItem{Name: "Drill"}, wantErr: ErrUnauthenticated},
		{name: "empty name", owner: &catalogOwner, item: models.NewItem{Name: ""}, wantErr: ErrValidation},
		{name: "blank name", owner: &catalogOwner, item: models.NewItem{Name: "   "}, wantErr: ErrValidation},
		{name: "zero override", owner: &catalogOwner, item: models.NewItem{Name: "Drill", LoanLengthDays: intPtr(0)}, wantErr: ErrValidation},
		{name: "negative override", owner: &catalogOwner, item: models.NewItem{Name: "Drill", LoanLengthDays: intPtr(-1)}, wantErr: ErrValidation},
		{
			name:  "owner vanished",
			owner: &models.User{UserID: 404, GUID: "ghost"},
			item:  models.NewItem{Name: "Drill"},
			setup: func(repo *mock.MockItemRepository) {
				repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(models.Item{}, store.ErrOwnerNotFound)
			},
			wantErr: ErrReferentialIntegrity,
		},
		{
			name:  "store failure",
			owner: &catalogOwner,
			item:  models.NewItem{Name: "Drill"},
			setup: func(repo *mock.MockItemRepository) {
				repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(models.Item{}, store.ErrExecutingStatement)
			},
			wantErr: store.ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestCatalogSvc(t, ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			_, err := svc.AddItem(context.Background(), tt.owner, tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCatalogSvc(t, ctrl)
	now := time.Now()

	want := []models.Item{
		{ItemID: 1, Name: "Drill", EffectiveLoanLengthDays: 21, CreatedAt: now},
		{ItemID: 2, Name: "Ladder", LoanLengthDays: intPtr(5), EffectiveLoanLengthDays: 5, CreatedAt: now},
	}
	repo.EXPECT().ListItemsByOwner(gomock.Any(), int64(1)).Return(want, nil)

	got, err := svc.ListItems(context.Background(), &catalogOwner)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListItems(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCatalogService_ListItems_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestCatalogSvc(t, ctrl)

	repo.EXPECT().ListItemsByOwner(gomock.Any(), int64(1)).Return(nil, store.ErrScanningRows)

	_, err := svc.ListItems(context.Background(), &catalogOwner)
	assert.ErrorIs(t, err, store.ErrScanningRows)
}
