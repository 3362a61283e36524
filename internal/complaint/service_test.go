// Copyright (c) 2026 Commdominium. All rights reserved.

package complaint_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commdominium/commdominium/internal/complaint"
	"github.com/commdominium/commdominium/internal/platform/dberr"
	"github.com/commdominium/commdominium/internal/platform/sec"
)

type fakeRepository struct {
	complaints []*complaint.Complaint
}

func (f *fakeRepository) Create(_ context.Context, filed *complaint.Complaint) error {
	filed.ID = len(f.complaints) + 1
	f.complaints = append(f.complaints, filed)
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id int) (*complaint.Complaint, error) {
	for _, filed := range f.complaints {
		if filed.ID == id {
			return filed, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindAll(_ context.Context) ([]*complaint.Complaint, error) {
	return f.complaints, nil
}

func (f *fakeRepository) FindAllByCondominium(_ context.Context, condominiumID int) ([]*complaint.Complaint, error) {
	var scoped []*complaint.Complaint
	for _, filed := range f.complaints {
		if filed.IDCondominium == condominiumID {
			scoped = append(scoped, filed)
		}
	}
	return scoped, nil
}

func (f *fakeRepository) FindAllByUser(_ context.Context, userID int) ([]*complaint.Complaint, error) {
	var own []*complaint.Complaint
	for _, filed := range f.complaints {
		if filed.IDUser == userID {
			own = append(own, filed)
		}
	}
	return own, nil
}

func (f *fakeRepository) Update(_ context.Context, _ *complaint.Complaint) error { return nil }

func (f *fakeRepository) SetResolved(_ context.Context, id int, resolved bool) error {
	for _, filed := range f.complaints {
		if filed.ID == id {
			filed.Resolved = resolved
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (f *fakeRepository) Delete(_ context.Context, _ int) error { return nil }

func filedComplaints() *fakeRepository {
	return &fakeRepository{complaints: []*complaint.Complaint{
		{ID: 1, Message: "Barulho após as 22h", IDUser: 10, IDCondominium: 1},
		{ID: 2, Message: "Vazamento no bloco B", IDUser: 11, IDCondominium: 1},
		{ID: 3, Message: "Portão quebrado", IDUser: 20, IDCondominium: 2},
	}}
}

func newTestService(repo complaint.Repository) *complaint.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return complaint.NewService(repo, logger)
}

/*
TestService_List_ResidentSeesOwnOnly verifies a resident's listing is
narrowed to their own complaints, not the whole condominium's.
*/
func TestService_List_ResidentSeesOwnOnly(t *testing.T) {
	service := newTestService(filedComplaints())

	identity := &sec.Identity{UserID: 10, CondominiumID: 1, Role: sec.RoleResident}
	complaints, err := service.List(context.Background(), identity)
	require.NoError(t, err)
	require.Len(t, complaints, 1)
	assert.Equal(t, 10, complaints[0].IDUser)
}

/*
TestService_List_StaffSeesCondominium verifies assignees and assigned
admins get the whole condominium's complaints.
*/
func TestService_List_StaffSeesCondominium(t *testing.T) {
	service := newTestService(filedComplaints())

	for _, role := range []sec.Role{sec.RoleAssignee, sec.RoleAdmin} {
		identity := &sec.Identity{UserID: 30, CondominiumID: 1, Role: role}
		complaints, err := service.List(context.Background(), identity)
		require.NoError(t, err)
		assert.Len(t, complaints, 2, "role %s", role)
	}
}

/*
TestService_List_AdminWithoutCondominium verifies an unassigned admin sees
every condominium's complaints.
*/
func TestService_List_AdminWithoutCondominium(t *testing.T) {
	service := newTestService(filedComplaints())

	complaints, err := service.List(context.Background(), &sec.Identity{UserID: 1, Role: sec.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, complaints, 3)
}

/*
TestService_ToggleResolved verifies the flag flips and the new state is
returned.
*/
func TestService_ToggleResolved(t *testing.T) {
	service := newTestService(filedComplaints())

	resolved, err := service.ToggleResolved(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resolved)

	resolved, err = service.ToggleResolved(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resolved)
}
