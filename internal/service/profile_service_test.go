package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vibe-notes-be/internal/dto"
	"vibe-notes-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetAndUpdate(t *testing.T) {
	db := newFakeDB()
	caller := &entity.Caller{Id: uuid.New(), Email: "ada@example.com"}
	db.profiles[caller.Id] = &entity.Profile{Id: caller.Id, FullName: entity.NullableText("Ada"), CreatedAt: time.Now()}
	svc := NewProfileService(db, &fakeIdentity{caller: caller}, "/login", nopLogger())

	profile, res := svc.Get(context.Background(), testToken)
	require.Equal(t, dto.ResultOk, res.Status)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Ada", *profile.FullName)

	res = svc.Update(context.Background(), testToken, &dto.UpdateProfileRequest{AvatarURL: "https://cdn.example.com/a.png"})
	require.Equal(t, dto.ResultOk, res.Status)
	assert.Nil(t, db.profiles[caller.Id].FullName)
	assert.Equal(t, "https://cdn.example.com/a.png", *db.profiles[caller.Id].AvatarURL)
}

func TestProfileService_MissingProfileIsEmpty(t *testing.T) {
	caller := &entity.Caller{Id: uuid.New(), Email: "ada@example.com"}
	svc := NewProfileService(newFakeDB(), &fakeIdentity{caller: caller}, "/login", nopLogger())

	profile, res := svc.Get(context.Background(), testToken)

	require.Equal(t, dto.ResultOk, res.Status)
	assert.Equal(t, caller.Id, profile.Id)
	assert.Nil(t, profile.FullName)

	res = svc.Update(context.Background(), testToken, &dto.UpdateProfileRequest{FullName: "Ada"})
	assert.Equal(t, dto.ResultOk, res.Status)
}

func TestProfileService_AuthAndStorageOutcomes(t *testing.T) {
	db := newFakeDB()
	ident := &fakeIdentity{caller: &entity.Caller{Id: uuid.New()}}
	svc := NewProfileService(db, ident, "/login", nopLogger())

	_, res := svc.Get(context.Background(), "")
	assert.Equal(t, dto.ResultUnauthenticated, res.Status)
	assert.Equal(t, "/login", res.RedirectTo)

	db.profileErr = errStorage
	res = svc.Update(context.Background(), testToken, &dto.UpdateProfileRequest{FullName: "Ada"})
	assert.Equal(t, dto.ResultFailed, res.Status)

	ident.err = errors.New("token store unavailable")
	res = svc.Update(context.Background(), testToken, &dto.UpdateProfileRequest{FullName: "Ada"})
	assert.Equal(t, dto.ResultAuthError, res.Status)
}
