package user

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminID = "11111111-1111-1111-1111-111111111111"
	aliceID = "22222222-2222-2222-2222-222222222222"
	newID   = "33333333-3333-3333-3333-333333333333"
)

type memUserRepo struct {
	users     map[string]user.User
	updateErr error
}

func newMemUserRepo(users ...user.User) *memUserRepo {
	r := &memUserRepo{users: map[string]user.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	u.ID = newID
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *memUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := []user.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	out := []user.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	if r.updateErr != nil {
		return user.User{}, r.updateErr
	}
	if _, ok := r.users[u.ID]; !ok {
		return user.User{}, user.ErrUserNotFound
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeFileService struct {
	file.FileService
	uploadErr error
	deleteErr error
	deleted   []string
}

func (f *fakeFileService) UploadProfilePicture(ctx context.Context, userID string, src io.Reader, filename string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "profile_pics/" + userID + "/pic.jpg", nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, path string) error {
	f.deleted = append(f.deleted, path)
	return f.deleteErr
}

type nopFile struct {
	*bytes.Reader
}

func (nopFile) Close() error { return nil }

var _ multipart.File = nopFile{}

func validCreate() user.CreateUserRequest {
	return user.CreateUserRequest{
		Username:      "bob",
		Email:         "bob@example.com",
		Password:      "password123",
		FirstName:     "Bob",
		LastName:      "Builder",
		Role:          "employee",
		Department:    "Engineering",
		DateOfJoining: "2024-03-01",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and normalises role", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := NewUserService(repo, &fakeFileService{})

		created, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, user.RoleEmployee, created.Role)
		require.NotNil(t, created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*created.PasswordHash), []byte("password123")))
		require.NotNil(t, created.DateOfJoining)
		assert.Equal(t, "2024-03-01", created.DateOfJoining.Format("2006-01-02"))
		assert.Nil(t, created.Phone)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := newMemUserRepo(user.User{ID: aliceID, Username: "bob"})
		svc := NewUserService(repo, &fakeFileService{})

		_, err := svc.Create(ctx, validCreate())
		assert.ErrorIs(t, err, user.ErrUsernameExists)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewUserService(newMemUserRepo(), &fakeFileService{})
		req := validCreate()
		req.Password = "short"
		req.Role = "CEO"

		_, err := svc.Create(ctx, req)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "password")
		assert.Contains(t, verrs.ToMap(), "role")
	})

	t.Run("with profile picture", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := NewUserService(repo, &fakeFileService{})
		req := validCreate()
		req.ProfilePicture = nopFile{bytes.NewReader([]byte("img"))}
		req.ProfilePictureHeader = &multipart.FileHeader{Filename: "me.png"}

		created, err := svc.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, created.ProfilePicture)
		assert.Equal(t, "profile_pics/"+newID+"/pic.jpg", *created.ProfilePicture)
	})

	t.Run("rejected picture removes the new account", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := NewUserService(repo, &fakeFileService{uploadErr: file.ErrInvalidFileType})
		req := validCreate()
		req.ProfilePicture = nopFile{bytes.NewReader([]byte("exe"))}
		req.ProfilePictureHeader = &multipart.FileHeader{Filename: "virus.exe"}

		_, err := svc.Create(ctx, req)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "profile_picture")
		assert.Empty(t, repo.users)
	})
}

func TestUpdate_KeepsPasswordWhenEmpty(t *testing.T) {
	hash := "existing-hash"
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", PasswordHash: &hash, Role: user.RoleEmployee})
	svc := NewUserService(repo, &fakeFileService{})

	req := user.UpdateUserRequest{ID: aliceID, CreateUserRequest: user.CreateUserRequest{
		Username: "alice",
		Role:     "HR",
	}}
	updated, err := svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, user.RoleHR, updated.Role)
	assert.Equal(t, "existing-hash", *updated.PasswordHash)
}

func TestUpdate_SuperuserFlag(t *testing.T) {
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", Role: user.RoleEmployee})
	svc := NewUserService(repo, &fakeFileService{})
	ctx := context.Background()

	req := user.UpdateUserRequest{ID: aliceID, IsSuperuser: true, CreateUserRequest: user.CreateUserRequest{
		Username: "alice",
		Role:     "EMPLOYEE",
	}}
	updated, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.True(t, updated.IsSuperuser)
	assert.True(t, user.IsAdmin(updated))

	req.IsSuperuser = false
	updated, err = svc.Update(ctx, req)
	require.NoError(t, err)
	assert.False(t, updated.IsSuperuser)
	assert.False(t, repo.users[aliceID].IsSuperuser)
}

func TestUpdate_FailedSaveDiscardsNewPicture(t *testing.T) {
	old := "profile_pics/" + aliceID + "/old.jpg"
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", ProfilePicture: &old, Role: user.RoleEmployee})
	repo.updateErr = errors.New("connection reset")
	files := &fakeFileService{}
	svc := NewUserService(repo, files)

	_, err := svc.Update(context.Background(), user.UpdateUserRequest{ID: aliceID, CreateUserRequest: user.CreateUserRequest{
		Username:             "alice",
		Role:                 "EMPLOYEE",
		ProfilePicture:       nopFile{bytes.NewReader([]byte("img"))},
		ProfilePictureHeader: &multipart.FileHeader{Filename: "new.png"},
	}})
	require.Error(t, err)
	assert.Equal(t, []string{"profile_pics/" + aliceID + "/pic.jpg"}, files.deleted)
	assert.Equal(t, old, *repo.users[aliceID].ProfilePicture)
}

func TestUpdate_FailedSaveWithoutUploadDeletesNothing(t *testing.T) {
	old := "profile_pics/" + aliceID + "/old.jpg"
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", ProfilePicture: &old, Role: user.RoleEmployee})
	repo.updateErr = errors.New("connection reset")
	files := &fakeFileService{}
	svc := NewUserService(repo, files)

	_, err := svc.Update(context.Background(), user.UpdateUserRequest{ID: aliceID, CreateUserRequest: user.CreateUserRequest{
		Username: "alice",
		Role:     "EMPLOYEE",
	}})
	require.Error(t, err)
	assert.Empty(t, files.deleted)
}

func TestUpdate_UsernameTaken(t *testing.T) {
	repo := newMemUserRepo(
		user.User{ID: aliceID, Username: "alice"},
		user.User{ID: adminID, Username: "admin"},
	)
	svc := NewUserService(repo, &fakeFileService{})

	req := user.UpdateUserRequest{ID: aliceID, CreateUserRequest: user.CreateUserRequest{Username: "admin", Role: "EMPLOYEE"}}
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), &fakeFileService{})

	req := user.UpdateUserRequest{ID: "not-a-uuid", CreateUserRequest: validCreate()}
	_, err := svc.Update(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	admin := user.User{ID: adminID, Username: "admin", Role: user.RoleAdmin}

	t.Run("cannot delete self", func(t *testing.T) {
		repo := newMemUserRepo(admin)
		svc := NewUserService(repo, &fakeFileService{})

		_, err := svc.Delete(ctx, admin, adminID)
		assert.ErrorIs(t, err, user.ErrCannotDeleteSelf)
		assert.Len(t, repo.users, 1)
	})

	t.Run("removes picture best effort", func(t *testing.T) {
		pic := "profile_pics/alice/pic.jpg"
		repo := newMemUserRepo(admin, user.User{ID: aliceID, Username: "alice", ProfilePicture: &pic})
		files := &fakeFileService{deleteErr: errors.New("disk gone")}
		svc := NewUserService(repo, files)

		deleted, err := svc.Delete(ctx, admin, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "alice", deleted.Username)
		assert.NotContains(t, repo.users, aliceID)
		assert.Equal(t, []string{pic}, files.deleted)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewUserService(newMemUserRepo(admin), &fakeFileService{})
		_, err := svc.Delete(ctx, admin, newID)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUpdateProfile_ReplacesPicture(t *testing.T) {
	old := "profile_pics/" + aliceID + "/old.jpg"
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", ProfilePicture: &old, Role: user.RoleEmployee})
	files := &fakeFileService{}
	svc := NewUserService(repo, files)

	updated, err := svc.UpdateProfile(context.Background(), user.User{ID: aliceID}, user.UpdateProfileRequest{
		FirstName:            "Alice",
		Email:                "alice@example.com",
		Phone:                "+628123456789",
		ProfilePicture:       nopFile{bytes.NewReader([]byte("img"))},
		ProfilePictureHeader: &multipart.FileHeader{Filename: "new.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, user.RoleEmployee, updated.Role)
	assert.Equal(t, "profile_pics/"+aliceID+"/pic.jpg", *updated.ProfilePicture)
	assert.Equal(t, []string{old}, files.deleted)
}

func TestUpdateProfile_FailedSaveDiscardsNewPicture(t *testing.T) {
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice", Role: user.RoleEmployee})
	repo.updateErr = errors.New("connection reset")
	files := &fakeFileService{}
	svc := NewUserService(repo, files)

	_, err := svc.UpdateProfile(context.Background(), user.User{ID: aliceID}, user.UpdateProfileRequest{
		Email:                "alice@example.com",
		ProfilePicture:       nopFile{bytes.NewReader([]byte("img"))},
		ProfilePictureHeader: &multipart.FileHeader{Filename: "new.jpg"},
	})
	require.Error(t, err)
	assert.Equal(t, []string{"profile_pics/" + aliceID + "/pic.jpg"}, files.deleted)
}

func TestUpdateProfile_EmailRequired(t *testing.T) {
	repo := newMemUserRepo(user.User{ID: aliceID, Username: "alice"})
	svc := NewUserService(repo, &fakeFileService{})

	_, err := svc.UpdateProfile(context.Background(), user.User{ID: aliceID}, user.UpdateProfileRequest{FirstName: "A"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email is required", verrs.ToMap()["email"])
}
