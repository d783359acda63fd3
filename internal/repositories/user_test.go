package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/dimerryy/careplatform/backend/internal/models"
	"github.com/dimerryy/careplatform/backend/internal/utils"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	created, err := repo.Create(context.Background(), &CreateUserRequest{
		Email:       "askar@example.com",
		GivenName:   "Askar",
		Surname:     "Beken",
		City:        "Almaty",
		PhoneNumber: "+77010000001",
		Password:    "secret123",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID == 0 {
		t.Error("expected a generated user id")
	}
	if created.Password == "secret123" {
		t.Error("password should be stored hashed")
	}
	if !utils.CheckPassword("secret123", created.Password) {
		t.Error("stored hash should verify against the original password")
	}

	got, err := repo.Get(context.Background(), created.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "askar@example.com" || got.GivenName != "Askar" {
		t.Errorf("unexpected user %+v", got)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	db := openTestDB(t)

	_, err := NewUserRepository(db).Get(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	req := CreateUserRequest{
		Email:     "dup@example.com",
		GivenName: "A",
		Surname:   "B",
		Password:  "secret123",
	}
	if _, err := repo.Create(context.Background(), &req); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(context.Background(), &req)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestUserRepository_UpdatePhoneNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "Arman", "Armanov")

	updated, err := repo.Update(context.Background(), user.UserID, &UpdateUserRequest{
		Email:       user.Email,
		GivenName:   user.GivenName,
		Surname:     user.Surname,
		City:        user.City,
		PhoneNumber: "+77773414141",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PhoneNumber != "+77773414141" {
		t.Errorf("phone number = %q, want +77773414141", updated.PhoneNumber)
	}
	// Empty password in the request keeps the stored hash.
	if updated.Password != user.Password {
		t.Error("update without password should keep the existing hash")
	}
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	db := openTestDB(t)

	_, err := NewUserRepository(db).Update(context.Background(), 404, &UpdateUserRequest{
		Email:     "x@example.com",
		GivenName: "X",
		Surname:   "Y",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	db := openTestDB(t)

	seedUser(t, db, "Botagoz", "Saparova")
	seedUser(t, db, "Aruzhan", "Kenes")

	users, err := NewUserRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].UserID > users[1].UserID {
		t.Error("users should be ordered by id")
	}
}

func TestUserRepository_DeleteCascadesBothRoles(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	// One user acting as caregiver, one as member, fully wired up.
	cgUser := seedUser(t, db, "Dana", "Omarova")
	mUser := seedUser(t, db, "Serik", "Aldiyar")
	seedCaregiver(t, db, cgUser.UserID, "elderly care", 12)
	seedMember(t, db, mUser.UserID, "No smoking")
	seedAddress(t, db, mUser.UserID, "Abay Avenue")
	job := seedJob(t, db, mUser.UserID, "elderly care")
	seedApplication(t, db, cgUser.UserID, job.JobID)
	seedAppointment(t, db, cgUser.UserID, mUser.UserID, 3, models.StatusConfirmed)

	if err := repo.Delete(context.Background(), mUser.UserID); err != nil {
		t.Fatalf("delete member user: %v", err)
	}

	if n := countRows(t, db, &models.Member{}); n != 0 {
		t.Errorf("members remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.Address{}); n != 0 {
		t.Errorf("addresses remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.Job{}); n != 0 {
		t.Errorf("jobs remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.JobApplication{}); n != 0 {
		t.Errorf("applications remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.Appointment{}); n != 0 {
		t.Errorf("appointments remaining = %d, want 0", n)
	}

	// The caregiver side is untouched.
	if n := countRows(t, db, &models.Caregiver{}); n != 1 {
		t.Errorf("caregivers remaining = %d, want 1", n)
	}

	if err := repo.Delete(context.Background(), cgUser.UserID); err != nil {
		t.Fatalf("delete caregiver user: %v", err)
	}
	if n := countRows(t, db, &models.Caregiver{}); n != 0 {
		t.Errorf("caregivers remaining = %d, want 0", n)
	}
	if n := countRows(t, db, &models.User{}); n != 0 {
		t.Errorf("users remaining = %d, want 0", n)
	}
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	db := openTestDB(t)

	err := NewUserRepository(db).Delete(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
