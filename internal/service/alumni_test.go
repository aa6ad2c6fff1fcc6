package service_test

import (
	"context"
	"testing"

	"alumni_portal/internal/domain"
	"alumni_portal/internal/service"
	"alumni_portal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerInput() service.RegisterInput {
	return service.RegisterInput{
		Name: "Asha", Department: "CS", GraduationYear: 2020, CurrentRole: "Engineer",
		Company: "Infosys", Location: "Pune", Industry: "IT", Email: "asha@example.com",
		LinkedInURL: "https://linkedin.com/in/asha", Password: "hunter22", RePassword: "hunter22",
	}
}

func TestRegister(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.NewAlumniService(db)

	a, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.NotEqual(t, "hunter22", a.PasswordHash)

	var stored domain.Alumni
	require.NoError(t, db.First(&stored, a.ID).Error)
	assert.Equal(t, "Infosys", stored.Company)
	assert.False(t, stored.IsFeatured)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter23")))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	db := testutil.NewDB(t)
	svc := service.NewAlumniService(db)

	in := registerInput()
	in.RePassword = "something-else"
	_, err := svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)

	var count int64
	require.NoError(t, db.Model(&domain.Alumni{}).Count(&count).Error)
	assert.Zero(t, count)
}
