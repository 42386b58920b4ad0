package postgresql_test

import (
	"context"
	"testing"

	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreate(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	created, err := repo.Create(ctx, employee.Employee{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Department: "Engineering",
		Status:     employee.StatusActive,
		Salary:     decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.True(t, got.Salary.Equal(decimal.NewFromInt(5000)))
}

func TestEmployeeCreate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	base := employee.Employee{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "dup@example.com",
		Department: "Engineering",
		Status:     employee.StatusActive,
	}

	_, err := repo.Create(ctx, base)
	require.NoError(t, err)

	_, err = repo.Create(ctx, base)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	_, err := repo.GetByID(ctx, "0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeUpdate(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	created, err := repo.Create(ctx, employee.Employee{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@example.com",
		Department: "Engineering",
		Status:     employee.StatusActive,
	})
	require.NoError(t, err)

	created.Department = "Research"
	created.Status = employee.StatusOnLeave

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Research", updated.Department)
	assert.Equal(t, employee.StatusOnLeave, updated.Status)
}

func TestEmployeeDelete(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	created, err := repo.Create(ctx, employee.Employee{
		FirstName:  "Alan",
		LastName:   "Turing",
		Email:      "alan@example.com",
		Department: "Engineering",
		Status:     employee.StatusActive,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), employee.ErrEmployeeNotFound)
}
