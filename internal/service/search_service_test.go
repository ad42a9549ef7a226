package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/domain"
)

type searchFixture struct {
	svc   *SearchService
	users *fakeUserRepo
	staff *fakeStaffRepo
	facts FactRepositories
}

func newSearchFixture() *searchFixture {
	users := newFakeUserRepo()
	staff := newFakeStaffRepo()
	facts := newFakeFacts()
	return &searchFixture{
		svc:   NewSearchService(users, staff, facts),
		users: users,
		staff: staff,
		facts: facts,
	}
}

func (f *searchFixture) addStaff(t *testing.T, email, name, department string) *domain.User {
	t.Helper()
	slug := name
	user := &domain.User{Email: email, Role: domain.RoleStaff, Active: true, Slug: &slug}
	f.users.add(user)
	require.NoError(t, f.staff.Upsert(context.Background(), &domain.StaffDetails{
		UserID:     user.ID,
		Name:       name,
		Department: department,
	}))
	return user
}

func TestSearchFailsClosedWithoutQueryOrDepartment(t *testing.T) {
	f := newSearchFixture()
	f.addStaff(t, "a@mcc.edu.in", "Alice", "Physics")

	results, err := f.svc.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = f.svc.Search(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchMatchesResearchAreaSubstringCaseInsensitively(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()
	user := f.addStaff(t, "a@mcc.edu.in", "Alice", "Computer Science")
	require.NoError(t, f.facts.Researches.Create(ctx, &domain.Research{
		UserID:        user.ID,
		ResearchAreas: "Machine Learning Systems, Databases",
	}))

	results, err := f.svc.Search(ctx, "machine learning", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].Name)
	assert.Equal(t, []string{"Research Areas"}, results[0].MatchedFields)
	assert.Equal(t, []string{"Machine Learning Systems", "Databases"}, results[0].ResearchAreas)
}

func TestSearchReportsEachCategoryOnce(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()
	user := f.addStaff(t, "a@mcc.edu.in", "Alice", "Physics")
	require.NoError(t, f.facts.Publications.Create(ctx, &domain.Publication{UserID: user.ID, Title: "Quantum optics I"}))
	require.NoError(t, f.facts.Publications.Create(ctx, &domain.Publication{UserID: user.ID, Title: "Quantum optics II"}))
	require.NoError(t, f.facts.Conferences.Create(ctx, &domain.Conference{UserID: user.ID, Title: "Quantum computing"}))

	results, err := f.svc.Search(ctx, "quantum", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"Publications", "Conferences"}, results[0].MatchedFields)
}

func TestSearchDepartmentOnlyListsWholeDepartment(t *testing.T) {
	f := newSearchFixture()
	f.addStaff(t, "a@mcc.edu.in", "Alice", "Physics")
	f.addStaff(t, "b@mcc.edu.in", "Bob", "Physics")
	f.addStaff(t, "c@mcc.edu.in", "Carol", "Chemistry")

	results, err := f.svc.Search(context.Background(), "", "Physics")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Alice", results[0].Name)
	assert.Equal(t, "Bob", results[1].Name)
	assert.Empty(t, results[0].MatchedFields)
}

func TestSearchOrdersByNameCaseInsensitively(t *testing.T) {
	f := newSearchFixture()
	f.addStaff(t, "a@mcc.edu.in", "bob", "Physics")
	f.addStaff(t, "b@mcc.edu.in", "Alice", "Physics")
	f.addStaff(t, "c@mcc.edu.in", "Carol", "Physics")

	results, err := f.svc.Search(context.Background(), "", "Physics")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Alice", results[0].Name)
	assert.Equal(t, "bob", results[1].Name)
	assert.Equal(t, "Carol", results[2].Name)
}

func TestSearchSkipsNonMatchingStaff(t *testing.T) {
	f := newSearchFixture()
	ctx := context.Background()
	f.addStaff(t, "a@mcc.edu.in", "Alice", "Physics")
	user := f.addStaff(t, "b@mcc.edu.in", "Bob", "Chemistry")
	require.NoError(t, f.facts.Fundings.Create(ctx, &domain.Funding{UserID: user.ID, ProjectTitle: "Catalysis grant"}))

	results, err := f.svc.Search(ctx, "catalysis", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Bob", results[0].Name)
	assert.Equal(t, []string{"Funding"}, results[0].MatchedFields)
}

func TestFlattenResearchAreasDeduplicates(t *testing.T) {
	tags := flattenResearchAreas([]domain.Research{
		{ResearchAreas: "AI, Machine Learning, ai"},
		{ResearchAreas: " Machine Learning ,Robotics,,"},
	})
	assert.Equal(t, []string{"AI", "Machine Learning", "Robotics"}, tags)
}
