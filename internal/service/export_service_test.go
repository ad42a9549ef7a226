package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/domain"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

func newExportFixture() (*ExportService, *fakeUserRepo, *fakeStaffRepo, FactRepositories) {
	users := newFakeUserRepo()
	staff := newFakeStaffRepo()
	facts := newFakeFacts()
	return NewExportService(users, staff, facts), users, staff, facts
}

func TestExportDefaultsToEverySection(t *testing.T) {
	svc, users, staff, facts := newExportFixture()
	ctx := context.Background()
	slug := "alice"
	user := users.add(&domain.User{Email: "a@mcc.edu.in", Role: domain.RoleStaff, Active: true, Slug: &slug})
	require.NoError(t, staff.Upsert(ctx, &domain.StaffDetails{UserID: user.ID, Name: "Alice", Department: "Physics"}))
	require.NoError(t, facts.Educations.Create(ctx, &domain.Education{UserID: user.ID, Degree: "PhD", College: "MCC"}))

	exports, err := svc.Export(ctx, nil)
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Equal(t, "a@mcc.edu.in", exports[0].Email)
	assert.Equal(t, "alice", exports[0].Slug)
	// one entry per registered section, the staff-details record included
	assert.Len(t, exports[0].Sections, 15)
	assert.Contains(t, exports[0].Sections, string(domain.SectionProfileDetails))
	assert.Contains(t, exports[0].Sections, string(domain.SectionEducation))

	educations, ok := exports[0].Sections[string(domain.SectionEducation)].([]domain.Education)
	require.True(t, ok)
	require.Len(t, educations, 1)
	assert.Equal(t, "PhD", educations[0].Degree)
}

func TestExportRestrictsToRequestedSections(t *testing.T) {
	svc, users, _, facts := newExportFixture()
	ctx := context.Background()
	user := users.add(&domain.User{Email: "a@mcc.edu.in", Role: domain.RoleStaff, Active: true})
	require.NoError(t, facts.Fundings.Create(ctx, &domain.Funding{UserID: user.ID, ProjectTitle: "Grant", Amount: 5}))

	exports, err := svc.Export(ctx, []string{string(domain.SectionFunding), string(domain.SectionFunding)})
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Len(t, exports[0].Sections, 1)
	assert.Contains(t, exports[0].Sections, string(domain.SectionFunding))
}

func TestExportRejectsUnknownSectionTags(t *testing.T) {
	svc, users, _, _ := newExportFixture()
	users.add(&domain.User{Email: "a@mcc.edu.in", Role: domain.RoleStaff, Active: true})

	_, err := svc.Export(context.Background(), []string{"education", "bogus"})
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Equal(t, []string{"bogus"}, domainErr.Details["unknown_sections"])
}

func TestExportMissingProfileDetailsIsNil(t *testing.T) {
	svc, users, _, _ := newExportFixture()
	users.add(&domain.User{Email: "a@mcc.edu.in", Role: domain.RoleStaff, Active: true})

	exports, err := svc.Export(context.Background(), []string{string(domain.SectionProfileDetails)})
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Nil(t, exports[0].Sections[string(domain.SectionProfileDetails)])
}
