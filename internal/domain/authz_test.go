package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanMutateCompany(t *testing.T) {
	company := &domain.Company{ID: "c1", OwnerID: "u1"}

	assert.True(t, domain.CanMutateCompany("u1", company))
	assert.False(t, domain.CanMutateCompany("u2", company))
	assert.False(t, domain.CanMutateCompany("", company))
	assert.False(t, domain.CanMutateCompany("u1", nil))
}

func TestCanMutateJob(t *testing.T) {
	job := &domain.Job{ID: "j1", PostedBy: "u1", CompanyID: "c1"}

	assert.True(t, domain.CanMutateJob("u1", job))
	assert.False(t, domain.CanMutateJob("u2", job))
	assert.False(t, domain.CanMutateJob("", job))
	assert.False(t, domain.CanMutateJob("u1", nil))
}

func TestCanViewJobApplications(t *testing.T) {
	// U1 owns the company; U2 posted the job for it. Viewing applicants
	// follows company ownership, not who posted.
	company := &domain.Company{ID: "c1", OwnerID: "u1"}

	assert.True(t, domain.CanViewJobApplications("u1", company))
	assert.False(t, domain.CanViewJobApplications("u2", company))
	assert.Equal(t,
		domain.CanViewJobApplications("u1", company),
		domain.CanUpdateApplicationStatus("u1", company))
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{"pending", "reviewed", "shortlisted", "rejected", "hired"} {
		assert.True(t, domain.ValidApplicationStatus(s), s)
	}
	assert.False(t, domain.ValidApplicationStatus("archived"))
	assert.False(t, domain.ValidApplicationStatus(""))
	assert.False(t, domain.ValidApplicationStatus("Pending"))
}
