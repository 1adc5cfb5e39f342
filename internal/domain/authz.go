package domain

// Ownership predicates. Company.OwnerID and Job.PostedBy are references, not
// containment, so callers must fetch the target record before deciding.
// A failed predicate must surface as an authorization error, never as silent
// filtering.

// CanMutateCompany reports whether userID may update or delete the company.
func CanMutateCompany(userID string, company *Company) bool {
	return company != nil && userID != "" && company.OwnerID == userID
}

// CanMutateJob reports whether userID may update or delete the job.
func CanMutateJob(userID string, job *Job) bool {
	return job != nil && userID != "" && job.PostedBy == userID
}

// CanViewJobApplications reports whether userID may list applicants for a job
// owned by the given company.
func CanViewJobApplications(userID string, company *Company) bool {
	return company != nil && userID != "" && company.OwnerID == userID
}

// CanUpdateApplicationStatus reports whether userID may change an
// application's status. Same ownership rule as viewing applicants.
func CanUpdateApplicationStatus(userID string, company *Company) bool {
	return CanViewJobApplications(userID, company)
}
