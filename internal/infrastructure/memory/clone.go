package memory

import (
	"maps"
	"slices"

	"github.com/jhoicas/securepass-api/internal/domain/entity"
)

func cloneCompany(c *entity.Company) *entity.Company {
	out := *c
	out.Locations = slices.Clone(c.Locations)
	out.Admins = slices.Clone(c.Admins)
	if c.ExpiredDate != nil {
		t := *c.ExpiredDate
		out.ExpiredDate = &t
	}
	return &out
}

func cloneCompanyRequest(r *entity.CompanyRequest) *entity.CompanyRequest {
	out := *r
	out.Admins = slices.Clone(r.Admins)
	return &out
}

func cloneTrial(t *entity.TrialRequest) *entity.TrialRequest {
	out := *t
	return &out
}

func cloneAdmin(a *entity.AdminUser) *entity.AdminUser {
	out := *a
	return &out
}

func cloneUser(u *entity.User) *entity.User {
	out := *u
	out.DoorAccess = slices.Clone(u.DoorAccess)
	out.PendingRequests = slices.Clone(u.PendingRequests)
	return &out
}

func cloneDoor(d *entity.Door) *entity.Door {
	out := *d
	out.ApprovedUsers = slices.Clone(d.ApprovedUsers)
	return &out
}

func clonePermission(p *entity.PermissionRequest) *entity.PermissionRequest {
	out := *p
	return &out
}

func cloneAccessEvent(e *entity.AccessEvent) *entity.AccessEvent {
	out := *e
	if e.ExitTime != nil {
		t := *e.ExitTime
		out.ExitTime = &t
	}
	return &out
}

func clonePayment(p *entity.Payment) *entity.Payment {
	out := *p
	return &out
}

func cloneAudit(a *entity.AuditEvent) *entity.AuditEvent {
	out := *a
	out.Metadata = maps.Clone(a.Metadata)
	return &out
}
