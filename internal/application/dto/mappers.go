package dto

import "github.com/jhoicas/securepass-api/internal/domain/entity"

// FromCompany mapea la entidad a su salida HTTP. admins es opcional.
func FromCompany(c *entity.Company, admins []*entity.AdminUser) CompanyResponse {
	out := CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		Locations:   nonNil(c.Locations),
		AdminIDs:    nonNil(c.Admins),
		Status:      c.Status,
		Package:     c.Package,
		ExpiredDate: c.ExpiredDate,
		Payment:     c.Payment,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, a := range admins {
		out.Admins = append(out.Admins, FromAdmin(a))
	}
	return out
}

// FromAdmin mapea un AdminUser sin exponer el hash.
func FromAdmin(a *entity.AdminUser) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.Role,
		CompanyID: a.CompanyID,
		CreatedAt: a.CreatedAt,
	}
}

// FromCompanyRequest mapea una solicitud de empresa.
func FromCompanyRequest(r *entity.CompanyRequest) CompanyRequestResponse {
	out := CompanyRequestResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Admins:      make([]RequestAdminResponse, 0, len(r.Admins)),
		Status:      r.Status,
		PackageType: r.PackageType,
		Payment:     r.Payment,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, a := range r.Admins {
		out.Admins = append(out.Admins, RequestAdminResponse{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Email: a.Email})
	}
	return out
}

// FromTrialRequest mapea una solicitud de prueba.
func FromTrialRequest(t *entity.TrialRequest) TrialRequestResponse {
	return TrialRequestResponse{
		ID:          t.ID,
		CompanyName: t.CompanyName,
		Address:     t.Address,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		Email:       t.Email,
		CreatedAt:   t.CreatedAt,
	}
}

// FromUser mapea un User sin exponer el hash.
func FromUser(u *entity.User) UserResponse {
	out := UserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		UserID:          u.UserID,
		ProfilePicture:  u.ProfilePicture,
		CompanyID:       u.CompanyID,
		AdminID:         u.AdminID,
		DoorAccess:      make([]DoorAccessResponse, 0, len(u.DoorAccess)),
		PendingRequests: nonNil(u.PendingRequests),
		CreatedAt:       u.CreatedAt,
	}
	for _, da := range u.DoorAccess {
		out.DoorAccess = append(out.DoorAccess, DoorAccessResponse{
			ID:        da.ID,
			DoorID:    da.DoorID,
			RequestID: da.RequestID,
			DoorCode:  da.DoorCode,
			RoomName:  da.RoomName,
			Location:  da.Location,
			InTime:    da.InTime,
			OutTime:   da.OutTime,
			Date:      da.Date,
		})
	}
	return out
}

// FromDoor mapea una puerta.
func FromDoor(d *entity.Door) DoorResponse {
	return DoorResponse{
		ID:            d.ID,
		DoorCode:      d.DoorCode,
		RoomName:      d.RoomName,
		Location:      d.Location,
		CompanyID:     d.CompanyID,
		AdminID:       d.AdminID,
		ApprovedUsers: nonNil(d.ApprovedUsers),
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
	}
}

// FromPermissionRequest mapea una solicitud de permiso.
func FromPermissionRequest(p *entity.PermissionRequest) PermissionRequestResponse {
	return PermissionRequestResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		CompanyID: p.CompanyID,
		DoorID:    p.DoorID,
		Name:      p.Name,
		Location:  p.Location,
		RoomName:  p.RoomName,
		InTime:    p.InTime,
		OutTime:   p.OutTime,
		Date:      p.Date,
		Message:   p.Message,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

// FromAccessEvent mapea un evento del historial.
func FromAccessEvent(e *entity.AccessEvent) AccessEventResponse {
	return AccessEventResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		CompanyID: e.CompanyID,
		DoorID:    e.DoorID,
		DoorCode:  e.DoorCode,
		RoomName:  e.RoomName,
		Location:  e.Location,
		EntryTime: e.EntryTime,
		ExitTime:  e.ExitTime,
	}
}

// FromPayment mapea un pago.
func FromPayment(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		CompanyRequestID: p.CompanyRequestID,
		CompanyID:        p.CompanyID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		PaymentMethod:    p.PaymentMethod,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
