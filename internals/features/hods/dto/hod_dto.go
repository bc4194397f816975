package dto

import "nodues_backend/internals/features/hods/model"

type RegisterHodRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	EmployeeID  string `json:"employeeId"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phonenumber"`
}

func (r RegisterHodRequest) ToModel() *model.HodModel {
	return &model.HodModel{
		FullName:    r.FullName,
		Email:       r.Email,
		Department:  r.Department,
		EmployeeID:  r.EmployeeID,
		Password:    r.Password,
		PhoneNumber: r.PhoneNumber,
	}
}

type LoginHodRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

type UpdateHodRequest struct {
	FullName    *string `json:"fullName,omitempty"`
	Department  *string `json:"department,omitempty"`
	PhoneNumber *string `json:"phonenumber,omitempty"`
}

func (r UpdateHodRequest) ApplyTo(h *model.HodModel) {
	if r.FullName != nil {
		h.FullName = *r.FullName
	}
	if r.Department != nil {
		h.Department = *r.Department
	}
	if r.PhoneNumber != nil {
		h.PhoneNumber = *r.PhoneNumber
	}
}
