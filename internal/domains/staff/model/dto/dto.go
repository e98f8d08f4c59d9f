package dto

import (
	"time"

	"balai/internal/domains/staff/model"
	"balai/shared"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required,max=120"`
	LastName  string `json:"last_name"  validate:"required,max=120"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=32"`
	Role      string `json:"role"       validate:"required,oneof=admin manager receptionist housekeeping maintenance"`
	HireDate  string `json:"hire_date"  validate:"omitempty"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// ToModel builds the staff record. The hire date defaults to today when
// the request leaves it empty.
func (c *CreateStaffRequest) ToModel(user, passwordHash string) (model.Staff, error) {
	hireDate := timezone.Now()

	if c.HireDate != constant.Empty {
		parsed, err := time.Parse(constant.DateOnlyFormat, c.HireDate)
		if err != nil {
			return model.Staff{}, err
		}

		hireDate = parsed
	}

	return model.Staff{
		ID:           uuid.NewString(),
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		Role:         c.Role,
		Status:       model.StatusActive,
		HireDate:     hireDate,
		PasswordHash: passwordHash,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStaffRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=120"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=120"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=32"`
	Role      string `db:"role"       json:"role"       validate:"omitempty,oneof=admin manager receptionist housekeeping maintenance"`
	Status    string `db:"status"     json:"status"     validate:"omitempty,oneof=active inactive"`
}

type StaffResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	HireDate  string `json:"hire_date"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Status = model.Status
	r.HireDate = model.HireDate.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
