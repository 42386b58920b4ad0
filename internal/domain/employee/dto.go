package employee

import (
	"mime/multipart"
	"time"

	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is decoded from a multipart form; the optional
// "image" part travels separately from the scalar fields.
type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Department string  `json:"department"`
	Position   *string `json:"position"`
	HireDate   *string `json:"hire_date"` // YYYY-MM-DD
	Salary     *string `json:"salary"`
	Status     string  `json:"status"`
	UserID     *string `json:"user_id"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
		}
	}
	if r.Salary != nil && *r.Salary != "" {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a number"})
		}
	}
	if r.Status != "" {
		if _, ok := ParseStatus(r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active, inactive or on-leave"})
		}
	}
	if r.UserID != nil && *r.UserID != "" && !validator.IsValidUUID(*r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id must be a valid identifier"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity builds an Employee from a validated create request.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	e := Employee{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Department: r.Department,
		Position:   r.Position,
		Status:     StatusActive,
		UserID:     r.UserID,
	}
	if r.Status != "" {
		if status, ok := ParseStatus(r.Status); ok {
			e.Status = status
		}
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if date, ok := validator.IsValidDate(*r.HireDate); ok {
			e.HireDate = &date
		}
	}
	if r.Salary != nil && *r.Salary != "" {
		if salary, err := decimal.NewFromString(*r.Salary); err == nil {
			e.Salary = salary
		}
	}
	return e
}

// UpdateEmployeeRequest carries only the fields present in the form;
// nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	HireDate   *string `json:"hire_date"`
	Salary     *string `json:"salary"`
	Status     *string `json:"status"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
		}
	}
	if r.Salary != nil && *r.Salary != "" {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a number"})
		}
	}
	if r.Status != nil && *r.Status != "" {
		if _, ok := ParseStatus(*r.Status); !ok {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be active, inactive or on-leave"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply merges the request into an existing employee record.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FirstName != nil && *r.FirstName != "" {
		e.FirstName = *r.FirstName
	}
	if r.LastName != nil && *r.LastName != "" {
		e.LastName = *r.LastName
	}
	if r.Email != nil && *r.Email != "" {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = r.Phone
	}
	if r.Department != nil && *r.Department != "" {
		e.Department = *r.Department
	}
	if r.Position != nil {
		e.Position = r.Position
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if date, ok := validator.IsValidDate(*r.HireDate); ok {
			e.HireDate = &date
		}
	}
	if r.Salary != nil && *r.Salary != "" {
		if salary, err := decimal.NewFromString(*r.Salary); err == nil {
			e.Salary = salary
		}
	}
	if r.Status != nil && *r.Status != "" {
		if status, ok := ParseStatus(*r.Status); ok {
			e.Status = status
		}
	}
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	UserID     *string         `json:"user_id,omitempty"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	Department string          `json:"department"`
	Position   *string         `json:"position,omitempty"`
	HireDate   *string         `json:"hire_date,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
	Status     Status          `json:"status"`
	ImageURL   *string         `json:"image_url,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
		Salary:     e.Salary,
		Status:     e.Status,
		ImageURL:   e.ImageURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
	if e.HireDate != nil {
		formatted := e.HireDate.Format("2006-01-02")
		resp.HireDate = &formatted
	}
	return resp
}

func NewEmployeeResponses(employees []Employee) []EmployeeResponse {
	resps := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resps = append(resps, NewEmployeeResponse(e))
	}
	return resps
}
