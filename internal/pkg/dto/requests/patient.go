package requests

// CreatePatient covers POST /patients/create. Every field is required at
// creation; height and weight are pointers so 0 passes the required check.
type CreatePatient struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	MiddleName      string   `json:"middleName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Gender          string   `json:"gender" validate:"required"`
	DateOfBirth     string   `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	BloodGroup      string   `json:"bloodGroup" validate:"required"`
	Height          *float64 `json:"height" validate:"required"`
	Weight          *float64 `json:"weight" validate:"required"`
	Profession      string   `json:"profession" validate:"required"`
	Location        string   `json:"location" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	TelephoneNumber string   `json:"telephoneNumber" validate:"required"`
}

// UpdatePatient covers PATCH /patients/update/{patientId}.
type UpdatePatient struct {
	FirstName       *string  `json:"firstName"`
	LastName        *string  `json:"lastName"`
	MiddleName      *string  `json:"middleName"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Gender          *string  `json:"gender"`
	DateOfBirth     *string  `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup      *string  `json:"bloodGroup"`
	Height          *float64 `json:"height"`
	Weight          *float64 `json:"weight"`
	Profession      *string  `json:"profession"`
	Location        *string  `json:"location"`
	Address         *string  `json:"address"`
	TelephoneNumber *string  `json:"telephoneNumber"`
}
