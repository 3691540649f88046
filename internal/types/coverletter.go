package types

import "github.com/go-playground/validator/v10"

// CoverLetterRequest represents the request to generate a cover letter.
// Only JobDescription, JobTitle and Skills are required; everything else
// is optional personalization.
type CoverLetterRequest struct {
	JobDescription string  `json:"job_description" validate:"required,min=1"`
	JobTitle       string  `json:"job_title" validate:"required,min=1"`
	Skills         string  `json:"skills" validate:"required,min=1"`
	Name           string  `json:"name,omitempty"`
	Experience     string  `json:"experience,omitempty"`
	CreativeScore  float64 `json:"creative_score,omitempty" validate:"gte=0,lte=1"`

	// Sender (From)
	FromFirstName string `json:"from_first_name,omitempty"`
	FromLastName  string `json:"from_last_name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`

	// Recipient (To)
	ToFirstName string `json:"to_first_name,omitempty"`
	ToLastName  string `json:"to_last_name,omitempty"`
	Company     string `json:"company,omitempty"`
	Department  string `json:"department,omitempty"`
}

// GenerateResumeRequest represents the request to generate a resume from a job description.
type GenerateResumeRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=1,max=20000"`
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateResumeRequest using the validator.
func (r *GenerateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
