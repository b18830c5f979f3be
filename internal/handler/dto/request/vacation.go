package request

import (
	"strings"
	"time"

	"vacation-desk/internal/usecase/commands"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DisplayDateLayout is the day/month/year form requesters type dates in.
const DisplayDateLayout = "02/01/2006"

// Dates are optional at the binding level so a missing date reaches the
// validator and is reported with its own message.
type SubmitVacationRequest struct {
	StartDate string  `json:"startDate" binding:"omitempty,dmy_date" example:"10/06/2025"`
	EndDate   string  `json:"endDate" binding:"omitempty,dmy_date" example:"20/06/2025"`
	Notes     *string `json:"notes,omitempty" example:"Family trip"`
}

type RejectVacationRequest struct {
	Reason string `json:"reason" binding:"required,max=500" example:"Team coverage"`
}

type ListVacationRequests struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Search string `form:"q" binding:"omitempty,max=120"`
	After  string `form:"after"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (r SubmitVacationRequest) ToInput() (commands.SubmitVacationInput, error) {
	start, err := ParseDisplayDate(r.StartDate)
	if err != nil {
		return commands.SubmitVacationInput{}, err
	}
	end, err := ParseDisplayDate(r.EndDate)
	if err != nil {
		return commands.SubmitVacationInput{}, err
	}

	var notes string
	if r.Notes != nil {
		notes = *r.Notes
	}
	return commands.SubmitVacationInput{StartDate: start, EndDate: end, Notes: notes}, nil
}

// ParseDisplayDate returns the zero time for an empty string.
func ParseDisplayDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(DisplayDateLayout, s)
}

func validateDisplayDate(fl validator.FieldLevel) bool {
	_, err := ParseDisplayDate(fl.Field().String())
	return err == nil
}

// RegisterValidators installs the custom tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("dmy_date", validateDisplayDate)
}
