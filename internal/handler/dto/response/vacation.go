package response

import (
	"time"

	reqdto "vacation-desk/internal/handler/dto/request"
	"vacation-desk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VacationRequestResponse struct {
	ID              string     `json:"id"`
	RequesterID     string     `json:"requesterId"`
	RequesterName   string     `json:"requesterName"`
	RequesterTitle  string     `json:"requesterTitle"`
	StartDate       string     `json:"startDate" example:"10/06/2025"`
	EndDate         string     `json:"endDate" example:"20/06/2025"`
	RequestedDays   int        `json:"requestedDays"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requestedAt"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

type BalanceResponse struct {
	Allotment     int `json:"allotment"`
	DaysApproved  int `json:"daysApproved"`
	DaysPending   int `json:"daysPending"`
	AvailableDays int `json:"availableDays"`
}

type SubmitVacationResponse struct {
	Request *VacationRequestResponse `json:"request"`
	Balance *BalanceResponse         `json:"balance"`
	Message string                   `json:"message" example:"Vacation requested from 10/06/2025 to 20/06/2025 (11 days)"`
}

type VacationRequestListResponse struct {
	Items      []*VacationRequestResponse `json:"items"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

var viewConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(reqdto.DisplayDateLayout), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromVacationRequestView(v *queries.VacationRequestView) (*VacationRequestResponse, error) {
	var resp VacationRequestResponse
	if err := copier.CopyWithOption(&resp, v, viewConverters); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromVacationRequestViews(views []*queries.VacationRequestView) ([]*VacationRequestResponse, error) {
	items := make([]*VacationRequestResponse, 0, len(views))
	for _, v := range views {
		item, err := FromVacationRequestView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func FromBalanceView(b *queries.BalanceView) *BalanceResponse {
	var resp BalanceResponse
	_ = copier.Copy(&resp, b)
	return &resp
}
