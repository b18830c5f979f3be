//go:build unit

package response_test

import (
	"testing"
	"time"

	"vacation-desk/internal/handler/dto/response"
	"vacation-desk/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFromVacationRequestView(t *testing.T) {
	id, requesterID := uuid.New(), uuid.New()
	requestedAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	approvedAt := requestedAt.Add(24 * time.Hour)

	got, err := response.FromVacationRequestView(&queries.VacationRequestView{
		ID:             id,
		RequesterID:    requesterID,
		RequesterName:  "Ana Souza",
		RequesterTitle: "Analyst",
		StartDate:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
		RequestedDays:  11,
		Notes:          "Beach",
		Status:         "approved",
		RequestedAt:    requestedAt,
		ApprovedBy:     "Carla Lima",
		ApprovedAt:     &approvedAt,
	})
	require.NoError(t, err)

	want := &response.VacationRequestResponse{
		ID:             id.String(),
		RequesterID:    requesterID.String(),
		RequesterName:  "Ana Souza",
		RequesterTitle: "Analyst",
		StartDate:      "10/06/2025",
		EndDate:        "20/06/2025",
		RequestedDays:  11,
		Notes:          "Beach",
		Status:         "approved",
		RequestedAt:    requestedAt,
		ApprovedBy:     "Carla Lima",
		ApprovedAt:     &approvedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestFromBalanceView(t *testing.T) {
	got := response.FromBalanceView(&queries.BalanceView{Allotment: 30, DaysApproved: 10, DaysPending: 1, AvailableDays: 19})

	want := &response.BalanceResponse{Allotment: 30, DaysApproved: 10, DaysPending: 1, AvailableDays: 19}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("balance mismatch (-want +got):\n%s", diff)
	}
}
