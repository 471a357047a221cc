package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medprep/internal/domain"
)

func TestStore_Fetch(t *testing.T) {
	client := fixtureClient()
	s := NewStore(client)

	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	from, to := s.Range()
	assert.Equal(t, "2024-06-10", from)
	assert.Equal(t, "2024-06-16", to)

	tutors := s.Tutors()
	require.Len(t, tutors, 2)
	require.Len(t, s.Unassigned(), 3)

	// Day slots come out ordered by hour regardless of wire order.
	day := tutors[0].Schedule["2024-06-10"]
	require.Len(t, day, 3)
	assert.Equal(t, "10:00", day[0].StartTime)
	assert.Equal(t, "14:00", day[1].StartTime)
	assert.Equal(t, "15:00", day[2].StartTime)

	// Interview fields travel from the nested wire record.
	booked := day[0]
	assert.Equal(t, domain.SlotInterview, booked.Type)
	assert.Equal(t, "iv-9", booked.InterviewID)
	assert.Equal(t, "Priya Patel", booked.Student)
	assert.Equal(t, "b-9", booked.BookingID)
	assert.False(t, booked.IsPending)
}

func TestStore_Fetch_DropsDuplicateHours(t *testing.T) {
	client := fixtureClient()
	client.availability[0].Slots = append(client.availability[0].Slots,
		domain.AvailabilitySlotRecord{ID: "slot-dup", Date: "2024-06-10", HourStart: "14:00", HourEnd: "15:00", Type: "available"})
	s := NewStore(client)

	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	slot := s.SlotAt("t1", "2024-06-10", "14:00")
	require.NotNil(t, slot)
	assert.Equal(t, "slot-1", slot.ID)
	assert.Len(t, s.Tutors()[0].Schedule["2024-06-10"], 3)
}

func TestStore_Fetch_KeepsStateOnError(t *testing.T) {
	client := fixtureClient()
	s := NewStore(client)
	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	client.listErr = errors.New("gateway timeout")
	err := s.Fetch(context.Background(), "2024-06-17", "2024-06-23")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Len(t, s.Tutors(), 2)
	assert.Len(t, s.Unassigned(), 3)
	from, to := s.Range()
	assert.Equal(t, "2024-06-10", from)
	assert.Equal(t, "2024-06-16", to)
}

func TestStore_RemoveUnassigned(t *testing.T) {
	s := NewStore(fixtureClient())
	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	iv, ok := s.RemoveUnassigned("iv-2")
	require.True(t, ok)
	assert.Equal(t, "John Smith", iv.StudentName)
	assert.Len(t, s.Unassigned(), 2)

	_, ok = s.RemoveUnassigned("iv-2")
	assert.False(t, ok)

	// Resync restores the full list.
	require.NoError(t, s.Resync(context.Background()))
	assert.Len(t, s.Unassigned(), 3)
}

func TestStore_MarkAvailable(t *testing.T) {
	client := fixtureClient()
	s := NewStore(client)
	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	require.NoError(t, s.MarkAvailable(context.Background(), "t2", "2024-06-11", []string{"09:00", "10:00"}))

	require.Len(t, client.createAvailCalls, 2)
	assert.Equal(t, domain.AvailabilityInput{Date: "2024-06-11", HourStart: "09:00", HourEnd: "10:00", Type: "available"}, client.createAvailCalls[0])
	assert.Equal(t, domain.AvailabilityInput{Date: "2024-06-11", HourStart: "10:00", HourEnd: "11:00", Type: "available"}, client.createAvailCalls[1])
	// One fetch to load, one resync after the create.
	assert.Equal(t, 2, client.listCalls)
}

func TestStore_MarkAvailable_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		tutorID string
		date    string
		hours   []string
		wantErr error
	}{
		{"unknown tutor", "t9", "2024-06-11", []string{"09:00"}, domain.ErrTutorNotFound},
		{"bad date", "t1", "June 11th", []string{"09:00"}, domain.ErrSlotNotAvailable},
		{"no hours", "t1", "2024-06-11", nil, domain.ErrSlotNotAvailable},
		{"bad hour", "t1", "2024-06-11", []string{"09:30"}, domain.ErrSlotNotAvailable},
		{"hour already occupied", "t1", "2024-06-10", []string{"14:00"}, domain.ErrSlotNotAvailable},
		{"occupied by an interview", "t1", "2024-06-10", []string{"10:00"}, domain.ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := fixtureClient()
			s := NewStore(client)
			require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

			err := s.MarkAvailable(context.Background(), tt.tutorID, tt.date, tt.hours)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.createAvailCalls)
		})
	}
}

func TestStore_MarkAvailable_ServiceError(t *testing.T) {
	client := fixtureClient()
	client.createAvailErr = errors.New("conflict")
	s := NewStore(client)
	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	err := s.MarkAvailable(context.Background(), "t1", "2024-06-11", []string{"09:00"})
	var mutErr *domain.MutationError
	require.ErrorAs(t, err, &mutErr)
	// No resync on a failed create.
	assert.Equal(t, 1, client.listCalls)
}

func TestStore_RemoveAvailable(t *testing.T) {
	client := fixtureClient()
	s := NewStore(client)
	require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

	require.NoError(t, s.RemoveAvailable(context.Background(), "t1", "slot-2"))
	assert.Equal(t, []string{"slot-2"}, client.deleteAvailIDs)
	assert.Equal(t, 2, client.listCalls)
}

func TestStore_RemoveAvailable_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		tutorID string
		slotID  string
		wantErr error
	}{
		{"unknown tutor", "t9", "slot-1", domain.ErrTutorNotFound},
		{"unknown slot", "t1", "slot-404", domain.ErrSlotNotAvailable},
		{"slot belongs to another tutor", "t2", "slot-1", domain.ErrSlotNotAvailable},
		{"interview slot", "t1", "slot-3", domain.ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := fixtureClient()
			s := NewStore(client)
			require.NoError(t, s.Fetch(context.Background(), "2024-06-10", "2024-06-16"))

			err := s.RemoveAvailable(context.Background(), tt.tutorID, tt.slotID)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.deleteAvailIDs)
		})
	}
}
