package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"renta-autos/internal/domain"
	"renta-autos/tests/mocks"
)

func newRepairService() (*mocks.RepairRepository, *mocks.CarRepository, *mocks.NotificationRepository, RepairService) {
	repairRepo := new(mocks.RepairRepository)
	carRepo := new(mocks.CarRepository)
	notifRepo := new(mocks.NotificationRepository)
	svc := NewRepairService(repairRepo, carRepo, notifRepo, testLogger())
	return repairRepo, carRepo, notifRepo, svc
}

func TestRepairOpen_MarksCarUnavailable(t *testing.T) {
	repairRepo, carRepo, _, svc := newRepairService()
	car := &domain.Car{ID: uuid.New(), Available: true}

	carRepo.On("GetByID", mock.Anything, car.ID).Return(car, nil)
	repairRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Repair")).Return(nil)
	carRepo.On("SetAvailability", mock.Anything, car.ID, false).Return(nil)

	repair, err := svc.Open(context.Background(), uuid.New(), domain.CreateRepairInput{
		CarID:       car.ID,
		Description: "brake pads",
		Cost:        120,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RepairOpen, repair.Status)
	carRepo.AssertCalled(t, "SetAvailability", mock.Anything, car.ID, false)
}

func TestRepairComplete_FreesCarAndNotifiesOpener(t *testing.T) {
	repairRepo, carRepo, notifRepo, svc := newRepairService()
	opener := uuid.New()
	repair := &domain.Repair{
		ID:          uuid.New(),
		CarID:       uuid.New(),
		Description: "brake pads",
		Status:      domain.RepairOpen,
		OpenedBy:    opener,
	}

	repairRepo.On("GetByID", mock.Anything, repair.ID).Return(repair, nil)
	repairRepo.On("Complete", mock.Anything, repair.ID).Return(nil)
	carRepo.On("SetAvailability", mock.Anything, repair.CarID, true).Return(nil)
	notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserID == opener && n.Type == domain.NotifRepairCompleted
	})).Return(nil)

	err := svc.Complete(context.Background(), repair.ID)

	require.NoError(t, err)
	notifRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestRepairComplete_AlreadyCompleted(t *testing.T) {
	repairRepo, carRepo, _, svc := newRepairService()
	repair := &domain.Repair{ID: uuid.New(), Status: domain.RepairCompleted}

	repairRepo.On("GetByID", mock.Anything, repair.ID).Return(repair, nil)

	err := svc.Complete(context.Background(), repair.ID)

	assert.ErrorIs(t, err, domain.ErrRepairNotOpen)
	carRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}
