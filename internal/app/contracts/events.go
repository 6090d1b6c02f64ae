package contracts

import (
	"context"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
)

// ChangeEventPublisher pushes scheduling mutations to the realtime
// collaborator. The engine only publishes; delivery is external.
type ChangeEventPublisher interface {
	PublishBookingStatusChanged(ctx context.Context, booking *models.Booking, previousStatus, actor string) error
	PublishAvailabilityChanged(ctx context.Context, studioID, date string) error
}
