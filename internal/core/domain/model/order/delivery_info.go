package order

import (
	"errors"
	"strings"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrDeliveryInfoIsNotConstructed is returned when DeliveryInfo was not created via NewDeliveryInfo.
var ErrDeliveryInfoIsNotConstructed = errors.New("DeliveryInfo must be created via NewDeliveryInfo constructor")

// DeliveryInfo is the carrier hand-off data attached while an order is being
// prepared for shipment.
type DeliveryInfo struct {
	carrier             string
	trackingNumber      string
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryInfo creates validated delivery details. estimatedDeliveryAt is optional.
func NewDeliveryInfo(carrier, trackingNumber string, estimatedDeliveryAt *time.Time) (DeliveryInfo, error) {
	info := DeliveryInfo{
		carrier:        strings.TrimSpace(carrier),
		trackingNumber: strings.TrimSpace(trackingNumber),
		guard:          guard.NewConstructorGuard(),
	}

	var problems []error
	if info.carrier == "" {
		problems = append(problems, errs.NewValueIsRequiredError("carrier"))
	}
	if info.trackingNumber == "" {
		problems = append(problems, errs.NewValueIsRequiredError("tracking number"))
	}
	if err := errors.Join(problems...); err != nil {
		return DeliveryInfo{}, err
	}

	if estimatedDeliveryAt != nil {
		eta := estimatedDeliveryAt.UTC()
		info.estimatedDeliveryAt = &eta
	}

	return info, nil
}

func (d DeliveryInfo) Validate() error {
	return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
}

func (d DeliveryInfo) Carrier() string {
	return d.carrier
}

func (d DeliveryInfo) TrackingNumber() string {
	return d.trackingNumber
}

// EstimatedDeliveryAt returns a copy of the estimate, or nil when unknown.
func (d DeliveryInfo) EstimatedDeliveryAt() *time.Time {
	if d.estimatedDeliveryAt == nil {
		return nil
	}
	eta := *d.estimatedDeliveryAt
	return &eta
}
