package catalog

import (
	"errors"
	"fmt"

	"cleansweep/models"
)

// ErrSubserviceNotFound indicates the sub-service ID is not priced in the
// service's pricing block.
var ErrSubserviceNotFound = errors.New("sub-service not found in pricing block")

// SubservicePrice resolves a sub-service's price from the service's pricing
// block. The booking flow treats price purely as a lookup keyed by the
// sub-service identifier; it never computes one.
func SubservicePrice(service *models.Service, subserviceID string) (float64, error) {
	for _, block := range service.LayoutConfig {
		if block.Type != "pricing" {
			continue
		}
		items, ok := block.Data["subservices"].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			sub, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if id, _ := sub["id"].(string); id != subserviceID {
				continue
			}
			switch price := sub["price"].(type) {
			case float64:
				return price, nil
			case int:
				return float64(price), nil
			}
			return 0, fmt.Errorf("sub-service %q has no numeric price", subserviceID)
		}
	}
	return 0, fmt.Errorf("%w: %q in service %s", ErrSubserviceNotFound, subserviceID, service.ID)
}
