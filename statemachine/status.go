package statemachine

import (
	"errors"

	"tiffin-marketplace-api/models"
)

// orderTransitions is the authoritative order lifecycle definition. Cancelled
// is reachable from every non-terminal state.
var orderTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderPending:        {models.OrderPreparing, models.OrderCancelled},
	models.OrderPreparing:      {models.OrderReady, models.OrderCancelled},
	models.OrderReady:          {models.OrderOutForDelivery, models.OrderCancelled},
	models.OrderOutForDelivery: {models.OrderCompleted, models.OrderCancelled},
	models.OrderCompleted:      {},
	models.OrderCancelled:      {},
}

var deliveryTransitions = map[models.DeliveryStatus][]models.DeliveryStatus{
	models.DeliveryScheduled: {models.DeliveryEnroute, models.DeliveryDelivered},
	models.DeliveryEnroute:   {models.DeliveryDelivered},
	models.DeliveryDelivered: {},
}

// ValidOrderTransitionsFrom returns all valid next states from a given order state
func ValidOrderTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return orderTransitions[status]
}

// ValidDeliveryTransitionsFrom returns all valid next states from a given delivery state
func ValidDeliveryTransitionsFrom(status models.DeliveryStatus) []models.DeliveryStatus {
	return deliveryTransitions[status]
}

// CanTransitionOrder checks whether an order may move from one state to another
func CanTransitionOrder(from, to models.OrderStatus) error {
	if from == to {
		return nil
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New("invalid order transition: " + string(from) + " to " + string(to) +
		". Valid next states: " + describeOrder(from))
}

// CanTransitionDelivery checks whether a delivery may move from one state to another
func CanTransitionDelivery(from, to models.DeliveryStatus) error {
	if from == to {
		return nil
	}
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New("invalid delivery transition: " + string(from) + " to " + string(to) +
		". Valid next states: " + describeDelivery(from))
}

func describeOrder(status models.OrderStatus) string {
	nexts := orderTransitions[status]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

func describeDelivery(status models.DeliveryStatus) string {
	nexts := deliveryTransitions[status]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// Describe returns both lifecycle tables for the informational public endpoint.
func Describe() map[string]interface{} {
	orders := map[string][]models.OrderStatus{}
	for from, tos := range orderTransitions {
		orders[string(from)] = tos
	}
	deliveries := map[string][]models.DeliveryStatus{}
	for from, tos := range deliveryTransitions {
		deliveries[string(from)] = tos
	}
	return map[string]interface{}{
		"orders":     orders,
		"deliveries": deliveries,
	}
}
