package orders

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// StaticService provides deterministic order data suitable for local
// development and tests. Mutations behave like the real backend: Ship fills
// in shipment fields and returns the updated object, ResolveReturn answers
// with a message and stamps the per-item statuses.
type StaticService struct {
	mu     sync.Mutex
	orders []Order
}

// NewStaticService returns a StaticService populated with representative orders.
func NewStaticService() *StaticService {
	now := time.Now()

	orders := []Order{
		{
			OrderID:        5012,
			UserID:         118,
			CreatedAt:      now.Add(-6 * time.Hour),
			PaymentMethod:  "razorpay",
			TotalAmount:    2499,
			OrderStatus:    StatusPending,
			ShippingStatus: ShippingNotShipped,
			ShippingAddress: `{"name":"Ananya Sharma","phone":"9876501234","street":"14 MG Road",` +
				`"city":"Bengaluru","state":"Karnataka","pincode":"560001"}`,
			Items: []Item{
				{ProductID: 31, ProductName: "Rose Gold Pendant", ProductImage: "/img/pendant-31.jpg", Quantity: 1, Size: "M", Color: "Rose Gold", Price: 1799, ReturnStatus: ReturnNotRequested},
				{ProductID: 47, ProductName: "Silk Scrunchie Set", ProductImage: "/img/scrunchie-47.jpg", Quantity: 2, Size: "Free", Color: "Maroon", Price: 350, ReturnStatus: ReturnNotRequested},
			},
		},
		{
			OrderID:        5011,
			UserID:         204,
			CreatedAt:      now.Add(-26 * time.Hour),
			PaymentMethod:  PaymentCOD,
			TotalAmount:    1148,
			OrderStatus:    StatusPending,
			ShippingStatus: ShippingNotShipped,
			ShippingAddress: `{"name":"Ravi Verma","phone":"9812004455","street":"B-22 Lajpat Nagar",` +
				`"city":"New Delhi","state":"Delhi","pincode":"110024"}`,
			Items: []Item{
				{ProductID: 12, ProductName: "Oxidised Jhumka", ProductImage: "/img/jhumka-12.jpg", Quantity: 1, Size: "Free", Color: "Silver", Price: 1099, ReturnStatus: ReturnNotRequested},
			},
		},
		{
			OrderID:        5009,
			UserID:         87,
			CreatedAt:      now.Add(-3 * 24 * time.Hour),
			PaymentMethod:  "razorpay",
			TotalAmount:    3598,
			OrderStatus:    StatusCompleted,
			ShippingStatus: ShippingShipped,
			TrackingNumber: "NE88231945IN",
			CourierService: "Delhivery",
			ShippingAddress: `{"name":"Meera Iyer","phone":"9944002211","street":"7 Besant Road",` +
				`"city":"Chennai","state":"Tamil Nadu","pincode":"600004"}`,
			Items: []Item{
				{ProductID: 55, ProductName: "Kundan Choker", ProductImage: "/img/choker-55.jpg", Quantity: 1, Size: "Free", Color: "Gold", Price: 2999, ReturnStatus: ReturnRequested, ReturnReason: "Clasp arrived broken"},
				{ProductID: 47, ProductName: "Silk Scrunchie Set", ProductImage: "/img/scrunchie-47.jpg", Quantity: 1, Size: "Free", Color: "Teal", Price: 350, ReturnStatus: ReturnRequested},
			},
		},
		{
			OrderID:        5006,
			UserID:         151,
			CreatedAt:      now.Add(-6 * 24 * time.Hour),
			PaymentMethod:  PaymentCOD,
			TotalAmount:    899,
			OrderStatus:    StatusCompleted,
			ShippingStatus: ShippingDelivered,
			TrackingNumber: "NE88103772IN",
			CourierService: "India Post",
			ShippingAddress: `{"name":"Farhan Khan","phone":"9822113344","street":"3 Hill View Colony",` +
				`"city":"Pune","state":"Maharashtra","pincode":"411001"}`,
			Items: []Item{
				{ProductID: 23, ProductName: "Beaded Anklet Pair", ProductImage: "/img/anklet-23.jpg", Quantity: 1, Size: "Free", Color: "Multicolour", Price: 899, ReturnStatus: ReturnApproved, ReturnReason: "Size did not fit"},
			},
		},
	}

	return &StaticService{orders: orders}
}

// List returns a copy of the seeded collection in insertion order.
func (s *StaticService) List(_ context.Context, _ string) ([]Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Order(nil), s.orders...), nil
}

// Ship marks the order shipped with a deterministic tracking number.
func (s *StaticService) Ship(_ context.Context, _ string, orderID int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		if s.orders[i].Shipped() {
			return Order{}, ErrAlreadyShipped
		}
		s.orders[i].ShippingStatus = ShippingShipped
		s.orders[i].TrackingNumber = fmt.Sprintf("NE%08dIN", orderID)
		s.orders[i].CourierService = "Delhivery"
		return s.orders[i], nil
	}
	return Order{}, ErrOrderNotFound
}

// RequestReturn flags the matching line item as Requested.
func (s *StaticService) RequestReturn(_ context.Context, _ string, orderID, productID int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		for j := range s.orders[i].Items {
			if s.orders[i].Items[j].ProductID == productID {
				s.orders[i].Items[j].ReturnStatus = ReturnRequested
			}
		}
		return s.orders[i], nil
	}
	return Order{}, ErrOrderNotFound
}

// ResolveReturn applies the decision to every item and acknowledges with a
// message, mirroring the real backend's contract.
func (s *StaticService) ResolveReturn(_ context.Context, _ string, orderID int, decision ReturnDecision) (string, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return "", ErrUnknownDecision
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].OrderID != orderID {
			continue
		}
		if s.orders[i].ReturnState() != ReturnRequested {
			return "", ErrReturnNotRequested
		}
		for j := range s.orders[i].Items {
			s.orders[i].Items[j].ReturnStatus = decision.Status()
		}
		return fmt.Sprintf("Return %s for order %d", decision.Status(), orderID), nil
	}
	return "", ErrOrderNotFound
}
