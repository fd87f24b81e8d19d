package catalog

import (
	"context"
	"sync"
)

// StaticService keeps an in-memory catalog for local development.
type StaticService struct {
	mu       sync.Mutex
	nextID   int
	products []Product
}

// NewStaticService seeds the development catalog.
func NewStaticService() *StaticService {
	return &StaticService{
		nextID: 104,
		products: []Product{
			{
				ID:        101,
				Name:      "Kumkumadi Face Oil",
				Category:  "Skincare",
				MainImage: "/static/img/kumkumadi-oil.jpg",
				Discount:  10,
				Variants: []Variant{
					{Size: "30ml", Price: 899, Stock: 42},
					{Size: "50ml", Price: 1299, Stock: 18},
				},
				ProductDetails: map[string]string{"Shelf life": "24 months"},
			},
			{
				ID:        102,
				Name:      "Rose Water Toner",
				Category:  "Skincare",
				MainImage: "/static/img/rose-toner.jpg",
				Variants: []Variant{
					{Size: "100ml", Price: 349, Stock: 4},
				},
			},
			{
				ID:        103,
				Name:      "Ubtan Body Scrub",
				Category:  "Bath & Body",
				MainImage: "/static/img/ubtan-scrub.jpg",
				Discount:  5,
				Variants: []Variant{
					{Size: "200g", Price: 499, Stock: 64},
					{Size: "400g", Price: 849, Stock: 31},
				},
			},
		},
	}
}

// Products implements Service.
func (s *StaticService) Products(ctx context.Context, token string) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Create implements Service.
func (s *StaticService) Create(ctx context.Context, token string, input ProductInput) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := productFromInput(0, input)
	created.ID = s.nextID
	s.nextID++
	s.products = append(s.products, created)
	return created, nil
}

// Update implements Service.
func (s *StaticService) Update(ctx context.Context, token string, productID int, input ProductInput) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID != productID {
			continue
		}
		updated := productFromInput(productID, input)
		updated.MainImage = p.MainImage
		updated.Thumbnails = p.Thumbnails
		if input.MainImage != nil {
			updated.MainImage = "/static/img/uploads/" + input.MainImage.Filename
		}
		s.products[i] = updated
		return updated, nil
	}
	return Product{}, ErrProductNotFound
}

// Delete implements Service.
func (s *StaticService) Delete(ctx context.Context, token string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// SetStock adjusts one variant's stock, for exercising the stock watcher in
// development.
func (s *StaticService) SetStock(productID int, variantIndex, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID != productID || variantIndex < 0 || variantIndex >= len(p.Variants) {
			continue
		}
		variants := make([]Variant, len(p.Variants))
		copy(variants, p.Variants)
		variants[variantIndex].Stock = stock
		s.products[i].Variants = variants
		return
	}
}

func productFromInput(id int, input ProductInput) Product {
	p := Product{
		ID:             id,
		Name:           input.Name,
		Category:       input.Category,
		Discount:       input.Discount,
		Description:    input.Description,
		ProductDetails: input.ProductDetails,
	}
	p.Variants = make([]Variant, len(input.Variants))
	copy(p.Variants, input.Variants)
	if input.MainImage != nil {
		p.MainImage = "/static/img/uploads/" + input.MainImage.Filename
	}
	for _, thumb := range input.Thumbnails {
		p.Thumbnails = append(p.Thumbnails, "/static/img/uploads/"+thumb.Filename)
	}
	return p
}
