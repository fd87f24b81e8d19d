package sales

import "context"

// StaticService serves a fixed report for local development.
type StaticService struct{}

// NewStaticService builds the canned report source.
func NewStaticService() *StaticService {
	return &StaticService{}
}

// Report implements Service.
func (s *StaticService) Report(ctx context.Context, token string) (Report, error) {
	report := Report{
		AllProducts: []Product{
			{
				ID:        101,
				Name:      "Kumkumadi Face Oil",
				Category:  "Skincare",
				TotalSold: 412,
				Variants: VariantList{
					{Size: "30ml", Price: 899, Stock: 42},
					{Size: "50ml", Price: 1299, Stock: 18},
				},
			},
			{
				ID:        102,
				Name:      "Rose Water Toner",
				Category:  "Skincare",
				TotalSold: 187,
				Variants: VariantList{
					{Size: "100ml", Price: 349, Stock: 4},
				},
			},
			{
				ID:        103,
				Name:      "Ubtan Body Scrub",
				Category:  "Bath & Body",
				TotalSold: 75,
				Variants: VariantList{
					{Size: "200g", Price: 499, Stock: 64},
					{Size: "400g", Price: 849, Stock: 31},
				},
			},
		},
	}
	return report.Normalize(), nil
}
