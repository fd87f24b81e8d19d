// Package salesview builds the display models for the sales report page:
// best and worst seller callouts plus the per-product stock alert table.
package salesview

import (
	"sort"

	"nainikaessentials.in/admin/internal/admin/sales"
	"nainikaessentials.in/admin/internal/admin/views/helpers"
)

// Callout is the best or worst seller highlight.
type Callout struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	UnitsSold string `json:"unitsSold"`
}

// AlertRow is one product in the stock table.
type AlertRow struct {
	ProductID int              `json:"productId"`
	Name      string           `json:"name"`
	Category  string           `json:"category"`
	UnitsSold int              `json:"unitsSold"`
	Level     sales.StockLevel `json:"level"`
	Status    string           `json:"status"`
}

// Page is the full report view model.
type Page struct {
	Best   *Callout   `json:"best,omitempty"`
	Worst  *Callout   `json:"worst,omitempty"`
	Alerts []AlertRow `json:"alerts"`
}

// Build derives the page from a sales report. Rows needing attention
// (Critical, then Low) sort ahead of healthy ones; ties keep report order.
func Build(report sales.Report) Page {
	page := Page{
		Best:  callout(report.HighestSelling),
		Worst: callout(report.LowestSelling),
	}
	page.Alerts = make([]AlertRow, 0, len(report.AllProducts))
	for _, p := range report.AllProducts {
		status := p.StockStatus()
		page.Alerts = append(page.Alerts, AlertRow{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			UnitsSold: p.TotalSold,
			Level:     status.Level,
			Status:    status.Label(),
		})
	}
	sortAlerts(page.Alerts)
	return page
}

func callout(p *sales.Product) *Callout {
	if p == nil {
		return nil
	}
	return &Callout{
		Name:      p.Name,
		Category:  p.Category,
		UnitsSold: helpers.Count(p.TotalSold) + " sold",
	}
}

var levelRank = map[sales.StockLevel]int{
	sales.StockCritical: 0,
	sales.StockLow:      1,
	sales.StockUnknown:  2,
	sales.StockGood:     3,
}

// sortAlerts keeps the report's order inside each severity band.
func sortAlerts(rows []AlertRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return levelRank[rows[i].Level] < levelRank[rows[j].Level]
	})
}
