package domain

import (
	"strconv"
	"time"
)

// SaleDateLayout is the date format used in sales datasets
const SaleDateLayout = "2006-01-02"

// SaleColumns is the header of a sales dataset, in file order
var SaleColumns = []string{"Date", "Product", "Sales", "Region", "Salesperson"}

// SaleRecord is one sales transaction
type SaleRecord struct {
	Date        time.Time `json:"date" csv:"Date" validate:"required"`
	Product     string    `json:"product" csv:"Product" validate:"required"`
	Sales       float64   `json:"sales" csv:"Sales" validate:"gte=0"`
	Region      string    `json:"region" csv:"Region" validate:"required"`
	Salesperson string    `json:"salesperson" csv:"Salesperson" validate:"required"`
}

// Row renders the record in SaleColumns order
func (r SaleRecord) Row() []string {
	return []string{
		r.Date.Format(SaleDateLayout),
		r.Product,
		strconv.FormatFloat(r.Sales, 'f', 2, 64),
		r.Region,
		r.Salesperson,
	}
}
