// Package invoice renders order invoices as PDF documents.
package invoice

import (
	"bytes"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer implements ports.InvoiceRenderer with gofpdf. The layout
// is a simple one-page table: header, buyer, item rows, total.
type PDFRenderer struct {
	sellerName string
}

func NewPDFRenderer(sellerName string) *PDFRenderer {
	return &PDFRenderer{sellerName: sellerName}
}

// Render produces the invoice for a freshly placed order. The products
// map carries the catalog rows the order was checked out against, keyed
// by product ID; items whose product is missing from the map fall back
// to the bare product ID.
func (r *PDFRenderer) Render(
	o *order.Order,
	retailer *user.User,
	products map[kernel.UUID]*product.Product,
) ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := retailer.Validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, r.sellerName)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice for order #%s", o.ID().String()))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Billed to: %s <%s>", retailer.Name(), retailer.Email()))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Order date: %s", o.OrderDate().Format("2 Jan 2006")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, item := range o.Items() {
		name := item.ProductID().String()
		if p, ok := products[item.ProductID()]; ok {
			name = p.Name()
		}

		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.PriceAtPurchase()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", item.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", o.TotalAmount()), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
