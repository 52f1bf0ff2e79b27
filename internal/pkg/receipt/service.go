// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-cart/internal/config"
	"github.com/your-org/storefront-cart/internal/domain/checkout"
)

// ErrPDFDisabled is returned by GeneratePDF when PDF receipts are turned off
var ErrPDFDisabled = errors.New("pdf receipts are disabled")

const confirmationTitle = "Order Placed Successfully!"

// Service renders order confirmations and receipts
type Service struct {
	store config.CheckoutConfig
	pdf   config.ReceiptConfig
	tmpl  *template.Template
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		store: cfg.Checkout,
		pdf:   cfg.Receipt,
		tmpl:  template.Must(template.New("receipt").Parse(receiptTemplate)),
	}
}

// Confirm builds the confirmation shown after an order is placed
func (s *Service) Confirm(ctx context.Context, record *checkout.OrderRecord) (*checkout.Confirmation, error) {
	htmlContent, err := s.generateHTML(record)
	if err != nil {
		return nil, err
	}

	return &checkout.Confirmation{
		Record:  record,
		Title:   confirmationTitle,
		Message: Message(record),
		HTML:    htmlContent,
	}, nil
}

// Message is the one-line confirmation text for the order's fulfillment method
func Message(record *checkout.OrderRecord) string {
	if record.Method == checkout.MethodPickup {
		return fmt.Sprintf("Thank you, %s! Your order %s for a total of %s has been confirmed. It will be available for pickup at our store.",
			record.Name, record.OrderNumber, record.Totals.Total)
	}

	address := ""
	if record.Address != nil {
		address = *record.Address
	}
	return fmt.Sprintf("Thank you, %s! Your order %s for a total of %s has been confirmed. We will deliver it to %s.",
		record.Name, record.OrderNumber, record.Totals.Total, address)
}

// GeneratePDF converts the receipt of an order into a PDF document
func (s *Service) GeneratePDF(record *checkout.OrderRecord) (*bytes.Buffer, error) {
	if !s.pdf.PDFEnabled {
		return nil, ErrPDFDisabled
	}

	htmlContent, err := s.generateHTML(record)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(s.pdf.DPI)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA5)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(record *checkout.OrderRecord) (string, error) {
	data := receiptData{
		StoreName:    s.store.StoreName,
		StoreAddress: s.store.StoreAddress,
		Record:       record,
		PlacedAt:     record.PlacedAt.Format("January 2, 2006 15:04 MST"),
		Message:      Message(record),
	}

	for _, e := range record.Items {
		data.Lines = append(data.Lines, receiptLine{
			Name:      e.Name,
			Quantity:  e.Quantity,
			UnitPrice: record.Summary.Money(e.UnitPrice()),
			Total:     record.Summary.Money(e.LineTotal()),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

type receiptData struct {
	StoreName    string
	StoreAddress string
	Record       *checkout.OrderRecord
	PlacedAt     string
	Message      string
	Lines        []receiptLine
}

type receiptLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Record.OrderNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { border-bottom: 2px solid #eee; padding-bottom: 16px; margin-bottom: 24px; }
        .title { font-size: 24px; font-weight: bold; color: #ff523b; }
        .items { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
        .items th, .items td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        .items .num { text-align: right; }
        .totals { width: 100%; }
        .totals td { padding: 6px 8px; text-align: right; }
        .total-row td { font-size: 18px; font-weight: bold; border-top: 2px solid #333; }
        .footer { margin-top: 32px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="title">{{.StoreName}}</div>
        {{if .StoreAddress}}<p>{{.StoreAddress}}</p>{{end}}
        <p><strong>Order #:</strong> {{.Record.OrderNumber}}</p>
        <p><strong>Placed:</strong> {{.PlacedAt}}</p>
        <p><strong>Name:</strong> {{.Record.Name}}</p>
        <p><strong>Phone:</strong> {{.Record.Phone}}</p>
        {{if .Record.Address}}<p><strong>Address:</strong> {{.Record.Address}}</p>{{end}}
        <p><strong>Fulfillment:</strong> {{.Record.Totals.MethodName}}</p>
    </div>

    <table class="items">
        <thead>
            <tr>
                <th>Product</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range .Lines}}
            <tr>
                <td>{{.Name}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{.UnitPrice}}</td>
                <td class="num">{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <table class="totals">
        <tr><td>{{.Record.Totals.SubtotalLabel}}</td><td>{{.Record.Totals.Subtotal}}</td></tr>
        <tr><td>{{.Record.Totals.ShippingLabel}}</td><td>{{.Record.Totals.ShippingCost}}</td></tr>
        <tr class="total-row"><td>Total</td><td>{{.Record.Totals.Total}}</td></tr>
    </table>

    <div class="footer">
        <p>{{.Message}}</p>
    </div>
</body>
</html>
`
