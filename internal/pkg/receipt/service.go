// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/your-org/foodhub-storefront/internal/config"
	"github.com/your-org/foodhub-storefront/internal/domain/checkout"
	"github.com/your-org/foodhub-storefront/internal/pkg/money"
)

var ErrPDFDisabled = errors.New("receipt: pdf rendering is disabled")

// Renderer turns a checkout receipt into a printable document
type Renderer struct {
	brand      string
	currency   string
	taxRate    decimal.Decimal
	pdfEnabled bool
	tmpl       *template.Template
}

// NewRenderer creates a renderer using the storefront branding and currency
func NewRenderer(cfg *config.Config) *Renderer {
	r := &Renderer{
		brand:      "FoodHub",
		currency:   cfg.Catalog.CurrencySymbol,
		taxRate:    decimal.NewFromFloat(cfg.Checkout.TaxRate),
		pdfEnabled: cfg.Receipt.PDFEnabled,
	}
	r.tmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
		"amount": func(d decimal.Decimal) string { return money.FormatFixed(r.currency, d) },
	}).Parse(receiptTemplate))
	return r
}

// PDFEnabled reports whether PDF output is available
func (r *Renderer) PDFEnabled() bool {
	return r.pdfEnabled
}

// HTML renders rec as a standalone HTML page
func (r *Renderer) HTML(rec checkout.Receipt) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.data(rec)); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders rec through wkhtmltopdf
func (r *Renderer) PDF(rec checkout.Receipt) ([]byte, error) {
	if !r.pdfEnabled {
		return nil, ErrPDFDisabled
	}

	htmlContent, err := r.HTML(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}
	return pdfg.Bytes(), nil
}

func (r *Renderer) data(rec checkout.Receipt) receiptData {
	o := rec.Order
	customer := rec.Customer
	if customer == "" {
		customer = "Guest"
	}

	d := receiptData{
		Brand:        r.brand,
		OrderID:      o.ID,
		Customer:     customer,
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		TaxPercent:   r.taxRate.Shift(2).String(),
		Total:        o.Total,
		PromoCode:    o.PromoCode,
		Discount:     o.Discount,
		PointsEarned: rec.PointsEarned,
		TotalPoints:  rec.TotalPoints,
		Method:       string(o.PaymentMethod),
	}
	if placed, ok := o.PlacedAt(); ok {
		d.Date = placed.Local().Format("January 2, 2006")
		d.Time = placed.Local().Format(time.Kitchen)
	} else {
		d.Date = o.Date
	}
	for _, item := range o.Items {
		d.Items = append(d.Items, receiptLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.LineTotal(),
		})
	}
	return d
}

type receiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

type receiptData struct {
	Brand        string
	OrderID      string
	Date         string
	Time         string
	Customer     string
	Method       string
	Items        []receiptLine
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	TaxPercent   string
	Total        decimal.Decimal
	PromoCode    string
	Discount     decimal.Decimal
	PointsEarned int64
	TotalPoints  int64
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt - {{.Brand}}</title>
    <style>
        body { font-family: Arial, Helvetica, sans-serif; padding: 20px; background: #f5f5f5; }
        .receipt { background: #fff; width: 420px; margin: 0 auto; padding: 20px; box-shadow: 0 0 10px rgba(0,0,0,0.1); }
        h1 { text-align: center; color: #ff4d4d; }
        hr { border: none; border-top: 2px dashed #ccc; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 8px; border-bottom: 1px solid #eee; }
        th { background: #fff3e0; font-weight: bold; }
        .total-row { background: #fff3e0; font-weight: bold; font-size: 16px; }
        .loyalty { margin-top: 12px; padding: 10px; background: #fff7e6; border-radius: 8px; border: 1px solid #ffe0b2; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
<div class="receipt">
    <h1>{{.Brand}} Receipt</h1>
    <hr>
    <p><strong>Order Date:</strong> {{.Date}}</p>
    {{if .Time}}<p><strong>Order Time:</strong> {{.Time}}</p>{{end}}
    {{if .Method}}<p><strong>Payment:</strong> {{.Method}}</p>{{end}}
    <hr>
    <table>
        <thead>
            <tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr>
        </thead>
        <tbody>
            {{range .Items}}
            <tr>
                <td>{{.Name}}</td>
                <td>{{.Quantity}}</td>
                <td>{{amount .UnitPrice}}</td>
                <td>{{amount .Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>
    <hr>
    <table>
        <tr><td><strong>Subtotal:</strong></td><td><strong>{{amount .Subtotal}}</strong></td></tr>
        {{if .PromoCode}}<tr><td><strong>Promo ({{.PromoCode}}):</strong></td><td><strong>-{{amount .Discount}}</strong></td></tr>{{end}}
        <tr><td><strong>Tax ({{.TaxPercent}}%):</strong></td><td><strong>{{amount .Tax}}</strong></td></tr>
        <tr class="total-row"><td>TOTAL:</td><td>{{amount .Total}}</td></tr>
    </table>
    <div class="loyalty">
        <div><strong>Customer:</strong> {{.Customer}}</div>
        <div><strong>Points earned:</strong> {{.PointsEarned}} pts</div>
        <div><strong>Total points:</strong> {{.TotalPoints}} pts</div>
    </div>
    <div class="footer">
        <p>Thank you for ordering from {{.Brand}}!</p>
        <p>Expected delivery time: 30-45 minutes</p>
        <p>Order ID: #{{.OrderID}}</p>
    </div>
</div>
</body>
</html>
`
