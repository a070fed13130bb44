// Package receipt renders a booking receipt as a single-page PDF with a QR
// code carrying the booking reference.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the PDF for a booking. Receipts are available for any
// booking that has been paid at some point, so cancelled and completed
// trips keep theirs.
func (g *Generator) Generate(b *domain.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "TAXIGO BOOKING RECEIPT")
	pdf.Ln(20)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Ref: %s", b.Ref))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Passenger: %s", b.PassengerName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Seats: %d", b.Seats))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", domain.FormatMoney(b.Total)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", b.Status))

	qrBytes, err := qrcode.Encode(b.Ref, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this QR code to your driver when boarding.")
	pdf.Ln(10)

	drawSectionTitle(pdf, "TRIP DETAILS")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Taxi: %s", b.TaxiName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Driver: %s", b.DriverName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Route: %s to %s", b.Origin, b.Dest))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Departure: %s", b.TimeLabel))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Pickup: %s", b.PickupType))
	if b.PickupAt != "" {
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Pickup point: %s", b.PickupAt))
	}
	pdf.Ln(10)

	drawSectionTitle(pdf, "PAYMENT")
	pdf.SetFont("Helvetica", "", 12)
	if b.PaidAt != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Paid at: %s", b.PaidAt.Format("02 Jan 2006 15:04")))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %s", domain.FormatMoney(b.Total)))
	if b.CancellationFee > 0 {
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("Cancellation fee: %s", domain.FormatMoney(b.CancellationFee)))
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "TaxiGo - shared rides, booked seats.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func drawSectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
}
