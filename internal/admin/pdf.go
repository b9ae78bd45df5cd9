package admin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// pdfCurrency replaces the Devanagari sign, which the core PDF fonts lack.
const pdfCurrency = "Rs."

var billColumns = []struct {
	title string
	width float64
	align string
}{
	{"Item", 90, "L"},
	{"Qty", 20, "R"},
	{"Price", 35, "R"},
	{"Sub-Total", 35, "R"},
}

// WriteBillPDF renders the bill as an A4 PDF with a QR code of the order id.
func WriteBillPDF(w io.Writer, b Bill) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Bill - "+b.OrderID, true)
	pdf.AddPage()

	pdf.SetFont("Times", "B", 24)
	pdf.CellFormat(0, 12, tr(b.StoreName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr(b.StoreAddress), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr("Bill - "+b.OrderID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	top := pdf.GetY()
	if b.OrderID != "" {
		png, err := qrcode.Encode(b.OrderID, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("failed to encode qr code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("order-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("order-qr", 165, top, 30, 30, false, opts, 0, "")
	}

	contact := [][2]string{
		{"Name", b.Name},
		{"Email", b.Email},
		{"Phone", b.Phone},
		{"Address", b.Address},
	}
	for _, c := range contact {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(25, 7, c[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(120, 7, tr(c[1]), "", 1, "L", false, 0, "")
	}
	pdf.SetY(max(pdf.GetY(), top+32) + 4)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	for _, col := range billColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	for _, l := range b.Lines {
		cells := billCells(l)
		cells[0] = tr(cells[0])
		for i, col := range billColumns {
			pdf.CellFormat(col.width, 8, cells[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, billTotal(b), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, tr("Placed: "+b.Placed), "", 1, "L", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("failed to build bill pdf: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// billCells prints prices from their numeric value, so currency signs in
// stored prices never reach the core fonts.
func billCells(l BillLine) []string {
	return []string{
		l.Name,
		fmt.Sprintf("%d", l.Quantity),
		pdfCurrency + " " + l.PriceText(),
		pdfCurrency + " " + l.SubtotalText(),
	}
}

func billTotal(b Bill) string {
	return "Total: " + pdfCurrency + " " + b.TotalText()
}
