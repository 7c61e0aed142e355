package exports

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"github.com/data-center-bgp/po-bunker/models"
)

// renderOrderVoucherPDF lays out an A4 voucher for one purchase order with
// a code128 barcode of the PO number.
func renderOrderVoucherPDF(order models.PurchaseOrder) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Purchase Order Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 28)
	pdf.CellFormat(0, 14, "Purchase Order", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, order.Name, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	writeVoucherField(pdf, "Order Type", order.OrderType)
	writeVoucherField(pdf, "Customer", order.Partner.Name)
	writeVoucherField(pdf, "Order Date", order.DateOrder)
	writeVoucherField(pdf, "Planned Date", order.DatePlanned)
	writeVoucherField(pdf, "Status", order.State)

	if len(order.Lines) > 0 {
		first := order.Lines[0]
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, "Order Line", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		writeVoucherField(pdf, "Vessel", first.Vessel.Name)
		writeVoucherField(pdf, "Product", first.Product.Name)
		writeVoucherField(pdf, "Quantity", strconv.FormatFloat(first.Quantity, 'f', -1, 64))
		writeVoucherField(pdf, "Unit Price", strconv.FormatFloat(first.PriceUnit, 'f', -1, 64))
	}

	if order.Name != "" {
		barcodePNG, err := renderCode128PNG(order.Name, 900, 200)
		if err != nil {
			return nil, err
		}
		opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		imageName := fmt.Sprintf("order-barcode-%d", order.ID)
		pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))

		pageW, _ := pdf.GetPageSize()
		imgW := 140.0
		imgH := 32.0
		x := (pageW - imgW) / 2
		y := 220.0
		pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

		pdf.SetY(y + imgH + 4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, order.Name, "", 1, "C", false, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeVoucherField(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		value = "-"
	}
	pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encode barcode: %w", err)
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode barcode png: %w", err)
	}
	return buf.Bytes(), nil
}
