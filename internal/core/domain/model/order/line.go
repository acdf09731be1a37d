package order

import "winetrade/internal/core/domain/model/offer"

// Line is an immutable snapshot of one offer line at the moment the order was
// created. The wine identity and prices are denormalized so that later edits
// to catalog data cannot retroactively alter a confirmed order.
type Line struct {
	WineName   string
	Producer   string
	Vintage    int
	Quantity   int
	Unit       string
	UnitPrice  float64
	TotalPrice float64
	LineNumber int
}

// snapshotLines freezes offer lines into order lines, numbering them
// sequentially from 1.
func snapshotLines(offerLines []offer.Line) []Line {
	lines := make([]Line, 0, len(offerLines))
	for i, src := range offerLines {
		lines = append(lines, Line{
			WineName:   src.WineName,
			Producer:   src.Producer,
			Vintage:    src.Vintage,
			Quantity:   src.Quantity,
			Unit:       src.Unit,
			UnitPrice:  src.UnitPrice,
			TotalPrice: src.Total(),
			LineNumber: i + 1,
		})
	}
	return lines
}
