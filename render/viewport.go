package render

import "math"

// Terminal cells are roughly twice as tall as wide
const cellAspect = 2.0

// Reserved rows: status bar on top, floor line and hint line below
const (
	statusRows = 1
	bottomRows = 2
)

// Viewport maps the continuous play field onto terminal cells
type Viewport struct {
	OffsetX, OffsetY int // first field cell on screen
	Cols, Rows       int
	FieldW, FieldH   float64
	ScaleX, ScaleY   float64 // field units per column and per row
}

// NewViewport fits a fieldW x fieldH field into a screen, centered horizontally
// One column on each side is kept for the walls
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	availCols := max(screenW-2, 1)
	availRows := max(screenH-statusRows-bottomRows, 1)

	// Field units per row when preserving the field's aspect on screen
	unit := math.Max(fieldH/float64(availRows), cellAspect*fieldW/float64(availCols))
	cols := max(int(math.Floor(fieldW*cellAspect/unit)), 1)
	rows := max(int(math.Floor(fieldH/unit)), 1)

	return Viewport{
		OffsetX: (screenW - cols) / 2,
		OffsetY: statusRows,
		Cols:    cols,
		Rows:    rows,
		FieldW:  fieldW,
		FieldH:  fieldH,
		ScaleX:  fieldW / float64(cols),
		ScaleY:  fieldH / float64(rows),
	}
}

// FieldToCell returns the screen cell containing field point (x, y)
// The far wall and floor edges map to the last column and row
func (v Viewport) FieldToCell(x, y float64) (col, row int) {
	c := int(math.Floor(x / v.ScaleX))
	if x == v.FieldW {
		c = v.Cols - 1
	}
	rw := int(math.Floor(y / v.ScaleY))
	if y == v.FieldH {
		rw = v.Rows - 1
	}
	return v.OffsetX + c, v.OffsetY + rw
}

// CellCenter returns the field coordinates of a cell's center
func (v Viewport) CellCenter(col, row int) (x, y float64) {
	x = (float64(col-v.OffsetX) + 0.5) * v.ScaleX
	y = (float64(row-v.OffsetY) + 0.5) * v.ScaleY
	return x, y
}

// ColumnToFieldX converts a screen column to the field x at the column center
// ok is false for columns outside the field
func (v Viewport) ColumnToFieldX(col int) (x float64, ok bool) {
	if col < v.OffsetX || col >= v.OffsetX+v.Cols {
		return 0, false
	}
	x, _ = v.CellCenter(col, v.OffsetY)
	return x, true
}

// InField reports whether the cell lies inside the drawn field
func (v Viewport) InField(col, row int) bool {
	return col >= v.OffsetX && col < v.OffsetX+v.Cols &&
		row >= v.OffsetY && row < v.OffsetY+v.Rows
}
