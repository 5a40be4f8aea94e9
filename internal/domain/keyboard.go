package domain

// Keyboard is a catalog product as stored in the keyboard table.
type Keyboard struct {
	ID    int64
	Name  string
	Brand string
	Model string
	Image string
}

// KeyboardVariant is one colourway of a keyboard joined with the keyboard's
// product fields. ID is the keyboard_details id, not the keyboard id.
type KeyboardVariant struct {
	Color string
	ID    int64
	Name  string
	Image string
	Model string
	Brand string
}

// KeyboardDetail is a keyboard left-joined with one of its detail rows.
// A keyboard without any detail rows yields a single KeyboardDetail with a
// nil ID and Color.
type KeyboardDetail struct {
	ID         *int64
	KeyboardID int64
	Name       string
	Brand      string
	Model      string
	Image      string
	Color      *string
}

// HasVariant reports whether the row carries keyboard_details columns.
func (d KeyboardDetail) HasVariant() bool {
	return d.ID != nil
}

// ComparisonEntry is one row of the comparison_table for a keyboard variant.
// Attribute columns are optional in the catalog and therefore nullable.
type ComparisonEntry struct {
	ID                int64
	KeyboardDetailsID int64
	SwitchType        *string
	Layout            *string
	Connectivity      *string
	KeycapMaterial    *string
	Price             *float64
}
