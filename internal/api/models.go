package api

import "github.com/phrazzld/keysfinder-api/internal/domain"

// Response structures. Field names follow the catalog's column names so that
// existing clients keep working.

// KeyboardResponse is a keyboard row.
type KeyboardResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Image string `json:"image"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Data       []KeyboardResponse `json:"data"`
	TotalPages int64              `json:"totalPages"`
}

// KeyboardListResponse is the body of GET /keyboardList.
type KeyboardListResponse struct {
	Data       []KeyboardResponse `json:"data"`
	TotalPages int64              `json:"totalPages"`
}

// DuplicateCheckResponse is the body of GET /checkDuplicateKeyboardId.
type DuplicateCheckResponse struct {
	// KeyboardID echoes the keyboardId query parameter as supplied.
	KeyboardID    string `json:"keyboardId"`
	HasDuplicates bool   `json:"hasDuplicates"`
}

// RandomResponse is the body of GET /random.
type RandomResponse struct {
	Data []KeyboardResponse `json:"data"`
}

// KeyboardVariantResponse is one element of GET /getKeyboards.
// ID is the keyboard_details id.
type KeyboardVariantResponse struct {
	Color string `json:"color"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Model string `json:"model"`
	Brand string `json:"brand"`
}

// KeyboardDetailResponse is one element of GET /getKeyboardDetailById.
// ID and Color are null when the keyboard has no variants.
type KeyboardDetailResponse struct {
	ID         *int64  `json:"id"`
	KeyboardID int64   `json:"keyboard_id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Image      string  `json:"image"`
	Color      *string `json:"color"`
}

// ComparisonResponse is one element of GET /getComparisonsByDetailId.
type ComparisonResponse struct {
	ID                int64    `json:"id"`
	KeyboardDetailsID int64    `json:"keyboard_details_id"`
	SwitchType        *string  `json:"switch_type"`
	Layout            *string  `json:"layout"`
	Connectivity      *string  `json:"connectivity"`
	KeycapMaterial    *string  `json:"keycap_material"`
	Price             *float64 `json:"price"`
}

func keyboardsToResponse(keyboards []domain.Keyboard) []KeyboardResponse {
	out := make([]KeyboardResponse, 0, len(keyboards))
	for _, k := range keyboards {
		out = append(out, KeyboardResponse{
			ID:    k.ID,
			Name:  k.Name,
			Brand: k.Brand,
			Model: k.Model,
			Image: k.Image,
		})
	}
	return out
}

func variantsToResponse(variants []domain.KeyboardVariant) []KeyboardVariantResponse {
	out := make([]KeyboardVariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, KeyboardVariantResponse{
			Color: v.Color,
			ID:    v.ID,
			Name:  v.Name,
			Image: v.Image,
			Model: v.Model,
			Brand: v.Brand,
		})
	}
	return out
}

func detailsToResponse(details []domain.KeyboardDetail) []KeyboardDetailResponse {
	out := make([]KeyboardDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, KeyboardDetailResponse{
			ID:         d.ID,
			KeyboardID: d.KeyboardID,
			Name:       d.Name,
			Brand:      d.Brand,
			Model:      d.Model,
			Image:      d.Image,
			Color:      d.Color,
		})
	}
	return out
}

func comparisonsToResponse(entries []domain.ComparisonEntry) []ComparisonResponse {
	out := make([]ComparisonResponse, 0, len(entries))
	for _, c := range entries {
		out = append(out, ComparisonResponse{
			ID:                c.ID,
			KeyboardDetailsID: c.KeyboardDetailsID,
			SwitchType:        c.SwitchType,
			Layout:            c.Layout,
			Connectivity:      c.Connectivity,
			KeycapMaterial:    c.KeycapMaterial,
			Price:             c.Price,
		})
	}
	return out
}
