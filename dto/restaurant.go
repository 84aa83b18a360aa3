package dto

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var reSort = regexp.MustCompile(`(?i)^[a-z_]+:(asc|desc)$`)

// SortableFields whitelists ORDER BY targets; anything else silently
// falls back to name ascending so listing always succeeds.
var SortableFields = map[string]bool{
	"name":         true,
	"rating":       true,
	"cuisine_type": true,
	"neighborhood": true,
}

type ListQuery struct {
	Page         int
	Limit        int
	CuisineType  string
	Neighborhood string
	Rating       *float64
	Sort         string
}

// ParseListQuery coerces and bounds the listing query string. Fields are
// checked in schema order; out-of-range page/limit values are rejected
// rather than clamped.
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{Page: DefaultPage, Limit: DefaultLimit}

	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return q, apperr.Validation("INVALID_PAGE")
		}
		q.Page = n
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxLimit {
			return q, apperr.Validation("INVALID_LIMIT")
		}
		q.Limit = n
	}

	q.CuisineType = strings.TrimSpace(values.Get("cuisine_type"))
	if len(q.CuisineType) > 100 {
		return q, apperr.Validation("CUISINE_TYPE_TOO_LONG")
	}
	q.Neighborhood = strings.TrimSpace(values.Get("neighborhood"))
	if len(q.Neighborhood) > 100 {
		return q, apperr.Validation("NEIGHBORHOOD_TOO_LONG")
	}

	if raw := values.Get("rating"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return q, apperr.Validation("INVALID_RATING")
		}
		if f < 0 {
			return q, apperr.Validation("RATING_MIN")
		}
		if f > 5 {
			return q, apperr.Validation("RATING_MAX")
		}
		q.Rating = &f
	}

	if raw := values.Get("sort"); raw != "" {
		if !reSort.MatchString(raw) {
			return q, apperr.Validation("INVALID_SORT")
		}
		q.Sort = raw
	}

	return q, nil
}

// Order resolves the validated sort expression against the whitelist.
// Unknown field names fall back to name ascending by design.
func (q ListQuery) Order() (field, dir string) {
	field, dir = "name", "ASC"
	if q.Sort == "" {
		return field, dir
	}
	parts := strings.SplitN(q.Sort, ":", 2)
	if SortableFields[parts[0]] {
		field = parts[0]
	}
	if len(parts) == 2 && strings.EqualFold(parts[1], "desc") {
		dir = "DESC"
	}
	return field, dir
}

type HoursInput struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type CreateRestaurantRequest struct {
	Name         string       `json:"name"`
	Neighborhood *string      `json:"neighborhood"`
	CuisineType  *string      `json:"cuisine_type"`
	Address      *string      `json:"address"`
	Photograph   *string      `json:"photograph"`
	Image        *string      `json:"image"`
	Lat          *float64     `json:"lat"`
	Lng          *float64     `json:"lng"`
	Hours        []HoursInput `json:"hours"`
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

func (r *CreateRestaurantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Neighborhood)
	trimPtr(r.CuisineType)
	trimPtr(r.Address)
	trimPtr(r.Photograph)
	trimPtr(r.Image)
	for i := range r.Hours {
		r.Hours[i].Day = strings.TrimSpace(r.Hours[i].Day)
		r.Hours[i].Hours = strings.TrimSpace(r.Hours[i].Hours)
	}
}

func (r *CreateRestaurantRequest) Validate() error {
	r.Normalize()
	if err := firstViolation(
		validation.Validate(r.Name,
			validation.Required.Error("NAME_REQUIRED"),
			validation.RuneLength(0, 200).Error("NAME_TOO_LONG")),
		validation.Validate(deref(r.Neighborhood),
			validation.RuneLength(0, 100).Error("NEIGHBORHOOD_TOO_LONG")),
		validation.Validate(deref(r.CuisineType),
			validation.RuneLength(0, 100).Error("CUISINE_TYPE_TOO_LONG")),
		validation.Validate(deref(r.Address),
			validation.RuneLength(0, 500).Error("ADDRESS_TOO_LONG")),
		validation.Validate(deref(r.Photograph),
			validation.RuneLength(0, 1000).Error("PHOTOGRAPH_TOO_LONG")),
		validation.Validate(deref(r.Image),
			validation.RuneLength(0, 1000).Error("IMAGE_TOO_LONG")),
	); err != nil {
		return err
	}
	if r.Lat != nil && (*r.Lat < -90 || *r.Lat > 90) {
		return apperr.Validation("INVALID_LAT")
	}
	if r.Lng != nil && (*r.Lng < -180 || *r.Lng > 180) {
		return apperr.Validation("INVALID_LNG")
	}
	return validateHours(r.Hours)
}

func validateHours(hours []HoursInput) error {
	for _, h := range hours {
		if h.Day == "" || len(h.Day) > 20 {
			return apperr.Validation("INVALID_DAY")
		}
		if h.Hours == "" || len(h.Hours) > 100 {
			return apperr.Validation("INVALID_HOURS")
		}
	}
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// UpdateRestaurantRequest distinguishes absent fields (leave unchanged)
// from explicit nulls (clear) per column. An absent hours field keeps the
// existing rows; a present hours field, empty included, replaces them all.
type UpdateRestaurantRequest struct {
	Name         Opt[string]       `json:"name"`
	Neighborhood Opt[string]       `json:"neighborhood"`
	CuisineType  Opt[string]       `json:"cuisine_type"`
	Address      Opt[string]       `json:"address"`
	Photograph   Opt[string]       `json:"photograph"`
	Image        Opt[string]       `json:"image"`
	Lat          Opt[float64]      `json:"lat"`
	Lng          Opt[float64]      `json:"lng"`
	Hours        Opt[[]HoursInput] `json:"hours"`
}

func (r *UpdateRestaurantRequest) Normalize() {
	if r.Name.Valid {
		r.Name.Value = strings.TrimSpace(r.Name.Value)
	}
	for _, o := range []*Opt[string]{&r.Neighborhood, &r.CuisineType, &r.Address, &r.Photograph, &r.Image} {
		if o.Valid {
			o.Value = strings.TrimSpace(o.Value)
		}
	}
	if r.Hours.Valid {
		for i := range r.Hours.Value {
			r.Hours.Value[i].Day = strings.TrimSpace(r.Hours.Value[i].Day)
			r.Hours.Value[i].Hours = strings.TrimSpace(r.Hours.Value[i].Hours)
		}
	}
}

func (r *UpdateRestaurantRequest) Validate() error {
	r.Normalize()
	if r.Name.Set && (!r.Name.Valid || r.Name.Value == "") {
		return apperr.Validation("NAME_REQUIRED")
	}
	if r.Name.Valid && len(r.Name.Value) > 200 {
		return apperr.Validation("NAME_TOO_LONG")
	}
	limits := []struct {
		opt *Opt[string]
		max int
		key string
	}{
		{&r.Neighborhood, 100, "NEIGHBORHOOD_TOO_LONG"},
		{&r.CuisineType, 100, "CUISINE_TYPE_TOO_LONG"},
		{&r.Address, 500, "ADDRESS_TOO_LONG"},
		{&r.Photograph, 1000, "PHOTOGRAPH_TOO_LONG"},
		{&r.Image, 1000, "IMAGE_TOO_LONG"},
	}
	for _, l := range limits {
		if l.opt.Valid && len(l.opt.Value) > l.max {
			return apperr.Validation(l.key)
		}
	}
	if r.Lat.Valid && (r.Lat.Value < -90 || r.Lat.Value > 90) {
		return apperr.Validation("INVALID_LAT")
	}
	if r.Lng.Valid && (r.Lng.Value < -180 || r.Lng.Value > 180) {
		return apperr.Validation("INVALID_LNG")
	}
	if r.Hours.Valid {
		return validateHours(r.Hours.Value)
	}
	return nil
}

// Columns builds the set-if-present column map for the partial update.
func (r *UpdateRestaurantRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.Name.Set {
		cols["name"] = r.Name.Value
	}
	if r.Neighborhood.Set {
		cols["neighborhood"] = r.Neighborhood.Ptr()
	}
	if r.CuisineType.Set {
		cols["cuisine_type"] = r.CuisineType.Ptr()
	}
	if r.Address.Set {
		cols["address"] = r.Address.Ptr()
	}
	if r.Photograph.Set {
		cols["photograph"] = r.Photograph.Ptr()
	}
	if r.Image.Set {
		cols["image"] = r.Image.Ptr()
	}
	if r.Lat.Set {
		cols["lat"] = r.Lat.Ptr()
	}
	if r.Lng.Set {
		cols["lng"] = r.Lng.Ptr()
	}
	return cols
}
