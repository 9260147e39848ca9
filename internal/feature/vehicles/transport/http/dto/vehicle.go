// Package dto defines data transfer objects for the vehicles HTTP API.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"digital_mechanic/internal/feature/vehicles/domain/entity"
)

// TimeLayout is the timestamp format used in responses (UTC, milliseconds).
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Year accepts a JSON number or a numeric string.
type Year int

// UnmarshalJSON implements json.Unmarshaler.
func (y *Year) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*y = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*y = 0
			return nil
		}
		b = []byte(s)
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("year: %q is not a number", b)
	}
	if f != float64(int(f)) {
		return fmt.Errorf("year: %v is not a whole number", f)
	}
	*y = Year(f)
	return nil
}

// AddVehicleReq is the body of POST /api/cars.
// Field presence is checked by the usecase so the user id error wins over field errors.
type AddVehicleReq struct {
	Make   string `json:"make"`
	Model  string `json:"model"`
	Year   Year   `json:"year"`
	UserID string `json:"userId"`
}

// VehicleRes is a stored vehicle as returned to clients.
type VehicleRes struct {
	ID        string `json:"_id"`
	UserID    string `json:"userId"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NewVehicleRes converts an entity to its response form.
func NewVehicleRes(v entity.Vehicle) VehicleRes {
	return VehicleRes{
		ID:        v.ID,
		UserID:    v.OwnerID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

// NewVehicleList converts vehicles to responses. The result is never nil.
func NewVehicleList(vs []entity.Vehicle) []VehicleRes {
	out := make([]VehicleRes, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewVehicleRes(v))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
