package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Calphius18/service-provider/internal/catalog"
)

// flexID decodes a JSON number or a quoted numeric string. The marketplace
// API is loose about id types, so every id is normalized to int64 at this
// boundary.
type flexID int64

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("id %q: %w", s, err)
		}
		*f = flexID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n)
	return nil
}

func (f flexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

type wireLocation struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

type wireProvider struct {
	ID              flexID       `json:"id"`
	Name            string       `json:"name"`
	CategoryID      flexID       `json:"categoryId"`
	Rating          float64      `json:"rating"`
	PricePerHour    float64      `json:"pricePerHour"`
	ExperienceYears int          `json:"experienceYears"`
	Description     string       `json:"description"`
	Image           string       `json:"image"`
	Gallery         []string     `json:"gallery,omitempty"`
	Location        wireLocation `json:"location"`
}

func (w wireProvider) toDomain() catalog.Provider {
	return catalog.Provider{
		ID:              int64(w.ID),
		Name:            w.Name,
		CategoryID:      int64(w.CategoryID),
		Rating:          w.Rating,
		PricePerHour:    w.PricePerHour,
		ExperienceYears: w.ExperienceYears,
		Description:     w.Description,
		Image:           w.Image,
		Gallery:         w.Gallery,
		Location: catalog.Location{
			Lat:  w.Location.Lat,
			Lng:  w.Location.Lng,
			City: w.Location.City,
		},
	}
}

type wireCategory struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (w wireCategory) toDomain() catalog.Category {
	return catalog.Category{ID: int64(w.ID), Name: w.Name, Icon: w.Icon}
}

type wireBooking struct {
	ID         flexID  `json:"id,omitempty"`
	ProviderID flexID  `json:"providerId"`
	UserID     flexID  `json:"userId"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Hours      int     `json:"hours"`
	TotalCost  float64 `json:"totalCost"`
	Status     string  `json:"status"`
}

func toWireBooking(b catalog.Booking) wireBooking {
	return wireBooking{
		ID:         flexID(b.ID),
		ProviderID: flexID(b.ProviderID),
		UserID:     flexID(b.UserID),
		Date:       b.Date,
		Time:       b.Time,
		Hours:      b.Hours,
		TotalCost:  b.TotalCost,
		Status:     string(b.Status),
	}
}

func (w wireBooking) toDomain() catalog.Booking {
	return catalog.Booking{
		ID:         int64(w.ID),
		ProviderID: int64(w.ProviderID),
		UserID:     int64(w.UserID),
		Date:       w.Date,
		Time:       w.Time,
		Hours:      w.Hours,
		TotalCost:  w.TotalCost,
		Status:     catalog.BookingStatus(w.Status),
	}
}
