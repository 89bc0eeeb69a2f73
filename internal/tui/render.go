package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Calphius18/service-provider/internal/catalog"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	chipStyle     = lipgloss.NewStyle().Padding(0, 1)
	chipOnStyle   = lipgloss.NewStyle().Padding(0, 1).Reverse(true).Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	headlineStyle = lipgloss.NewStyle().Bold(true)
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDetail:
		body = a.renderDetail()
	case viewBookings:
		body = a.renderBookings()
	default:
		body = a.renderHome()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func (a *App) renderHome() string {
	title := titleStyle.Render("Service Finder")
	if a.loading {
		return title + "\nloading..."
	}
	if len(a.providers) == 0 {
		out := title + "\nNo providers available\n[r] Refresh  [q] Quit"
		if a.status != "" {
			out += "\n" + a.status
		}
		return out
	}

	out := title + "\n" + a.renderChips() + "\n"
	if line := a.filterLine(); line != "" {
		out += faintStyle.Render(line) + "\n"
	}

	rows := a.rows()
	out += headlineStyle.Render("Available Providers") + "\n"
	if len(rows) == 0 {
		out += "  (no providers match)\n"
	}
	for i, row := range rows {
		marker := " "
		if i == a.listCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %s\n", marker, listingLine(row, a.currency))
	}

	if a.searching {
		out += "search: " + a.search + "▌\n"
	}
	out += "[enter] Details  [←/→] Category  [f] Rating  [/] Search  [v] Bookings  [r] Refresh  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderChips() string {
	chips := make([]string, 0, len(a.categories)+1)
	style := chipStyle
	if a.catCursor == 0 {
		style = chipOnStyle
	}
	chips = append(chips, style.Render("All"))
	for i, c := range a.categories {
		style = chipStyle
		if a.catCursor == i+1 {
			style = chipOnStyle
		}
		chips = append(chips, style.Render(c.Name))
	}
	return strings.Join(chips, " ")
}

func (a *App) filterLine() string {
	var parts []string
	if a.criteria.MinRating != nil {
		parts = append(parts, fmt.Sprintf("rating ≥ %s", trimFloat(*a.criteria.MinRating)))
	}
	if a.search != "" && !a.searching {
		parts = append(parts, "name ~ "+a.search)
	}
	if len(parts) == 0 {
		return ""
	}
	return "filters: " + strings.Join(parts, ", ")
}

func (a *App) renderDetail() string {
	p := a.detail
	title := titleStyle.Render(p.Name)

	categoryName := "Unknown"
	if a.detailCategory != nil {
		categoryName = a.detailCategory.Name
	}
	city := p.Location.City
	if city == "" {
		city = "No city"
	}

	out := title + "\n"
	out += faintStyle.Render(categoryName+" • "+city) + "\n\n"
	out += fmt.Sprintf("%d years of experience\n", p.ExperienceYears)
	out += fmt.Sprintf("%s %s · %s/hr\n\n", ratingStars(p.Rating), trimFloat(p.Rating), formatMoney(a.currency, p.PricePerHour))
	if p.Description != "" {
		out += p.Description + "\n"
	}
	if len(p.Gallery) > 0 {
		out += "\n" + headlineStyle.Render("Work Gallery") + "\n"
		for _, item := range p.Gallery {
			out += "  - " + item + "\n"
		}
	}
	out += fmt.Sprintf("\nLocation: %.4f, %.4f\n", p.Location.Lat, p.Location.Lng)
	out += "\n[b] Book  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderBookings() string {
	title := titleStyle.Render("Your Bookings")
	out := title + "\n"
	if a.loading {
		return out + "loading..."
	}
	if len(a.history) == 0 {
		out += "No bookings yet.\n"
	}
	for _, b := range a.history {
		out += fmt.Sprintf("#%d  provider %d  %s %s  %dh  %s  [%s]\n",
			b.ID, b.ProviderID, b.Date, b.Time, b.Hours, formatMoney(a.currency, b.TotalCost), b.Status)
	}
	if n := len(a.store.Bookings()); n > 0 {
		out += faintStyle.Render(fmt.Sprintf("confirmed this session: %d", n)) + "\n"
	}
	out += "[r] Reload  [esc] Back  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalRatingFilter:
		out := titleStyle.Render("Filter by Rating") + "\n"
		out += "Enter a minimum rating (1-5); anything else clears the filter.\n"
		out += "rating: " + a.ratingInput + "▌\n"
		out += "[enter] Apply  [c] Clear  [esc] Cancel"
		return out
	case modalBookingForm:
		dateMarker, hoursMarker := "▶", " "
		if a.bookingField == 1 {
			dateMarker, hoursMarker = " ", "▶"
		}
		total := a.previewTotal()
		out := titleStyle.Render("Book "+a.detail.Name) + "\n"
		out += fmt.Sprintf("%s Date & time: %s\n", dateMarker, a.bookingDate)
		out += fmt.Sprintf("%s Hours:       %s\n", hoursMarker, a.bookingHours)
		out += fmt.Sprintf("Total cost: %s\n", formatMoney(a.currency, total))
		out += "[tab] Switch field  [enter] Confirm booking  [esc] Cancel"
		return out
	case modalBookingDone:
		b := a.lastBooking
		out := titleStyle.Render("Booking confirmed") + "\n"
		out += fmt.Sprintf("#%d  %s %s  %dh  %s  [%s]\n", b.ID, b.Date, b.Time, b.Hours, formatMoney(a.currency, b.TotalCost), b.Status)
		out += "[enter] Close"
		return out
	default:
		return ""
	}
}

// previewTotal mirrors the builder's clamp so the form shows the cost that
// would actually be submitted.
func (a *App) previewTotal() float64 {
	hours, err := strconv.Atoi(strings.TrimSpace(a.bookingHours))
	if err != nil {
		hours = 1
	}
	return a.detail.PricePerHour * float64(catalog.ClampHours(hours))
}

func listingLine(row catalog.Listing, currency string) string {
	p := row.Provider
	return fmt.Sprintf("%-28s %s %s  %s/hr  %-14s %s",
		p.Name, ratingStars(p.Rating), trimFloat(p.Rating),
		formatMoney(currency, p.PricePerHour), p.Location.City, row.Category.Name)
}

// ratingStars renders a 5-star scale, rounding to the nearest star.
func ratingStars(rating float64) string {
	full := int(rating + 0.5)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// formatMoney renders an amount without trailing zero cents: ₦2000, ₦1500.5.
func formatMoney(currency string, v float64) string {
	return currency + trimFloat(v)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
