package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Calphius18/service-provider/internal/catalog"
	"github.com/Calphius18/service-provider/internal/config"
	"github.com/Calphius18/service-provider/internal/service"
	"github.com/Calphius18/service-provider/internal/session"
)

// bookingTimeLayout is the input format for the booking form.
const bookingTimeLayout = "2006-01-02 15:04"

// App ties together views.
type App struct {
	ctx      context.Context
	cfg      config.Config
	store    *session.Store
	services Services

	state   appState
	modal   modalState
	loading bool
	status  string

	providers  []catalog.Provider
	categories []catalog.Category
	criteria   catalog.Criteria
	search     string
	searching  bool
	listCursor int
	catCursor  int // 0 = All, i+1 = categories[i]

	detail         catalog.Provider
	detailCategory *catalog.Category

	ratingInput string

	bookingDate  string
	bookingHours string
	bookingField int // 0 = date, 1 = hours
	lastBooking  catalog.Booking

	history []catalog.Booking

	tz       *time.Location
	currency string
}

type Services struct {
	Catalog *service.CatalogService
	Booking *service.BookingService
}

type appState string

const (
	viewHome     appState = "home"
	viewDetail   appState = "detail"
	viewBookings appState = "bookings"
)

type modalState string

const (
	modalNone         modalState = ""
	modalRatingFilter modalState = "ratingFilter"
	modalBookingForm  modalState = "bookingForm"
	modalBookingDone  modalState = "bookingDone"
)

func New(ctx context.Context, cfg config.Config, store *session.Store, services Services, tz *time.Location) *App {
	if tz == nil {
		tz = time.Local
	}
	return &App{
		ctx:      ctx,
		cfg:      cfg,
		store:    store,
		services: services,
		state:    viewHome,
		loading:  true,
		tz:       tz,
		currency: cfg.UI.CurrencySymbol,
	}
}

func (a *App) Init() tea.Cmd {
	return a.refreshCmd()
}

// rows is the derived view of the provider collection: filters, then name
// search, then the category join that drops providers with no known
// category.
func (a *App) rows() []catalog.Listing {
	filtered := a.criteria.Apply(a.providers)
	filtered = catalog.SearchByName(filtered, a.search)
	return catalog.Join(filtered, a.categories)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		switch a.state {
		case viewDetail:
			return a.handleDetailKey(m)
		case viewBookings:
			return a.handleBookingsKey(m)
		default:
			return a.handleHomeKey(m)
		}

	case catalogMsg:
		a.loading = false
		a.providers = m.providers
		a.categories = m.categories
		a.clampCursors()
		a.status = ""
	case providerMsg:
		a.loading = false
		a.detail = catalog.Provider(m)
		a.detailCategory = a.categoryByID(a.detail.CategoryID)
		a.state = viewDetail
	case bookingDoneMsg:
		a.lastBooking = catalog.Booking(m)
		a.modal = modalBookingDone
		a.status = ""
	case historyMsg:
		a.loading = false
		a.history = []catalog.Booking(m)
		a.state = viewBookings
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.loading = false
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleHomeKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.listCursor > 0 {
			a.listCursor--
		}
	case "down", "j":
		if a.listCursor < len(a.rows())-1 {
			a.listCursor++
		}
	case "left", "h":
		if a.catCursor > 0 {
			a.catCursor--
		}
		a.applyCategoryChip()
	case "right", "l":
		if a.catCursor < len(a.categories) {
			a.catCursor++
		}
		a.applyCategoryChip()
	case "f":
		a.modal = modalRatingFilter
		a.ratingInput = ""
		if a.criteria.MinRating != nil {
			a.ratingInput = strconv.FormatFloat(*a.criteria.MinRating, 'f', -1, 64)
		}
	case "/":
		a.searching = true
	case "r":
		a.loading = true
		a.status = "refreshing..."
		return a, a.refreshCmd()
	case "v":
		a.loading = true
		return a, a.loadHistoryCmd()
	case "enter":
		rows := a.rows()
		if len(rows) == 0 {
			return a, nil
		}
		id := rows[a.listCursor].Provider.ID
		a.loading = true
		return a, a.openDetailCmd(id)
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		a.search = ""
		a.clampCursors()
	case tea.KeyEnter:
		a.searching = false
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(a.search) > 0 {
			a.search = a.search[:len(a.search)-1]
		}
		a.clampCursors()
	case tea.KeySpace:
		a.search += " "
	case tea.KeyRunes:
		a.search += string(m.Runes)
		a.clampCursors()
	}
	return a, nil
}

func (a *App) handleDetailKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewHome
		a.status = ""
	case "b":
		a.modal = modalBookingForm
		a.bookingField = 0
		a.bookingDate = time.Now().In(a.tz).Format(bookingTimeLayout)
		a.bookingHours = "1"
	}
	return a, nil
}

func (a *App) handleBookingsKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = viewHome
		a.status = ""
	case "r":
		a.loading = true
		return a, a.loadHistoryCmd()
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.modal {
	case modalRatingFilter:
		switch m.String() {
		case "esc":
			a.modal = modalNone
		case "c":
			a.criteria.ClearRating()
			a.modal = modalNone
			a.clampCursors()
		case "enter":
			// Out-of-range or unparseable input clears the filter rather
			// than applying it.
			a.criteria.MinRating = catalog.ParseRating(strings.TrimSpace(a.ratingInput))
			a.modal = modalNone
			a.clampCursors()
		case "backspace":
			if len(a.ratingInput) > 0 {
				a.ratingInput = a.ratingInput[:len(a.ratingInput)-1]
			}
		default:
			if m.Type == tea.KeyRunes {
				a.ratingInput += string(m.Runes)
			}
		}
	case modalBookingForm:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
		case tea.KeyTab, tea.KeyUp, tea.KeyDown:
			a.bookingField = 1 - a.bookingField
		case tea.KeyEnter:
			return a.submitBooking()
		case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
			if a.bookingField == 0 && len(a.bookingDate) > 0 {
				a.bookingDate = a.bookingDate[:len(a.bookingDate)-1]
			}
			if a.bookingField == 1 && len(a.bookingHours) > 0 {
				a.bookingHours = a.bookingHours[:len(a.bookingHours)-1]
			}
		case tea.KeySpace:
			if a.bookingField == 0 {
				a.bookingDate += " "
			}
		case tea.KeyRunes:
			if a.bookingField == 0 {
				a.bookingDate += string(m.Runes)
			} else {
				a.bookingHours += string(m.Runes)
			}
		}
	case modalBookingDone:
		switch m.String() {
		case "enter", "esc":
			a.modal = modalNone
		}
	}
	return a, nil
}

func (a *App) submitBooking() (tea.Model, tea.Cmd) {
	when, err := time.ParseInLocation(bookingTimeLayout, strings.TrimSpace(a.bookingDate), a.tz)
	if err != nil {
		a.status = "date must be YYYY-MM-DD HH:mm"
		return a, nil
	}
	// Non-numeric hour input falls back to 1, matching the clamp the
	// builder applies to non-positive values.
	hours, err := strconv.Atoi(strings.TrimSpace(a.bookingHours))
	if err != nil {
		hours = 1
	}
	provider := a.detail
	a.modal = modalNone
	a.status = "booking..."
	return a, a.bookCmd(provider, when, hours)
}

func (a *App) applyCategoryChip() {
	if a.catCursor == 0 {
		a.criteria.SetCategory(nil)
	} else if a.catCursor-1 < len(a.categories) {
		id := a.categories[a.catCursor-1].ID
		a.criteria.SetCategory(&id)
	}
	a.clampCursors()
}

func (a *App) clampCursors() {
	if n := len(a.rows()); a.listCursor >= n {
		a.listCursor = 0
	}
}

func (a *App) categoryByID(id int64) *catalog.Category {
	for _, c := range a.categories {
		if c.ID == id {
			copy := c
			return &copy
		}
	}
	return nil
}

// commands
func (a *App) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		categories, err := a.services.Catalog.Refresh(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return catalogMsg{providers: a.store.Providers(), categories: categories}
	}
}

func (a *App) openDetailCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		p, err := a.services.Catalog.ProviderByID(a.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return providerMsg(p)
	}
}

func (a *App) bookCmd(p catalog.Provider, when time.Time, hours int) tea.Cmd {
	return func() tea.Msg {
		confirmed, err := a.services.Booking.Book(a.ctx, p, when, hours)
		if err != nil {
			return errMsg{err}
		}
		return bookingDoneMsg(confirmed)
	}
}

func (a *App) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		bookings, err := a.services.Booking.History(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return historyMsg(bookings)
	}
}

// messages
type catalogMsg struct {
	providers  []catalog.Provider
	categories []catalog.Category
}

type providerMsg catalog.Provider

type bookingDoneMsg catalog.Booking

type historyMsg []catalog.Booking

type statusMsg string

type errMsg struct{ error }
