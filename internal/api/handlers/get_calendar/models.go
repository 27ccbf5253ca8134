package get_calendar

import (
	"net/url"

	"github.com/m04kA/PetSitting-BookingService/internal/availability"
	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	getCalendar "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// CalendarBookingResponse краткая информация о заявке внутри ячейки
type CalendarBookingResponse struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customerId"`
	PetID       int64  `json:"petId"`
	ServiceType string `json:"serviceType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
}

// CellCapacityResponse емкость области в ячейке. serviceType=null для суммарной области.
type CellCapacityResponse struct {
	ServiceType  *string `json:"serviceType"`
	Current      int     `json:"current"`
	Max          int     `json:"max"`
	OverCapacity bool    `json:"overCapacity"`
}

// CellResponse один день календарной сетки
type CellResponse struct {
	Date           string                    `json:"date"`
	InCurrentMonth bool                      `json:"inCurrentMonth"`
	Bookings       []CalendarBookingResponse `json:"bookings"`
	Capacity       []CellCapacityResponse    `json:"capacity"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	View     string         `json:"view"`
	Date     string         `json:"date"`
	From     string         `json:"from"`
	To       string         `json:"to"`
	Previous string         `json:"previous"`
	Next     string         `json:"next"`
	Cells    []CellResponse `json:"cells"`
}

// ToUseCaseRequest разбирает query параметры view, date и serviceType (все опциональны)
func ToUseCaseRequest(query url.Values) (*getCalendar.Request, error) {
	req := &getCalendar.Request{View: query.Get("view")}

	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if raw := query.Get("serviceType"); raw != "" {
		serviceType, err := domain.ParseServiceType(raw)
		if err != nil {
			return nil, err
		}
		req.ServiceType = &serviceType
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	cells := make([]CellResponse, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		cells = append(cells, toCellResponse(c))
	}

	return &CalendarResponse{
		View:     string(resp.View),
		Date:     resp.Reference.String(),
		From:     resp.From.String(),
		To:       resp.To.String(),
		Previous: resp.Previous.String(),
		Next:     resp.Next.String(),
		Cells:    cells,
	}
}

func toCellResponse(c availability.CalendarCell) CellResponse {
	bookings := make([]CalendarBookingResponse, 0, len(c.Bookings))
	for _, b := range c.Bookings {
		bookings = append(bookings, CalendarBookingResponse{
			ID:          b.ID,
			CustomerID:  b.CustomerID,
			PetID:       b.PetID,
			ServiceType: string(b.ServiceType),
			StartDate:   b.StartDate.String(),
			EndDate:     b.EndDate.String(),
			Status:      string(b.Status),
		})
	}

	capacity := make([]CellCapacityResponse, 0, len(c.Capacity))
	for _, cc := range c.Capacity {
		capacity = append(capacity, CellCapacityResponse{
			ServiceType:  cc.Scope.Nullable(),
			Current:      cc.Current,
			Max:          cc.Max,
			OverCapacity: cc.IsOverCapacity(),
		})
	}

	return CellResponse{
		Date:           c.Date.String(),
		InCurrentMonth: c.InCurrentMonth,
		Bookings:       bookings,
		Capacity:       capacity,
	}
}
