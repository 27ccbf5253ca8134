package get_occupancy

import (
	getOccupancy "github.com/m04kA/PetSitting-BookingService/internal/usecase/get_occupancy"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// OccupancyRecordResponse занятость одного слота. serviceType=null для суммарной области.
type OccupancyRecordResponse struct {
	Date         string  `json:"date"`
	ServiceType  *string `json:"serviceType"`
	Current      int     `json:"current"`
	Max          int     `json:"max"`
	Available    int     `json:"available"`
	OverCapacity bool    `json:"overCapacity"`
}

// SummaryResponse сводка по периоду
type SummaryResponse struct {
	Slots          int  `json:"slots"`
	OverCapacity   int  `json:"overCapacity"`
	Unresolved     int  `json:"unresolved"`
	Peak           int  `json:"peak"`
	NeedsAttention bool `json:"needsAttention"`
}

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	From    string                    `json:"from"`
	To      string                    `json:"to"`
	Records []OccupancyRecordResponse `json:"records"`
	Summary SummaryResponse           `json:"summary"`
	Cached  bool                      `json:"cached"`
}

// ToUseCaseRequest разбирает query параметры from и to (оба обязательны)
func ToUseCaseRequest(fromStr, toStr string) (*getOccupancy.Request, error) {
	from, err := types.ParseDate(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := types.ParseDate(toStr)
	if err != nil {
		return nil, err
	}

	return &getOccupancy.Request{From: from, To: to}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancy.Response) *OccupancyResponse {
	records := make([]OccupancyRecordResponse, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, OccupancyRecordResponse{
			Date:         r.Date.String(),
			ServiceType:  r.Scope.Nullable(),
			Current:      r.Current,
			Max:          r.Max,
			Available:    r.Available(),
			OverCapacity: r.IsOverCapacity(),
		})
	}

	return &OccupancyResponse{
		From:    resp.From.String(),
		To:      resp.To.String(),
		Records: records,
		Summary: SummaryResponse{
			Slots:          resp.Summary.Slots,
			OverCapacity:   resp.Summary.OverCapacity,
			Unresolved:     resp.Summary.Unresolved,
			Peak:           resp.Summary.Peak,
			NeedsAttention: resp.Summary.NeedsAttention(),
		},
		Cached: resp.Cached,
	}
}
