package cache

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/PetSitting-BookingService/internal/domain"
	"github.com/m04kA/PetSitting-BookingService/pkg/types"
)

// record JSON представление domain.OccupancyRecord; serviceType=null для Total
type record struct {
	Date        types.Date `json:"date"`
	ServiceType *string    `json:"serviceType"`
	Current     int        `json:"current"`
	Max         int        `json:"max"`
	Resolved    bool       `json:"resolved"`
}

func encodeRecords(records []domain.OccupancyRecord) ([]byte, error) {
	payload := make([]record, 0, len(records))
	for _, r := range records {
		payload = append(payload, record{
			Date:        r.Date,
			ServiceType: r.Scope.Nullable(),
			Current:     r.Current,
			Max:         r.Max,
			Resolved:    r.Resolved,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %v", ErrCodec, err)
	}
	return data, nil
}

func decodeRecords(data []byte) ([]domain.OccupancyRecord, error) {
	var payload []record
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrCodec, err)
	}

	records := make([]domain.OccupancyRecord, 0, len(payload))
	for _, r := range payload {
		scope, err := domain.ScopeFromNullable(r.ServiceType)
		if err != nil {
			return nil, fmt.Errorf("%w: decode scope: %v", ErrCodec, err)
		}
		records = append(records, domain.OccupancyRecord{
			Date:     r.Date,
			Scope:    scope,
			Current:  r.Current,
			Max:      r.Max,
			Resolved: r.Resolved,
		})
	}
	return records, nil
}
