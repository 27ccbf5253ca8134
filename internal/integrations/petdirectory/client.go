package petdirectory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент справочника клиентов и их питомцев
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetPet получает питомца клиента. Если питомец принадлежит другому клиенту, справочник отвечает 404.
func (c *Client) GetPet(ctx context.Context, customerID, petID int64) (*Pet, error) {
	url := fmt.Sprintf("%s/internal/customers/%d/pets/%d", c.baseURL, customerID, petID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrPetNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid customer or pet ID", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var pet Pet
	if err := json.NewDecoder(resp.Body).Decode(&pet); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if pet.CustomerID != 0 && pet.CustomerID != customerID {
		return nil, ErrPetNotFound
	}

	return &pet, nil
}

// GetPetWithGracefulDegradation как GetPet, но все технические ошибки сводятся к ErrServiceDegraded
func (c *Client) GetPetWithGracefulDegradation(ctx context.Context, customerID, petID int64) (*Pet, error) {
	c.log.Info("Fetching pet_id=%d for customer_id=%d", petID, customerID)

	pet, err := c.GetPet(ctx, customerID, petID)
	if err != nil {
		if errors.Is(err, ErrPetNotFound) {
			c.log.Info("Pet not found: pet_id=%d, customer_id=%d", petID, customerID)
			return nil, err
		}

		c.log.Error("Pet directory unavailable for customer_id=%d, pet_id=%d: %v", customerID, petID, err)
		return nil, fmt.Errorf("%w: customer_id=%d, pet_id=%d, error=%v", ErrServiceDegraded, customerID, petID, err)
	}

	c.log.Info("Fetched pet_id=%d (%s) for customer_id=%d", pet.ID, pet.Name, customerID)
	return pet, nil
}
