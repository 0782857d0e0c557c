package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/example/bakery-order-service/internal/domain"
)

// HTTPStatusUpdater — клиент внутреннего PUT /order/{id} сервиса оформления.
// Воркер не пишет в хранилище напрямую: все мутации идут через сервис.
type HTTPStatusUpdater struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPStatusUpdater(baseURL string) *HTTPStatusUpdater {
	return &HTTPStatusUpdater{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (u *HTTPStatusUpdater) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	body, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		fmt.Sprintf("%s/order/%s", u.BaseURL, orderID), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("update status %s for order %s: %s: %s",
			status, orderID, resp.Status, bytes.TrimSpace(msg))
	}
	return nil
}

var _ domain.StatusUpdater = (*HTTPStatusUpdater)(nil)
