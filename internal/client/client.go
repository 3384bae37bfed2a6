// Package client wraps the booking service's HTTP endpoints. Every
// call takes a context and applies a per-request timeout, so no fetch
// can hang a session indefinitely; callers cancel the context to abort
// early.
package client

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "net/url"
    "time"

    "github.com/cinestructura/taquilla/internal/model"
)

// API is the surface the seat board and checkout wizard depend on.
// Tests substitute a mock implementation.
type API interface {
    OccupiedSeats(ctx context.Context, roomID string) ([]string, error)
    Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error)
    PurchaseCombo(ctx context.Context, req ComboRequest) (*PurchaseResponse, error)
}

// PurchaseRequest is the body of POST /comprar.
type PurchaseRequest struct {
    Asientos    []string          `json:"asientos"`
    Total       int64             `json:"total"`
    PaymentData model.PaymentData `json:"paymentData"`
}

// ComboRequest is the body of POST /comprar-combo.
type ComboRequest struct {
    Combo       string            `json:"combo"`
    PaymentData model.PaymentData `json:"payment_data"`
}

// PurchaseResponse is the body of both purchase endpoints.
type PurchaseResponse struct {
    Success bool   `json:"success"`
    Ticket  string `json:"ticket"`
    Error   string `json:"error"`
}

// Client is the concrete API implementation over net/http.
type Client struct {
    base    string
    http    *http.Client
    timeout time.Duration
}

// New builds a Client for the service at base (e.g.
// "http://localhost:8080"). timeout bounds each individual request;
// zero means 10 seconds.
func New(base string, timeout time.Duration) *Client {
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &Client{base: base, http: &http.Client{}, timeout: timeout}
}

// OccupiedSeats fetches GET /asientos-ocupados/{roomID} and returns
// the occupied seat identifiers.
func (c *Client) OccupiedSeats(ctx context.Context, roomID string) ([]string, error) {
    const op = "asientos-ocupados"
    u := fmt.Sprintf("%s/asientos-ocupados/%s", c.base, url.PathEscape(roomID))
    body, status, err := c.do(ctx, op, http.MethodGet, u, nil)
    if err != nil {
        return nil, err
    }
    if status != http.StatusOK {
        return nil, &ServerError{Op: op, Status: status, Message: "unexpected status"}
    }
    var seats []string
    if err := json.Unmarshal(body, &seats); err != nil {
        return nil, &ServerError{Op: op, Status: status, Message: "respuesta inválida del servidor"}
    }
    return seats, nil
}

// Purchase posts a seat purchase. A *ServerError is returned for any
// refused purchase (non-2xx or success:false), with the server's error
// string when it provided one.
func (c *Client) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error) {
    return c.postPurchase(ctx, "comprar", c.base+"/comprar", req)
}

// PurchaseCombo posts a combo purchase with the same error contract as
// Purchase.
func (c *Client) PurchaseCombo(ctx context.Context, req ComboRequest) (*PurchaseResponse, error) {
    return c.postPurchase(ctx, "comprar-combo", c.base+"/comprar-combo", req)
}

func (c *Client) postPurchase(ctx context.Context, op, u string, payload interface{}) (*PurchaseResponse, error) {
    raw, err := json.Marshal(payload)
    if err != nil {
        return nil, err
    }
    body, status, err := c.do(ctx, op, http.MethodPost, u, raw)
    if err != nil {
        return nil, err
    }
    // A rejection may arrive without a JSON body (a proxy error page,
    // an empty 500); an unparseable body on a non-2xx is still just a
    // rejection, reported with the generic payment message.
    var resp PurchaseResponse
    decodeErr := json.Unmarshal(body, &resp)
    if status < 200 || status > 299 || (decodeErr == nil && !resp.Success) {
        msg := resp.Error
        if msg == "" {
            msg = "error en el proceso de pago"
        }
        return nil, &ServerError{Op: op, Status: status, Message: msg}
    }
    if decodeErr != nil {
        return nil, &ServerError{Op: op, Status: status, Message: "respuesta inválida del servidor"}
    }
    return &resp, nil
}

// do issues one request under the client's timeout and returns the
// response body and status. Transport failures come back as
// *NetworkError.
func (c *Client) do(ctx context.Context, op, method, u string, body []byte) ([]byte, int, error) {
    ctx, cancel := context.WithTimeout(ctx, c.timeout)
    defer cancel()

    var rd io.Reader
    if body != nil {
        rd = bytes.NewReader(body)
    }
    req, err := http.NewRequestWithContext(ctx, method, u, rd)
    if err != nil {
        return nil, 0, &NetworkError{Op: op, Err: err}
    }
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    resp, err := c.http.Do(req)
    if err != nil {
        return nil, 0, &NetworkError{Op: op, Err: err}
    }
    defer resp.Body.Close()
    data, err := io.ReadAll(resp.Body)
    if err != nil {
        return nil, 0, &NetworkError{Op: op, Err: err}
    }
    return data, resp.StatusCode, nil
}
