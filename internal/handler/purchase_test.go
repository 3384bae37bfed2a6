package handler

// These tests exercise the request validation paths of the purchase
// handler plus the claim error mapping, driven through a stub SQL
// driver; the full transaction is covered by integration testing
// against a real MySQL.

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinestructura/taquilla/internal/model"
	"github.com/cinestructura/taquilla/internal/repository"
)

var pricing = model.Pricing{UnitPrice: 15000, Exponent: 0, Code: "COP"}

func postPurchase(t *testing.T, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	h := &PurchaseHandler{Pricing: pricing} // repos untouched on validation failures

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/comprar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Purchase(e.NewContext(req, rec)))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

const validPayment = `{"cardNumber":"4242 4242 4242 4242","cardName":"Ana","cardExpiry":"12/25","cardCvv":"123"}`

func TestPurchaseRejectsMalformedBody(t *testing.T) {
	rec, out := postPurchase(t, `{"asientos": "no-array"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, out["success"])
}

func TestPurchaseRejectsEmptySelection(t *testing.T) {
	rec, out := postPurchase(t, `{"asientos":[],"total":0,"paymentData":`+validPayment+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "no se seleccionaron asientos", out["error"])
}

func TestPurchaseRejectsMalformedSeatIDs(t *testing.T) {
	for _, seats := range []string{
		`["asiento-99"]`,                  // out of range
		`["Sala_IMAX-1","Otra_Sala-2"]`,   // mixed rooms
		`["sin-numero-"]`,                 // no number
	} {
		rec, out := postPurchase(t, `{"asientos":`+seats+`,"total":15000,"paymentData":`+validPayment+`}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "seats=%s", seats)
		assert.Equal(t, "identificador de asiento inválido", out["error"], "seats=%s", seats)
	}
}

func TestPurchaseRejectsBadPayment(t *testing.T) {
	badPayment := strings.Replace(validPayment, "123", "999", 1)
	rec, out := postPurchase(t, `{"asientos":["Sala_IMAX-1"],"total":15000,"paymentData":`+badPayment+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "datos de pago inválidos", out["error"])
}

func TestPurchaseRejectsWrongTotal(t *testing.T) {
	rec, out := postPurchase(t, `{"asientos":["Sala_IMAX-1","Sala_IMAX-2"],"total":15000,"paymentData":`+validPayment+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "el total no coincide con el precio vigente", out["error"])
}

func TestPurchaseDeduplicatesBeforePricing(t *testing.T) {
	// duplicated seat ids collapse, so the total must match one seat
	rec, out := postPurchase(t, `{"asientos":["Sala_IMAX-1","Sala_IMAX-1"],"total":30000,"paymentData":`+validPayment+`}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "el total no coincide con el precio vigente", out["error"])
}

// stubConnector backs a *sql.DB whose availability check returns no
// rows and whose claim insert fails with a configurable error, so the
// handler's claim branch can be driven without a live database.
type stubConnector struct{ execErr error }

func (c *stubConnector) Connect(context.Context) (driver.Conn, error) {
	return &stubConn{execErr: c.execErr}, nil
}

func (c *stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return nil, errors.New("use sql.OpenDB") }

type stubConn struct{ execErr error }

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("not prepared") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

func (c *stubConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &noRows{cols: []string{"seat_id"}}, nil
}

func (c *stubConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	if c.execErr != nil {
		return nil, c.execErr
	}
	return driver.RowsAffected(1), nil
}

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type noRows struct{ cols []string }

func (r *noRows) Columns() []string      { return r.cols }
func (r *noRows) Close() error           { return nil }
func (r *noRows) Next([]driver.Value) error { return io.EOF }

func postPurchaseAgainst(t *testing.T, execErr error, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	db := sql.OpenDB(&stubConnector{execErr: execErr})
	t.Cleanup(func() { _ = db.Close() })
	h := &PurchaseHandler{
		SeatRepo:  repository.NewSeatRepo(db),
		OrderRepo: repository.NewOrderRepo(db),
		Pricing:   pricing,
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/comprar", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Purchase(e.NewContext(req, rec)))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestPurchaseConflictOnDuplicateSeatClaim(t *testing.T) {
	// a concurrent buyer commits between the availability check and
	// the insert; the duplicate key must read as seats gone, not as a
	// server failure
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Sala_IMAX-1' for key 'PRIMARY'"}
	rec, out := postPurchaseAgainst(t, dup, `{"asientos":["Sala_IMAX-1"],"total":15000,"paymentData":`+validPayment+`}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "algunos asientos ya no están disponibles", out["error"])
}

func TestPurchaseClaimFailureIsNotAConflict(t *testing.T) {
	// losing the connection mid-claim is an internal failure; reporting
	// it as a seat conflict would tell the buyer the seats sold out
	rec, out := postPurchaseAgainst(t, errors.New("invalid connection"), `{"asientos":["Sala_IMAX-1"],"total":15000,"paymentData":`+validPayment+`}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error interno", out["error"])
}
