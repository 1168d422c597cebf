package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bahikhata/internal/domain"
	authsvc "bahikhata/internal/service/auth"
	ledgersvc "bahikhata/internal/service/ledger"
)

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestSignInHandler_MissingPhone(t *testing.T) {
	router := testRouter(t, &stubAuthSvc{signInErr: authsvc.ErrPhoneRequired}, &stubLedgerSvc{})

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
}

func TestSignInHandler_Success(t *testing.T) {
	owner := &domain.StoreOwner{ID: "o1", Email: "+919876543210@phone.local", Phone: "+919876543210"}
	router := testRouter(t, &stubAuthSvc{owner: owner, token: "session-token"}, &stubLedgerSvc{})

	req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"phone":"+919876543210"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"session-token"`) {
		t.Fatalf("expected token in body: %s", rec.Body.String())
	}
}

func TestListCustomersHandler_EmptyList(t *testing.T) {
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, &stubLedgerSvc{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/customers", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"customers":[]`) {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestGetCustomerHandler_NotFound(t *testing.T) {
	ledger := &stubLedgerSvc{detailErr: domain.ErrNotFound}
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, ledger)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/customers/foreign-id", ""))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Customer not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetCustomerHandler_IncludesReminderURL(t *testing.T) {
	detail := &ledgersvc.CustomerDetail{
		CustomerAccount: domain.CustomerAccount{
			Customer: domain.Customer{
				ID: "c1", Code: "ravi_3210_123456", Name: "Ravi", DisplayName: "Ravi",
				Phone: "+919876543210", CreatedAt: time.Now(),
			},
			CurrentBalance:    decimal.NewFromInt(420),
			TotalTransactions: 2,
		},
	}
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1", StoreName: "Sharma Kirana"}}, &stubLedgerSvc{detail: detail})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/customers/c1", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "https://wa.me/919876543210") {
		t.Fatalf("expected reminder url in body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"transactions":[]`) {
		t.Fatalf("expected empty transactions array: %s", rec.Body.String())
	}
}

func TestCreateTransactionHandler_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"zero amount", `{"customerName":"Ravi","amount":0,"type":"CREDIT_GIVEN"}`, ledgersvc.ErrAmountNotPositive},
		{"negative amount", `{"customerName":"Ravi","amount":-5,"type":"CREDIT_GIVEN"}`, ledgersvc.ErrAmountNotPositive},
		{"bad kind", `{"customerName":"Ravi","amount":10,"type":"LOAN"}`, ledgersvc.ErrInvalidKind},
		{"no customer", `{"amount":10,"type":"CREDIT_GIVEN"}`, ledgersvc.ErrCustomerRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ledger := &stubLedgerSvc{recordErr: tc.err}
			router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, ledger)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, authedRequest(http.MethodPost, "/transactions", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateTransactionHandler_ForeignCustomer(t *testing.T) {
	ledger := &stubLedgerSvc{recordErr: domain.ErrNotFound}
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, ledger)

	rec := httptest.NewRecorder()
	body := `{"customerId":"someone-elses","amount":10,"type":"CREDIT_GIVEN"}`
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/transactions", body))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateTransactionHandler_Created(t *testing.T) {
	customer := &domain.Customer{ID: "c1", Code: "suresh_3210_123456", Name: "Suresh", DisplayName: "Suresh"}
	tx := &domain.Transaction{ID: "t1", CustomerID: "c1", Amount: decimal.NewFromInt(500), Kind: domain.CreditGiven}
	ledger := &stubLedgerSvc{recordTx: tx, recordCust: customer}
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, ledger)

	rec := httptest.NewRecorder()
	body := `{"customerName":"Suresh","phone":"+919876543210","amount":500,"type":"CREDIT_GIVEN"}`
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/transactions", body))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"displayName":"Suresh"`) {
		t.Fatalf("expected created customer in body: %s", rec.Body.String())
	}
	if !ledger.lastRecord.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected amount 500 passed through, got %s", ledger.lastRecord.Amount)
	}
	if ledger.lastRecord.Kind != domain.CreditGiven {
		t.Fatalf("expected CREDIT_GIVEN, got %s", ledger.lastRecord.Kind)
	}
}

func TestDashboardHandler_Shape(t *testing.T) {
	ledger := &stubLedgerSvc{
		stats: domain.DashboardStats{
			TotalOutstanding:   decimal.NewFromInt(500),
			TotalCustomers:     1,
			WeeklyTransactions: 1,
		},
		accounts: []domain.CustomerAccount{
			{Customer: domain.Customer{ID: "c1", DisplayName: "Suresh"}, CurrentBalance: decimal.NewFromInt(500)},
		},
	}
	router := testRouter(t, &stubAuthSvc{owner: &domain.StoreOwner{ID: "o1"}}, ledger)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/dashboard", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	bodyStr := rec.Body.String()
	if !strings.Contains(bodyStr, `"totalCustomers":1`) || !strings.Contains(bodyStr, `"weeklyTransactions":1`) {
		t.Fatalf("expected stats in body: %s", bodyStr)
	}
	if !strings.Contains(bodyStr, `"displayName":"Suresh"`) {
		t.Fatalf("expected customer in body: %s", bodyStr)
	}
}
