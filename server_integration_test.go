package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"invoicer/pkg/authtoken"
)

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func setupTestServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	tokens = authtoken.New([]byte("integration-test-secret"))
	initDB()
	if err := db.Exec("TRUNCATE TABLE invoice_items, invoices, customers, users RESTART IDENTITY CASCADE").Error; err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
	r := gin.New()
	setupRoutes(r)
	return r
}

func registerAndLogin(t *testing.T, r http.Handler, email string) string {
	body := fmt.Sprintf(`{"email":%q,"password":"secret123","name":"Test User"}`, email)
	rec := performRequest(r, http.MethodPost, "/api/auth/register", bytes.NewBufferString(body), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	body = fmt.Sprintf(`{"email":%q,"password":"secret123"}`, email)
	rec = performRequest(r, http.MethodPost, "/api/auth/login", bytes.NewBufferString(body), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in login response: %s", rec.Body.String())
	}
	return resp.Token
}

func createTestCustomer(t *testing.T, r http.Handler, token, email string) {
	body := fmt.Sprintf(`{"name":"Acme Corp","email":%q}`, email)
	rec := performRequest(r, http.MethodPost, "/api/customers", bytes.NewBufferString(body), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create customer failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestInvoiceFlow(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "flow@example.com")

	// protected routes reject anonymous callers
	rec := performRequest(r, http.MethodGet, "/api/invoices", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	createTestCustomer(t, r, token, "billing@acme.test")

	body := `{
		"customerEmail": "billing@acme.test",
		"issueDate": "2025-06-01",
		"dueDate": "2025-07-01",
		"taxRate": "10",
		"discountAmount": "1.00",
		"items": [
			{"description": "Widget", "quantity": 2, "unitPrice": "10.00"},
			{"description": "Gadget", "quantity": 1, "unitPrice": "5.00"}
		]
	}`
	rec = performRequest(r, http.MethodPost, "/api/invoices", bytes.NewBufferString(body), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invoice failed: %d %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Invoice struct {
			ID            uint   `json:"id"`
			InvoiceNumber string `json:"invoiceNumber"`
			Subtotal      string `json:"subtotal"`
			TaxAmount     string `json:"taxAmount"`
			TotalAmount   string `json:"totalAmount"`
			Status        string `json:"status"`
		} `json:"invoice"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad create response: %v", err)
	}
	if created.Invoice.InvoiceNumber != "INV-0001" {
		t.Errorf("expected INV-0001, got %s", created.Invoice.InvoiceNumber)
	}
	if created.Invoice.Subtotal != "25.00" || created.Invoice.TaxAmount != "2.50" || created.Invoice.TotalAmount != "26.50" {
		t.Errorf("unexpected totals: subtotal=%s tax=%s total=%s",
			created.Invoice.Subtotal, created.Invoice.TaxAmount, created.Invoice.TotalAmount)
	}
	if created.Invoice.Status != "draft" {
		t.Errorf("expected draft, got %s", created.Invoice.Status)
	}

	invoicePath := fmt.Sprintf("/api/invoices/%d", created.Invoice.ID)

	// draft -> sent is legal; draft -> paid is not
	rec = performRequest(r, http.MethodPut, invoicePath, bytes.NewBufferString(`{"status":"paid"}`), token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("draft->paid should be rejected, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPut, invoicePath, bytes.NewBufferString(`{"status":"sent"}`), token)
	if rec.Code != http.StatusOK {
		t.Errorf("draft->sent failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodGet, invoicePath+"/pdf", nil, token)
	if rec.Code != http.StatusOK {
		t.Errorf("pdf failed: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", ct)
	}

	// past-due and sent: shows up in the overdue listing
	rec = performRequest(r, http.MethodGet, "/api/invoices/overdue", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("overdue listing failed: %d", rec.Code)
	}
	var overdue struct {
		Invoices []json.RawMessage `json:"invoices"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &overdue); err != nil {
		t.Fatalf("bad overdue response: %v", err)
	}
	if len(overdue.Invoices) != 1 {
		t.Errorf("expected 1 overdue invoice, got %d", len(overdue.Invoices))
	}

	rec = performRequest(r, http.MethodGet, "/api/reports/summary", nil, token)
	if rec.Code != http.StatusOK {
		t.Errorf("report summary failed: %d %s", rec.Code, rec.Body.String())
	}
}

// Two concurrent creations must never share an invoice number: the losing
// insert hits the unique index and the allocator retries with a fresh max.
func TestConcurrentInvoiceNumbers(t *testing.T) {
	r := setupTestServer(t)
	token := registerAndLogin(t, r, "race@example.com")
	createTestCustomer(t, r, token, "race@acme.test")

	const concurrentRequests = 10
	results := make(chan *httptest.ResponseRecorder, concurrentRequests)
	for i := 0; i < concurrentRequests; i++ {
		go func() {
			body := `{
				"customerEmail": "race@acme.test",
				"issueDate": "2025-06-01",
				"dueDate": "2025-07-01",
				"items": [{"description": "Widget", "quantity": 1, "unitPrice": "10.00"}]
			}`
			results <- performRequest(r, http.MethodPost, "/api/invoices", bytes.NewBufferString(body), token)
		}()
	}

	seen := make(map[string]bool)
	for i := 0; i < concurrentRequests; i++ {
		rec := <-results
		if rec.Code != http.StatusCreated {
			t.Errorf("create failed: %d %s", rec.Code, rec.Body.String())
			continue
		}
		var resp struct {
			Invoice struct {
				InvoiceNumber string `json:"invoiceNumber"`
			} `json:"invoice"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Errorf("bad response: %v", err)
			continue
		}
		if seen[resp.Invoice.InvoiceNumber] {
			t.Errorf("duplicate invoice number allocated: %s", resp.Invoice.InvoiceNumber)
		}
		seen[resp.Invoice.InvoiceNumber] = true
	}
}
