package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"student-portal/config"
	portalhttp "student-portal/http"
	"student-portal/http/handlers"
	"student-portal/store"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"

	srv := httptest.NewServer(portalhttp.SetupRoutes(handlers.New(store.New())))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(srv.URL+"/login", "application/json",
		strings.NewReader(`{"student_id":"FL2023001","password":"password"}`))
	if err != nil {
		t.Fatalf("login request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decoding login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned empty token")
	}
	return data.Token
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	if err != nil {
		t.Fatal(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			t.Fatalf("decoding %s %s response: %v", method, path, err)
		}
	}
	return resp, env
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/login", "application/json",
		strings.NewReader(`{"student_id":"FL2023001","password":"wrong"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/fees", "/dashboard", "/transactions", "/pay"} {
		resp, _ := do(t, srv, http.MethodGet, path, "", "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, resp.StatusCode)
		}
	}
}

func TestFeeSelectionFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, env := do(t, srv, http.MethodGet, "/fees?category=tuition", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /fees status = %d, want 200", resp.StatusCode)
	}
	var fees []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &fees); err != nil {
		t.Fatal(err)
	}
	if len(fees) != 1 || fees[0].ID != "fee-1" {
		t.Fatalf("tuition fees = %+v, want [fee-1]", fees)
	}

	resp, env = do(t, srv, http.MethodPost, "/fees/select", token, `{"fee_id":"fee-1"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST /fees/select status = %d, want 200", resp.StatusCode)
	}
	var sel struct {
		Selected []string `json:"selected"`
		Total    int64    `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &sel); err != nil {
		t.Fatal(err)
	}
	if sel.Total != 45000 || len(sel.Selected) != 1 {
		t.Errorf("selection = %+v, want [fee-1] / 45000", sel)
	}

	// Selecting an unknown fee is a 404.
	resp, _ = do(t, srv, http.MethodPost, "/fees/select", token, `{"fee_id":"fee-99"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("selecting unknown fee: status = %d, want 404", resp.StatusCode)
	}
}

func TestPaymentFlow(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	// Missing UPI handle is rejected.
	resp, _ := do(t, srv, http.MethodPost, "/pay", token,
		`{"scope":"single","fee_id":"fee-1","method":"upi"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("payment without handle: status = %d, want 400", resp.StatusCode)
	}

	resp, env := do(t, srv, http.MethodPost, "/pay", token,
		`{"scope":"single","fee_id":"fee-1","method":"upi","upi_handle":"a@b"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("payment status = %d, want 200 (error: %s)", resp.StatusCode, env.Error)
	}
	var txn struct {
		Amount        int64  `json:"amount"`
		PaymentMethod string `json:"payment_method"`
		TransactionID string `json:"transaction_id"`
	}
	if err := json.Unmarshal(env.Data, &txn); err != nil {
		t.Fatal(err)
	}
	if txn.Amount != 45000 || txn.PaymentMethod != "UPI" {
		t.Errorf("transaction = %+v, want amount 45000 via UPI", txn)
	}

	// The new transaction heads the history.
	_, env = do(t, srv, http.MethodGet, "/transactions", token, "")
	var history []struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := json.Unmarshal(env.Data, &history); err != nil {
		t.Fatal(err)
	}
	if len(history) != 4 || history[0].TransactionID != txn.TransactionID {
		t.Errorf("history = %+v, want %s first of 4", history, txn.TransactionID)
	}

	// The receipt is downloadable as PDF.
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/receipt/download?transaction_id="+txn.TransactionID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	pdfResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer pdfResp.Body.Close()
	if pdfResp.StatusCode != http.StatusOK {
		t.Fatalf("receipt download status = %d, want 200", pdfResp.StatusCode)
	}
	if ct := pdfResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("receipt content type = %q, want application/pdf", ct)
	}
}

func TestStatementExport(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/transactions/export", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "spreadsheet") {
		t.Errorf("export content type = %q, want spreadsheet", ct)
	}
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv)

	resp, env := do(t, srv, http.MethodGet, "/dashboard", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard status = %d, want 200", resp.StatusCode)
	}

	var summary struct {
		AttendancePct float64 `json:"attendance_percentage"`
		CGPA          float64 `json:"cgpa"`
		PendingFees   int64   `json:"pending_fees"`
	}
	if err := json.Unmarshal(env.Data, &summary); err != nil {
		t.Fatal(err)
	}
	if summary.CGPA != 8.7 {
		t.Errorf("cgpa = %v, want 8.7", summary.CGPA)
	}
	if summary.AttendancePct != 85.6 {
		t.Errorf("attendance = %v, want 85.6", summary.AttendancePct)
	}
	if summary.PendingFees != 65500 {
		t.Errorf("pending fees = %v, want 65500", summary.PendingFees)
	}
}
