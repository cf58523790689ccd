package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/tests/e2e/testdata"
)

// Platform is an in-process stand-in for the Online Payments API. It checks
// request signatures and keeps payment state in memory.
type Platform struct {
	server *httptest.Server
	signer *onlinepayments.Signer

	mu       sync.Mutex
	seq      int
	payments map[string]string
	requests []Request
}

// Request is what the platform received.
type Request struct {
	Method         string
	Path           string
	IdempotenceKey string
	Amount         int64
}

func NewPlatform(apiKeyID, secret string) *Platform {
	p := &Platform{
		signer:   onlinepayments.NewSigner(apiKeyID, secret),
		payments: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/{merchant}/payments", p.createPayment)
	mux.HandleFunc("POST /v2/{merchant}/payments/{id}/capture", p.capture)
	mux.HandleFunc("POST /v2/{merchant}/payments/{id}/refund", p.refund)
	mux.HandleFunc("POST /v2/{merchant}/payments/{id}/cancel", p.cancel)

	p.server = httptest.NewServer(p.authenticate(mux))
	return p
}

func (p *Platform) URL() string {
	return p.server.URL
}

func (p *Platform) Close() {
	p.server.Close()
}

func (p *Platform) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

func (p *Platform) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != p.signer.Authorization(r) {
			writeErrors(w, http.StatusUnauthorized, "9007", "MISSING_OR_INVALID_AUTHORIZATION")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (p *Platform) record(r *http.Request, amount int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, Request{
		Method:         r.Method,
		Path:           r.URL.Path,
		IdempotenceKey: r.Header.Get("X-GCS-Idempotence-Key"),
		Amount:         amount,
	})
}

func (p *Platform) createPayment(w http.ResponseWriter, r *http.Request) {
	var req onlinepayments.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, "21000020", "INVALID_REQUEST")
		return
	}

	var amount int64
	if req.Order != nil && req.Order.AmountOfMoney != nil {
		amount = req.Order.AmountOfMoney.Amount
	}
	p.record(r, amount)

	number := ""
	if req.CardPaymentMethodSpecificInput != nil && req.CardPaymentMethodSpecificInput.Card != nil {
		number = req.CardPaymentMethodSpecificInput.Card.CardNumber
	}

	switch number {
	case testdata.UnavailableNumber:
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	case testdata.DeclinedNumber:
		id := p.nextID()
		p.setStatus(id, onlinepayments.StatusRejected)
		writeJSON(w, http.StatusPaymentRequired, onlinepayments.ErrorResponse{
			ErrorID: "err-" + id,
			Errors:  []onlinepayments.APIErrorItem{{ErrorCode: testdata.DeclineErrorCode, Message: "card declined"}},
			PaymentResult: &onlinepayments.CreatePaymentResponse{
				Payment: &onlinepayments.PaymentResponse{
					ID:           id,
					Status:       onlinepayments.StatusRejected,
					StatusOutput: &onlinepayments.StatusOutput{StatusCode: intPtr(2)},
				},
			},
		})
		return
	}

	status := onlinepayments.StatusCaptured
	code := 9
	if req.CardPaymentMethodSpecificInput.AuthorizationMode == onlinepayments.ModePreAuthorization {
		status = onlinepayments.StatusPendingApproval
		code = 5
	}

	id := p.nextID()
	p.setStatus(id, status)
	writeJSON(w, http.StatusCreated, onlinepayments.CreatePaymentResponse{
		Payment: &onlinepayments.PaymentResponse{
			ID:           id,
			Status:       status,
			StatusOutput: &onlinepayments.StatusOutput{StatusCode: intPtr(code), IsAuthorized: true},
			PaymentOutput: &onlinepayments.PaymentOutput{
				AmountOfMoney: req.Order.AmountOfMoney,
				References:    req.Order.References,
			},
		},
	})
}

func (p *Platform) capture(w http.ResponseWriter, r *http.Request) {
	var req onlinepayments.CapturePaymentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p.record(r, req.Amount)

	id := r.PathValue("id")
	if !p.transition(id, onlinepayments.StatusPendingApproval, onlinepayments.StatusCaptureRequested) {
		writeErrors(w, http.StatusConflict, "300450", "PAYMENT_NOT_CAPTURABLE")
		return
	}

	writeJSON(w, http.StatusOK, onlinepayments.CaptureResponse{
		ID:           id + "-c",
		Status:       onlinepayments.StatusCaptureRequested,
		StatusOutput: &onlinepayments.StatusOutput{StatusCode: intPtr(91)},
		Payment:      &onlinepayments.PaymentResponse{ID: id, Status: onlinepayments.StatusCaptureRequested},
	})
}

func (p *Platform) refund(w http.ResponseWriter, r *http.Request) {
	var req onlinepayments.RefundRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	var amount int64
	if req.AmountOfMoney != nil {
		amount = req.AmountOfMoney.Amount
	}
	p.record(r, amount)

	id := r.PathValue("id")
	if !p.transition(id, onlinepayments.StatusCaptured, onlinepayments.StatusRefundRequested) &&
		!p.transition(id, onlinepayments.StatusCaptureRequested, onlinepayments.StatusRefundRequested) {
		writeErrors(w, http.StatusConflict, "300430", "PAYMENT_NOT_REFUNDABLE")
		return
	}

	writeJSON(w, http.StatusCreated, onlinepayments.RefundResponse{
		ID:           id + "-r",
		Status:       onlinepayments.StatusRefundRequested,
		StatusOutput: &onlinepayments.StatusOutput{StatusCode: intPtr(81)},
		RefundOutput: &onlinepayments.RefundOutput{AmountOfMoney: req.AmountOfMoney},
	})
}

func (p *Platform) cancel(w http.ResponseWriter, r *http.Request) {
	p.record(r, 0)

	id := r.PathValue("id")
	if !p.transition(id, onlinepayments.StatusPendingApproval, onlinepayments.StatusCancelled) {
		writeErrors(w, http.StatusConflict, "300440", "PAYMENT_NOT_CANCELLABLE")
		return
	}

	writeJSON(w, http.StatusOK, onlinepayments.CancelPaymentResponse{
		Payment: &onlinepayments.PaymentResponse{
			ID:           id,
			Status:       onlinepayments.StatusCancelled,
			StatusOutput: &onlinepayments.StatusOutput{StatusCode: intPtr(1)},
		},
	})
}

func (p *Platform) nextID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return "pay-" + strconv.Itoa(p.seq)
}

func (p *Platform) setStatus(id, status string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payments[id] = status
}

func (p *Platform) transition(id, from, to string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.payments[id] != from {
		return false
	}
	p.payments[id] = to
	return true
}

func writeErrors(w http.ResponseWriter, status int, code, id string) {
	writeJSON(w, status, onlinepayments.ErrorResponse{
		ErrorID: id,
		Errors:  []onlinepayments.APIErrorItem{{ErrorCode: code, ID: id, HTTPStatusCode: status}},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func intPtr(v int) *int {
	return &v
}
