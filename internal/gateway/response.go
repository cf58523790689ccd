package gateway

import (
	"encoding/json"
	"slices"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/infrastructure/onlinepayments"
)

// Statuses that count as success, per operation.
var (
	purchaseApproved  = []string{onlinepayments.StatusCaptured}
	authorizeApproved = []string{onlinepayments.StatusPendingApproval, onlinepayments.StatusAuthorized}
	captureApproved   = []string{onlinepayments.StatusCaptureRequested, onlinepayments.StatusCompleted}
	refundApproved    = []string{onlinepayments.StatusRefundRequested, onlinepayments.StatusCompleted}
	voidApproved      = []string{onlinepayments.StatusCancelled}
)

// responseView is the common shape of every reply the normalizer reads.
type responseView struct {
	payment      *onlinepayments.PaymentResponse
	status       string
	hasStatus    bool
	statusOutput *onlinepayments.StatusOutput
	errors       []onlinepayments.APIErrorItem
	params       map[string]any
}

func createPaymentView(resp *onlinepayments.CreatePaymentResponse) responseView {
	view := responseView{params: toParams(resp)}
	if resp != nil {
		view.payment = resp.Payment
	}
	return view
}

func captureView(resp *onlinepayments.CaptureResponse) responseView {
	view := responseView{params: toParams(resp)}
	if resp != nil {
		view.payment = resp.Payment
		view.status = resp.Status
		view.hasStatus = true
		view.statusOutput = resp.StatusOutput
	}
	return view
}

func refundView(resp *onlinepayments.RefundResponse) responseView {
	view := responseView{params: toParams(resp)}
	if resp != nil {
		view.status = resp.Status
		view.hasStatus = true
		view.statusOutput = resp.StatusOutput
	}
	return view
}

func cancelView(resp *onlinepayments.CancelPaymentResponse) responseView {
	view := responseView{params: toParams(resp)}
	if resp != nil {
		view.payment = resp.Payment
	}
	return view
}

// declinedView turns a processed-but-refused reply back into a response
// view. Any other error is not a response and yields false.
func declinedView(err error) (responseView, bool) {
	apiErr, ok := onlinepayments.IsAPIError(err)
	if !ok || !apiErr.Declined() {
		return responseView{}, false
	}

	var view responseView
	if apiErr.PaymentResult != nil {
		view = createPaymentView(apiErr.PaymentResult)
	} else {
		view = refundView(apiErr.RefundResult)
	}
	view.errors = apiErr.Errors
	view.params = apiErr.Payload()
	return view, true
}

// effectiveStatus prefers the nested payment status over the top-level one.
func (v responseView) effectiveStatus() string {
	if v.payment != nil {
		return v.payment.Status
	}
	return v.status
}

func (v responseView) paymentID() string {
	if v.payment == nil {
		return ""
	}
	return v.payment.ID
}

func (v responseView) message() string {
	switch {
	case v.payment != nil:
		return "Status: " + v.payment.Status
	case v.hasStatus:
		return "Status: " + v.status
	default:
		return "Unknown response"
	}
}

func (v responseView) errorCode() string {
	for _, item := range v.allErrors() {
		if code := item.Identifier(); code != "" {
			return code
		}
	}

	if code := v.statusOutput.Code(); code != "" {
		return code
	}
	if v.payment != nil {
		if code := v.payment.StatusOutput.Code(); code != "" {
			return code
		}
	}

	return domain.ErrorCodeGateway
}

func (v responseView) allErrors() []onlinepayments.APIErrorItem {
	items := slices.Clone(v.errors)
	if v.statusOutput != nil {
		items = append(items, v.statusOutput.Errors...)
	}
	if v.payment != nil && v.payment.StatusOutput != nil {
		items = append(items, v.payment.StatusOutput.Errors...)
	}
	return items
}

// toParams decodes a reply into a plain map, {} when there is nothing to decode.
func toParams(resp any) map[string]any {
	params := map[string]any{}
	data, err := json.Marshal(resp)
	if err != nil {
		return params
	}
	if err := json.Unmarshal(data, &params); err != nil || params == nil {
		return map[string]any{}
	}
	return params
}

func (g *Gateway) normalize(view responseView, accepted []string, authorization string) *domain.Result {
	success := slices.Contains(accepted, view.effectiveStatus())

	result := &domain.Result{
		Success:       success,
		Message:       view.message(),
		Params:        view.params,
		Authorization: authorization,
		Test:          g.test,
	}
	if !success {
		result.ErrorCode = view.errorCode()
	}
	return result
}

func (g *Gateway) fault(err error) *domain.Result {
	return &domain.Result{
		Success:   false,
		Message:   err.Error(),
		Params:    map[string]any{},
		Test:      g.test,
		ErrorCode: domain.ErrorCodeSDK,
	}
}
