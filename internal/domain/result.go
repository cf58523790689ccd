package domain

// Error codes produced by the adapter itself.
const (
	ErrorCodeSDK     = "sdk_error"
	ErrorCodeGateway = "gateway_error"
)

type Operation string

const (
	OperationPurchase  Operation = "purchase"
	OperationAuthorize Operation = "authorize"
	OperationCapture   Operation = "capture"
	OperationRefund    Operation = "refund"
	OperationVoid      Operation = "void"
	OperationVerify    Operation = "verify"
)

// Result is the uniform outcome of every gateway operation.
// ErrorCode is set exactly when Success is false.
type Result struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Params        map[string]any `json:"params"`
	Authorization string         `json:"authorization,omitempty"`
	Test          bool           `json:"test"`
	ErrorCode     string         `json:"error_code,omitempty"`
}
