package onlinepayments

import "strconv"

// Authorization modes for card payments.
const (
	ModeSale             = "SALE"
	ModePreAuthorization = "PRE_AUTHORIZATION"
)

// Payment, capture and refund statuses reported by the platform.
const (
	StatusCreated          = "CREATED"
	StatusPendingApproval  = "PENDING_APPROVAL"
	StatusAuthorized       = "AUTHORIZED"
	StatusCaptured         = "CAPTURED"
	StatusCaptureRequested = "CAPTURE_REQUESTED"
	StatusRefundRequested  = "REFUND_REQUESTED"
	StatusCompleted        = "COMPLETED"
	StatusCancelled        = "CANCELLED"
	StatusRejected         = "REJECTED"
	StatusDeclined         = "DECLINED"
)

type CreatePaymentRequest struct {
	CardPaymentMethodSpecificInput *CardPaymentMethodSpecificInput `json:"cardPaymentMethodSpecificInput,omitempty"`
	Order                          *Order                          `json:"order,omitempty"`
}

type CardPaymentMethodSpecificInput struct {
	Card              *Card         `json:"card,omitempty"`
	PaymentProductID  int           `json:"paymentProductId,omitempty"`
	AuthorizationMode string        `json:"authorizationMode,omitempty"`
	ThreeDSecure      *ThreeDSecure `json:"threeDSecure,omitempty"`
}

type Card struct {
	CardNumber     string `json:"cardNumber,omitempty"`
	CardholderName string `json:"cardholderName,omitempty"`
	Cvv            string `json:"cvv,omitempty"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
}

type ThreeDSecure struct {
	SkipAuthentication bool `json:"skipAuthentication"`
}

type Order struct {
	AmountOfMoney *AmountOfMoney   `json:"amountOfMoney,omitempty"`
	Customer      *Customer        `json:"customer,omitempty"`
	References    *OrderReferences `json:"references,omitempty"`
}

type AmountOfMoney struct {
	Amount       int64  `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Customer struct {
	MerchantCustomerID  string               `json:"merchantCustomerId,omitempty"`
	PersonalInformation *PersonalInformation `json:"personalInformation,omitempty"`
	ContactDetails      *ContactDetails      `json:"contactDetails,omitempty"`
	BillingAddress      *Address             `json:"billingAddress,omitempty"`
}

type PersonalInformation struct {
	Name *PersonalName `json:"name,omitempty"`
}

type PersonalName struct {
	FirstName string `json:"firstName,omitempty"`
	Surname   string `json:"surname,omitempty"`
}

type ContactDetails struct {
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type Address struct {
	Street         string `json:"street,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
	Zip            string `json:"zip,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	CountryCode    string `json:"countryCode,omitempty"`
}

type OrderReferences struct {
	MerchantReference string `json:"merchantReference,omitempty"`
	Descriptor        string `json:"descriptor,omitempty"`
}

type CapturePaymentRequest struct {
	Amount int64 `json:"amount,omitempty"`
}

type RefundRequest struct {
	AmountOfMoney *AmountOfMoney `json:"amountOfMoney,omitempty"`
}

type CancelPaymentRequest struct {
	AmountOfMoney *AmountOfMoney `json:"amountOfMoney,omitempty"`
}

// StatusOutput is shared by payments, captures and refunds.
type StatusOutput struct {
	Errors         []APIErrorItem `json:"errors,omitempty"`
	IsCancellable  bool           `json:"isCancellable,omitempty"`
	IsRefundable   bool           `json:"isRefundable,omitempty"`
	IsAuthorized   bool           `json:"isAuthorized,omitempty"`
	StatusCategory string         `json:"statusCategory,omitempty"`
	StatusCode     *int           `json:"statusCode,omitempty"`
}

// Code renders StatusCode, or "" when the platform did not send one.
func (s *StatusOutput) Code() string {
	if s == nil || s.StatusCode == nil {
		return ""
	}
	return strconv.Itoa(*s.StatusCode)
}

type PaymentResponse struct {
	ID            string         `json:"id,omitempty"`
	Status        string         `json:"status,omitempty"`
	StatusOutput  *StatusOutput  `json:"statusOutput,omitempty"`
	PaymentOutput *PaymentOutput `json:"paymentOutput,omitempty"`
}

type PaymentOutput struct {
	AmountOfMoney *AmountOfMoney   `json:"amountOfMoney,omitempty"`
	References    *OrderReferences `json:"references,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
}

type CreationOutput struct {
	IsNewToken bool   `json:"isNewToken,omitempty"`
	Token      string `json:"token,omitempty"`
}

type MerchantAction struct {
	ActionType string `json:"actionType,omitempty"`
}

type CreatePaymentResponse struct {
	CreationOutput *CreationOutput  `json:"creationOutput,omitempty"`
	MerchantAction *MerchantAction  `json:"merchantAction,omitempty"`
	Payment        *PaymentResponse `json:"payment,omitempty"`
}

type CaptureResponse struct {
	ID            string           `json:"id,omitempty"`
	Status        string           `json:"status,omitempty"`
	StatusOutput  *StatusOutput    `json:"statusOutput,omitempty"`
	CaptureOutput *PaymentOutput   `json:"captureOutput,omitempty"`
	Payment       *PaymentResponse `json:"payment,omitempty"`
}

type RefundResponse struct {
	ID           string        `json:"id,omitempty"`
	Status       string        `json:"status,omitempty"`
	StatusOutput *StatusOutput `json:"statusOutput,omitempty"`
	RefundOutput *RefundOutput `json:"refundOutput,omitempty"`
}

type RefundOutput struct {
	AmountOfMoney *AmountOfMoney `json:"amountOfMoney,omitempty"`
}

type CancelPaymentResponse struct {
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// APIErrorItem is one entry of an error list.
type APIErrorItem struct {
	ErrorCode      string `json:"errorCode,omitempty"`
	Code           string `json:"code,omitempty"`
	ID             string `json:"id,omitempty"`
	Category       string `json:"category,omitempty"`
	HTTPStatusCode int    `json:"httpStatusCode,omitempty"`
	Message        string `json:"message,omitempty"`
	PropertyName   string `json:"propertyName,omitempty"`
	Retriable      bool   `json:"retriable,omitempty"`
}

// Identifier prefers the legacy code over errorCode.
func (e APIErrorItem) Identifier() string {
	if e.Code != "" {
		return e.Code
	}
	return e.ErrorCode
}

// ErrorResponse is the body of every non-2xx reply. Declined payments and
// refunds carry the resulting object.
type ErrorResponse struct {
	ErrorID       string                 `json:"errorId,omitempty"`
	Errors        []APIErrorItem         `json:"errors,omitempty"`
	PaymentResult *CreatePaymentResponse `json:"paymentResult,omitempty"`
	RefundResult  *RefundResponse        `json:"refundResult,omitempty"`
}
